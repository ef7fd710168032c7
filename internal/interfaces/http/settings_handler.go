package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-flow/internal/application/dto"
	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain"
)

// SettingsHandler maneja la configuración global (solo admin).
type SettingsHandler struct {
	uc *sales.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *sales.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetOrderLimit devuelve el límite global vigente (0 = sin límite).
// GET /api/settings/order-limit
func (h *SettingsHandler) GetOrderLimit(c *fiber.Ctx) error {
	limit, err := h.uc.GetOrderLimit()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OrderLimitResponse{Limit: limit})
}

// SetOrderLimit actualiza el límite global. Tiene efecto inmediato en las
// confirmaciones siguientes; las ya confirmadas no se reevalúan.
// PUT /api/settings/order-limit
func (h *SettingsHandler) SetOrderLimit(c *fiber.Ctx) error {
	var in dto.OrderLimitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetOrderLimit(in.Limit); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el límite no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.OrderLimitResponse{Limit: in.Limit})
}
