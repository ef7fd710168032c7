package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-flow/internal/application/dto"
	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de órdenes de venta (protegido).
type OrderHandler struct {
	entry   *sales.OrderEntryUseCase
	confirm *sales.ConfirmOrderUseCase
	manRef  *sales.ManagerReferenceUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	entry *sales.OrderEntryUseCase,
	confirm *sales.ConfirmOrderUseCase,
	manRef *sales.ManagerReferenceUseCase,
) *OrderHandler {
	return &OrderHandler{entry: entry, confirm: confirm, manRef: manRef}
}

// Create crea una orden draft con sus líneas.
// POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.entry.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la orden inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente o bodega no encontrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID obtiene la orden con sus líneas. ManagerReference viaja en la
// respuesta para cualquier actor autenticado; solo su escritura es restringida.
// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	order, err := h.entry.Get(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// Confirm confirma la orden y, si corresponde, corre el workflow automático.
//
// Mapeo de fallas:
//   - 422 LIMIT_EXCEEDED  → el total supera el límite global (orden sigue draft).
//   - 403 FORBIDDEN       → el actor no tiene rol sale_admin (orden sigue draft).
//   - 409 CONFLICT        → la orden no está en draft.
//   - 500 WORKFLOW_FAILED → la confirmación quedó aplicada pero el workflow
//     falló a mitad de camino; los documentos parciales requieren remediación.
//
// POST /api/orders/:id/confirm
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	result, err := h.confirm.Confirm(c.Context(), actorID, id)
	if err != nil {
		var limitErr *domain.LimitExceededError
		if errors.As(err, &limitErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "LIMIT_EXCEEDED", Message: limitErr.Error()})
		}
		var wfErr *domain.WorkflowError
		if errors.As(err, &wfErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "WORKFLOW_FAILED", Message: wfErr.Error()})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol sale_admin para confirmar"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la orden no está en draft"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	resp := dto.ConfirmOrderResponse{Order: *sales.ToOrderResponse(result.Order)}
	if result.Workflow != nil {
		resp.Workflow = &dto.WorkflowResponse{
			DeliveryIDs: result.Workflow.DeliveryIDs,
			InvoiceID:   result.Workflow.InvoiceID,
			PaymentID:   result.Workflow.PaymentID,
		}
	}
	return c.JSON(resp)
}

// SetManagerReference escribe la anotación gerencial de la orden.
// PATCH /api/orders/:id/manager-reference
func (h *OrderHandler) SetManagerReference(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.ManagerReferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.manRef.Set(c.Context(), actorID, id, in.Reference); err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo sale_admin puede escribir la anotación"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	order, err := h.entry.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}
