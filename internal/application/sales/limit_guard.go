package sales

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
)

// OrderLimitParamKey clave del límite global de monto de órdenes en el
// almacén de parámetros. Valor <= 0 o ausente significa "sin límite".
const OrderLimitParamKey = "sale.order_limit"

// LimitGuard rechaza la confirmación de órdenes cuyo total supera el límite
// global configurado. El límite se lee en cada chequeo, no en construcción.
type LimitGuard struct {
	params ConfigStore
}

// NewLimitGuard construye el guard.
func NewLimitGuard(params ConfigStore) *LimitGuard {
	return &LimitGuard{params: params}
}

// CheckLimit retorna *domain.LimitExceededError si el total de la orden supera
// el límite vigente. Límite <= 0 desactiva el chequeo (centinela deliberado).
// Un valor ilegible en el almacén se trata como 0, igual que el default.
func (g *LimitGuard) CheckLimit(order *entity.Order) error {
	raw, err := g.params.GetParam(OrderLimitParamKey, "0")
	if err != nil {
		return err
	}
	limit, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		limit = decimal.Zero
	}
	if limit.GreaterThan(decimal.Zero) && order.AmountTotal.GreaterThan(limit) {
		return &domain.LimitExceededError{Limit: limit}
	}
	return nil
}
