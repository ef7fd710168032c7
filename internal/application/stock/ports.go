package stock

import (
	"context"

	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

// TxRunner ejecuta una función con los repos de entregas y existencias dentro
// de una transacción: la validación de una entrega marca el documento terminal
// y descuenta el stock en la misma unidad de trabajo.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		deliveryRepo repository.DeliveryRepository,
		stockRepo repository.StockRepository,
	) error) error
}
