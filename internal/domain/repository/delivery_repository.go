package repository

import "github.com/jhoicas/ventas-flow/internal/domain/entity"

// DeliveryRepository define el puerto de persistencia para Delivery y sus movimientos.
type DeliveryRepository interface {
	// Create persiste la cabecera y todos los movimientos de la entrega.
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	ListByOrder(orderID string) ([]*entity.Delivery, error)
	UpdateStatus(id, status string) error
	// SetMovesDone marca done_quantity = quantity en todos los movimientos de la entrega.
	SetMovesDone(deliveryID string) error
}
