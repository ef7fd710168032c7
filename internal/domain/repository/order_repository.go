package repository

import "github.com/jhoicas/ventas-flow/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateLine(line *entity.OrderLine) error
	// GetByID devuelve la orden con sus líneas, en el orden de inserción.
	GetByID(id string) (*entity.Order, error)
	// UpdateStatus actualiza estado y estado de facturación en una sola escritura.
	UpdateStatus(id, status, invoiceStatus string) error
	UpdateManagerReference(id, reference string) error
}
