package repository

import "github.com/jhoicas/ventas-flow/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	UpdateStatus(id, status string) error
}
