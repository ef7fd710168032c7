package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock existencia de un producto en una bodega.
// La validación de una entrega descuenta de esta fila (con bloqueo de fila).
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
