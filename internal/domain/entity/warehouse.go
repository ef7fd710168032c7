package entity

import "time"

// Warehouse representa una bodega desde la que se despachan las órdenes.
// StockLocationID es su ubicación "stock" (origen de las entregas) y
// OutTypeID el tipo de operación de salida que usan los despachos.
type Warehouse struct {
	ID              string
	Name            string
	StockLocationID string
	OutTypeID       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
