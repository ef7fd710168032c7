package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del documento de entrega.
// done es terminal: al validarse se descuenta el stock de la bodega origen.
const (
	DeliveryStatusDraft     = "draft"
	DeliveryStatusConfirmed = "confirmed"
	DeliveryStatusDone      = "done"
)

// Delivery documento de despacho generado por el workflow automático.
// Origin guarda el consecutivo de la orden que lo originó.
type Delivery struct {
	ID             string
	OrderID        string
	Origin         string
	PartnerID      string
	WarehouseID    string
	LocationID     string // ubicación stock de la bodega
	LocationDestID string // ubicación cliente del partner
	PickingTypeID  string // tipo de operación de salida de la bodega
	Status         string
	Moves          []StockMove
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockMove entrada de movimiento dentro de una entrega: un producto,
// su cantidad ordenada y la cantidad efectivamente despachada.
type StockMove struct {
	ID             string
	DeliveryID     string
	ProductID      string
	Name           string
	UomID          string
	Quantity       decimal.Decimal // cantidad ordenada
	DoneQuantity   decimal.Decimal // cantidad despachada
	LocationID     string
	LocationDestID string
}
