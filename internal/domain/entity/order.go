package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de venta.
const (
	OrderStatusDraft     = "draft"
	OrderStatusConfirmed = "confirmed"
	OrderStatusInvoiced  = "invoiced"
)

// Estado de facturación derivado de la orden.
const (
	InvoiceStatusToInvoice = "to invoice"
	InvoiceStatusInvoiced  = "invoiced"
	InvoiceStatusNothing   = "no"
)

// Order representa una orden de venta con sus líneas.
// ManagerReference es visible para todos los actores pero solo editable por
// usuarios con rol sale_admin; la regla se aplica en el caso de uso, no en la vista.
type Order struct {
	ID               string
	Name             string // consecutivo legible, ej. SO-00042
	PartnerID        string
	WarehouseID      string
	Status           string // draft, confirmed, invoiced
	InvoiceStatus    string // to invoice, invoiced, no
	AmountTotal      decimal.Decimal
	ManagerReference string
	AutoWorkflow     bool // dispara el workflow automático al confirmar
	Lines            []OrderLine
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderLine línea de una orden. La identidad de agrupación para entregas es el
// par (ProductID, UomID): líneas con el mismo par son fungibles.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Name      string // descripción de la línea
	UomID     string // unidad de medida
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Subtotal de la línea (cantidad por precio unitario, sin impuestos).
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// LineGroupKey clave de agrupación de líneas para entregas.
type LineGroupKey struct {
	ProductID string
	UomID     string
}

// GroupKey devuelve la clave (producto, UoM) de la línea.
func (l OrderLine) GroupKey() LineGroupKey {
	return LineGroupKey{ProductID: l.ProductID, UomID: l.UomID}
}
