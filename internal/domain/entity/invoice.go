package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de la factura. posted es terminal para este servicio.
const (
	InvoiceDocStatusDraft  = "draft"
	InvoiceDocStatusPosted = "posted"
)

// Invoice factura generada desde las líneas facturables de una orden.
type Invoice struct {
	ID          string
	OrderID     string
	Number      string
	PartnerID   string
	Status      string // draft, posted
	AmountTotal decimal.Decimal
	Date        time.Time
	Lines       []InvoiceLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InvoiceLine línea de factura, copia de la línea de orden al momento de facturar.
type InvoiceLine struct {
	ID        string
	InvoiceID string
	ProductID string
	Name      string
	UomID     string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
