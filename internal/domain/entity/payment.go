package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pago.
const (
	PaymentStatusDraft  = "draft"
	PaymentStatusPosted = "posted"
)

// Tipo y método de pago que registra el workflow automático.
const (
	PaymentTypeInbound    = "inbound"
	PaymentMethodManualIn = "manual_in"
)

// Payment pago registrado contra una factura por el monto total.
type Payment struct {
	ID          string
	InvoiceID   string
	JournalID   string
	PartnerID   string
	Amount      decimal.Decimal
	PaymentType string // inbound
	MethodID    string // manual_in
	Status      string // draft, posted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
