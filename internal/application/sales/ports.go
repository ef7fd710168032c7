package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-flow/internal/domain/entity"
)

// RoleDirectory responde si un actor tiene un rol. Debe evaluarse en cada
// chequeo: la membresía puede cambiar entre llamadas dentro de una sesión.
// Lo implementa postgres.UserRepo (consulta por chequeo, sin caché).
type RoleDirectory interface {
	HasRole(actorID, role string) (bool, error)
}

// ConfigStore almacén global clave/valor para parámetros de configuración.
// Lo implementa postgres.ConfigParamRepo.
type ConfigStore interface {
	GetParam(key, def string) (string, error)
	SetParam(key, value string) error
}

// OrderService operaciones base sobre la orden que el gatekeeper y el
// orquestador envuelven: la confirmación draft -> confirmed y la creación de
// la factura desde las líneas facturables.
type OrderService interface {
	Confirm(ctx context.Context, order *entity.Order) error
	CreateInvoices(ctx context.Context, order *entity.Order) (*entity.Invoice, error)
}

// MoveSpec movimiento a incluir en una entrega.
type MoveSpec struct {
	ProductID string
	Name      string
	UomID     string
	Quantity  decimal.Decimal
}

// DeliverySpec datos para crear una entrega.
type DeliverySpec struct {
	OrderID        string
	Origin         string
	PartnerID      string
	WarehouseID    string
	LocationID     string
	LocationDestID string
	PickingTypeID  string
	Moves          []MoveSpec
}

// StockService ciclo de vida del documento de entrega:
// crear -> confirmar -> marcar cantidades hechas -> validar (terminal).
type StockService interface {
	CreateDelivery(ctx context.Context, spec DeliverySpec) (*entity.Delivery, error)
	Confirm(ctx context.Context, delivery *entity.Delivery) error
	SetDoneQuantities(ctx context.Context, delivery *entity.Delivery) error
	Validate(ctx context.Context, delivery *entity.Delivery) error
}

// PaymentSpec datos para registrar un pago.
type PaymentSpec struct {
	InvoiceID string
	JournalID string
	PartnerID string
	MethodID  string
	Amount    decimal.Decimal
}

// AccountingService operaciones contables que consume el orquestador.
// FirstBankJournal devuelve (nil, nil) si no hay diario bank; el orquestador
// decide el error.
type AccountingService interface {
	PostInvoice(ctx context.Context, invoice *entity.Invoice) error
	FirstBankJournal(ctx context.Context) (*entity.Journal, error)
	CreatePayment(ctx context.Context, spec PaymentSpec) (*entity.Payment, error)
	PostPayment(ctx context.Context, payment *entity.Payment) error
}

// BatchPolicy decide cuántas líneas del grupo restante van en la próxima
// entrega. Punto de extensión para particionar por cantidad, ubicación o
// capacidad de transportista.
type BatchPolicy interface {
	NextBatch(remaining []entity.OrderLine) []entity.OrderLine
}

// WholeGroupBatch política por defecto: todo el grupo restante en un solo lote.
type WholeGroupBatch struct{}

// NextBatch devuelve todas las líneas restantes.
func (WholeGroupBatch) NextBatch(remaining []entity.OrderLine) []entity.OrderLine {
	return remaining
}

// BillingTxRunner ejecuta una función con repos de facturación y órdenes
// dentro de una sola transacción (crear factura + actualizar estado de la orden).
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo InvoiceWriter,
		orderRepo OrderStatusWriter,
	) error) error
}

// InvoiceWriter subconjunto de escritura del repositorio de facturas usado en
// la transacción de facturación.
type InvoiceWriter interface {
	Create(invoice *entity.Invoice) error
	CreateLine(line *entity.InvoiceLine) error
}

// OrderStatusWriter subconjunto de escritura del repositorio de órdenes usado
// en la transacción de facturación.
type OrderStatusWriter interface {
	UpdateStatus(id, status, invoiceStatus string) error
}
