package sales_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de ventas. Cada fake registra las
// llamadas que recibe para poder asertar orden y efectos.
// ──────────────────────────────────────────────────────────────────────────────

// fakeConfigStore almacén clave/valor en memoria.
type fakeConfigStore struct {
	params map[string]string
}

func newFakeConfigStore() *fakeConfigStore {
	return &fakeConfigStore{params: make(map[string]string)}
}

func (f *fakeConfigStore) GetParam(key, def string) (string, error) {
	if v, ok := f.params[key]; ok {
		return v, nil
	}
	return def, nil
}

func (f *fakeConfigStore) SetParam(key, value string) error {
	f.params[key] = value
	return nil
}

// fakeRoleDirectory membresía de roles en memoria; registra cada chequeo.
type fakeRoleDirectory struct {
	roles  map[string]string // actorID -> rol
	checks []string          // roles consultados, en orden
}

func newFakeRoleDirectory(assignments map[string]string) *fakeRoleDirectory {
	return &fakeRoleDirectory{roles: assignments}
}

func (f *fakeRoleDirectory) HasRole(actorID, role string) (bool, error) {
	f.checks = append(f.checks, role)
	return f.roles[actorID] == role, nil
}

// memOrderRepo repositorio de órdenes en memoria.
type memOrderRepo struct {
	orders map[string]*entity.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *memOrderRepo) Create(order *entity.Order) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) CreateLine(line *entity.OrderLine) error {
	o, ok := r.orders[line.OrderID]
	if !ok {
		return fmt.Errorf("orden %s no existe", line.OrderID)
	}
	o.Lines = append(o.Lines, *line)
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
	return &cp, nil
}

func (r *memOrderRepo) UpdateStatus(id, status, invoiceStatus string) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("orden %s no existe", id)
	}
	o.Status = status
	o.InvoiceStatus = invoiceStatus
	return nil
}

func (r *memOrderRepo) UpdateManagerReference(id, reference string) error {
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("orden %s no existe", id)
	}
	o.ManagerReference = reference
	return nil
}

// recordingStockService implementa sales.StockService registrando cada entrega
// creada y su ciclo de vida. failValidateOn corta la validación de la N-ésima
// entrega (1-based) para simular fallas a mitad del workflow.
type recordingStockService struct {
	seq            int
	created        []sales.DeliverySpec
	validated      []string
	failValidateOn int
	failErr        error
}

func (s *recordingStockService) CreateDelivery(_ context.Context, spec sales.DeliverySpec) (*entity.Delivery, error) {
	s.seq++
	s.created = append(s.created, spec)
	d := &entity.Delivery{
		ID:          fmt.Sprintf("del-%03d", s.seq),
		OrderID:     spec.OrderID,
		Origin:      spec.Origin,
		PartnerID:   spec.PartnerID,
		WarehouseID: spec.WarehouseID,
		Status:      entity.DeliveryStatusDraft,
	}
	for _, m := range spec.Moves {
		d.Moves = append(d.Moves, entity.StockMove{
			DeliveryID: d.ID,
			ProductID:  m.ProductID,
			UomID:      m.UomID,
			Quantity:   m.Quantity,
		})
	}
	return d, nil
}

func (s *recordingStockService) Confirm(_ context.Context, d *entity.Delivery) error {
	d.Status = entity.DeliveryStatusConfirmed
	return nil
}

func (s *recordingStockService) SetDoneQuantities(_ context.Context, d *entity.Delivery) error {
	for i := range d.Moves {
		d.Moves[i].DoneQuantity = d.Moves[i].Quantity
	}
	return nil
}

func (s *recordingStockService) Validate(_ context.Context, d *entity.Delivery) error {
	if s.failValidateOn > 0 && len(s.validated)+1 == s.failValidateOn {
		return s.failErr
	}
	d.Status = entity.DeliveryStatusDone
	s.validated = append(s.validated, d.ID)
	return nil
}

// recordingAccounting implementa sales.AccountingService en memoria. journal
// nil simula una compañía sin diario bank.
type recordingAccounting struct {
	journal        *entity.Journal
	postedInvoices []*entity.Invoice
	payments       []*entity.Payment
	postedPayments []string
}

func (a *recordingAccounting) PostInvoice(_ context.Context, invoice *entity.Invoice) error {
	invoice.Status = entity.InvoiceDocStatusPosted
	a.postedInvoices = append(a.postedInvoices, invoice)
	return nil
}

func (a *recordingAccounting) FirstBankJournal(_ context.Context) (*entity.Journal, error) {
	return a.journal, nil
}

func (a *recordingAccounting) CreatePayment(_ context.Context, spec sales.PaymentSpec) (*entity.Payment, error) {
	p := &entity.Payment{
		ID:          fmt.Sprintf("pay-%03d", len(a.payments)+1),
		InvoiceID:   spec.InvoiceID,
		JournalID:   spec.JournalID,
		PartnerID:   spec.PartnerID,
		Amount:      spec.Amount,
		PaymentType: entity.PaymentTypeInbound,
		MethodID:    spec.MethodID,
		Status:      entity.PaymentStatusDraft,
	}
	a.payments = append(a.payments, p)
	return p, nil
}

func (a *recordingAccounting) PostPayment(_ context.Context, payment *entity.Payment) error {
	payment.Status = entity.PaymentStatusPosted
	a.postedPayments = append(a.postedPayments, payment.ID)
	return nil
}

// fakeWarehouseRepo y fakePartnerRepo devuelven siempre la misma entidad.
type fakeWarehouseRepo struct{ warehouse *entity.Warehouse }

func (f *fakeWarehouseRepo) Create(*entity.Warehouse) error { return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if f.warehouse != nil && f.warehouse.ID == id {
		return f.warehouse, nil
	}
	return nil, nil
}

type fakePartnerRepo struct{ partner *entity.Partner }

func (f *fakePartnerRepo) Create(*entity.Partner) error { return nil }
func (f *fakePartnerRepo) GetByID(id string) (*entity.Partner, error) {
	if f.partner != nil && f.partner.ID == id {
		return f.partner, nil
	}
	return nil, nil
}

// memInvoiceStore acumula facturas y líneas creadas dentro de la "transacción".
type memInvoiceStore struct {
	invoices []*entity.Invoice
	lines    []*entity.InvoiceLine
}

func (s *memInvoiceStore) Create(invoice *entity.Invoice) error {
	s.invoices = append(s.invoices, invoice)
	return nil
}

func (s *memInvoiceStore) CreateLine(line *entity.InvoiceLine) error {
	s.lines = append(s.lines, line)
	return nil
}

// fakeBillingTxRunner ejecuta el callback directamente contra los stores en
// memoria (sin transacción real).
type fakeBillingTxRunner struct {
	invoices  *memInvoiceStore
	orderRepo *memOrderRepo
}

func (f *fakeBillingTxRunner) RunBilling(_ context.Context, fn func(sales.InvoiceWriter, sales.OrderStatusWriter) error) error {
	return fn(f.invoices, f.orderRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Builders
// ──────────────────────────────────────────────────────────────────────────────

const (
	testWarehouseID = "wh-test"
	testPartnerID   = "partner-test"
	testOrderID     = "order-test"
)

func qty(n int64) decimal.Decimal   { return decimal.NewFromInt(n) }
func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// testLine línea con producto, UoM, cantidad y precio.
func testLine(productID, uomID string, quantity, unitPrice int64) entity.OrderLine {
	return entity.OrderLine{
		ID:        fmt.Sprintf("line-%s-%s-%d", productID, uomID, quantity),
		OrderID:   testOrderID,
		ProductID: productID,
		Name:      "Producto " + productID,
		UomID:     uomID,
		Quantity:  qty(quantity),
		UnitPrice: price(unitPrice),
	}
}

// buildOrder orden draft con workflow automático activo y total derivado de las líneas.
func buildOrder(lines ...entity.OrderLine) *entity.Order {
	order := &entity.Order{
		ID:            testOrderID,
		Name:          "SO-TEST",
		PartnerID:     testPartnerID,
		WarehouseID:   testWarehouseID,
		Status:        entity.OrderStatusDraft,
		InvoiceStatus: entity.InvoiceStatusNothing,
		AutoWorkflow:  true,
		Lines:         lines,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	order.AmountTotal = total
	return order
}

func testWarehouse() *entity.Warehouse {
	return &entity.Warehouse{
		ID:              testWarehouseID,
		Name:            "Bodega Test",
		StockLocationID: "loc-stock",
		OutTypeID:       "ptype-out",
	}
}

func testPartner() *entity.Partner {
	return &entity.Partner{
		ID:                 testPartnerID,
		Name:               "Cliente Test",
		CustomerLocationID: "loc-customer",
	}
}
