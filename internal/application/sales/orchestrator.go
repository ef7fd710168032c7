package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
	"github.com/jhoicas/ventas-flow/pkg/logger"
)

// WorkflowResult resumen de los documentos generados por una corrida del
// workflow automático. InvoiceID y PaymentID quedan vacíos cuando el estado de
// facturación de la orden no era "to invoice".
type WorkflowResult struct {
	DeliveryIDs []string
	InvoiceID   string
	PaymentID   string
}

// AutoWorkflow orquesta despacho, facturación y pago de una orden confirmada
// con AutoWorkflow activo. La secuencia es fija: validar todas las entregas,
// luego facturar, luego pagar. No es idempotente: una segunda corrida sobre la
// misma orden puede duplicar documentos (limitación documentada).
type AutoWorkflow struct {
	orders        OrderService
	stock         StockService
	accounting    AccountingService
	warehouseRepo repository.WarehouseRepository
	partnerRepo   repository.PartnerRepository
	batch         BatchPolicy
	log           *logger.Logger
}

// NewAutoWorkflow construye el orquestador. batch nil usa WholeGroupBatch.
func NewAutoWorkflow(
	orders OrderService,
	stock StockService,
	accounting AccountingService,
	warehouseRepo repository.WarehouseRepository,
	partnerRepo repository.PartnerRepository,
	batch BatchPolicy,
	log *logger.Logger,
) *AutoWorkflow {
	if batch == nil {
		batch = WholeGroupBatch{}
	}
	return &AutoWorkflow{
		orders:        orders,
		stock:         stock,
		accounting:    accounting,
		warehouseRepo: warehouseRepo,
		partnerRepo:   partnerRepo,
		batch:         batch,
		log:           log.Component("auto_workflow"),
	}
}

// lineGroup grupo de líneas fungibles (mismo producto y UoM) en orden de
// primera aparición.
type lineGroup struct {
	key   entity.LineGroupKey
	lines []entity.OrderLine
}

// groupLines particiona las líneas por (producto, UoM) preservando el orden de
// primera aparición de cada clave. Dos líneas con la misma clave terminan
// siempre en el mismo grupo sin importar el orden de entrada.
func groupLines(lines []entity.OrderLine) []lineGroup {
	idx := make(map[entity.LineGroupKey]int, len(lines))
	groups := make([]lineGroup, 0, len(lines))
	for _, l := range lines {
		k := l.GroupKey()
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, lineGroup{key: k})
		}
		groups[i].lines = append(groups[i].lines, l)
	}
	return groups
}

// Run ejecuta el workflow completo para una orden ya confirmada:
//
//  1. Agrupa líneas por (producto, UoM).
//  2. Por grupo, extrae lotes (BatchPolicy) y por lote crea una entrega,
//     la confirma, marca cantidades hechas = ordenadas y la valida.
//  3. Si el estado de facturación es "to invoice", crea y postea la factura;
//     en cualquier otro estado termina con éxito sin factura ni pago.
//  4. Registra un pago inbound por el total de la factura contra el primer
//     diario bank (domain.ErrNoPaymentJournal si no hay) y lo postea.
//
// Cada orden es una corrida independiente; el caller decide el batching entre
// órdenes. Los pasos ya cometidos no se revierten ante una falla posterior.
func (w *AutoWorkflow) Run(ctx context.Context, order *entity.Order) (*WorkflowResult, error) {
	warehouse, err := w.warehouseRepo.GetByID(order.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("cargar bodega %s: %w", order.WarehouseID, err)
	}
	if warehouse == nil {
		return nil, fmt.Errorf("bodega %s: %w", order.WarehouseID, domain.ErrNotFound)
	}
	partner, err := w.partnerRepo.GetByID(order.PartnerID)
	if err != nil {
		return nil, fmt.Errorf("cargar cliente %s: %w", order.PartnerID, err)
	}
	if partner == nil {
		return nil, fmt.Errorf("cliente %s: %w", order.PartnerID, domain.ErrNotFound)
	}

	result := &WorkflowResult{}

	// 1-2) Despacho: una o más entregas por grupo (producto, UoM).
	for _, group := range groupLines(order.Lines) {
		remaining := group.lines
		for len(remaining) > 0 {
			batch := w.batch.NextBatch(remaining)
			if len(batch) == 0 || len(batch) > len(remaining) {
				// Política degenerada: caer al grupo completo para garantizar progreso.
				batch = remaining
			}
			delivery, err := w.shipBatch(ctx, order, warehouse, partner, batch)
			if err != nil {
				return result, err
			}
			result.DeliveryIDs = append(result.DeliveryIDs, delivery.ID)
			remaining = remaining[len(batch):]
		}
	}

	// 3) Facturación: solo si la orden quedó "to invoice" tras el despacho.
	// Cualquier otro estado (ya facturada, nada que facturar) termina aquí con
	// éxito: este workflow solo paga facturas que él mismo produjo.
	if order.InvoiceStatus != entity.InvoiceStatusToInvoice {
		w.log.Info().Str("order_id", order.ID).Str("invoice_status", order.InvoiceStatus).
			Msg("sin facturación: estado distinto de to invoice")
		return result, nil
	}
	invoice, err := w.orders.CreateInvoices(ctx, order)
	if err != nil {
		return result, fmt.Errorf("crear factura de la orden %s: %w", order.ID, err)
	}
	if err := w.accounting.PostInvoice(ctx, invoice); err != nil {
		return result, fmt.Errorf("postear factura %s: %w", invoice.ID, err)
	}
	result.InvoiceID = invoice.ID

	// 4) Pago: primer diario bank, método manual inbound, monto total de la factura.
	journal, err := w.accounting.FirstBankJournal(ctx)
	if err != nil {
		return result, fmt.Errorf("buscar diario bank: %w", err)
	}
	if journal == nil {
		return result, domain.ErrNoPaymentJournal
	}
	payment, err := w.accounting.CreatePayment(ctx, PaymentSpec{
		InvoiceID: invoice.ID,
		JournalID: journal.ID,
		PartnerID: invoice.PartnerID,
		MethodID:  entity.PaymentMethodManualIn,
		Amount:    invoice.AmountTotal,
	})
	if err != nil {
		return result, fmt.Errorf("crear pago de la factura %s: %w", invoice.ID, err)
	}
	if err := w.accounting.PostPayment(ctx, payment); err != nil {
		return result, fmt.Errorf("postear pago %s: %w", payment.ID, err)
	}
	result.PaymentID = payment.ID

	w.log.Info().Str("order_id", order.ID).Int("deliveries", len(result.DeliveryIDs)).
		Str("invoice_id", result.InvoiceID).Str("payment_id", result.PaymentID).
		Msg("workflow automático completado")
	return result, nil
}

// shipBatch crea y lleva a terminal una entrega para un lote de líneas:
// crear -> confirmar -> cantidades hechas = ordenadas -> validar.
func (w *AutoWorkflow) shipBatch(
	ctx context.Context,
	order *entity.Order,
	warehouse *entity.Warehouse,
	partner *entity.Partner,
	batch []entity.OrderLine,
) (*entity.Delivery, error) {
	spec := DeliverySpec{
		OrderID:        order.ID,
		Origin:         order.Name,
		PartnerID:      partner.ID,
		WarehouseID:    warehouse.ID,
		LocationID:     warehouse.StockLocationID,
		LocationDestID: partner.CustomerLocationID,
		PickingTypeID:  warehouse.OutTypeID,
	}
	for _, line := range batch {
		spec.Moves = append(spec.Moves, MoveSpec{
			ProductID: line.ProductID,
			Name:      line.Name,
			UomID:     line.UomID,
			Quantity:  line.Quantity,
		})
	}
	delivery, err := w.stock.CreateDelivery(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("crear entrega de la orden %s: %w", order.ID, err)
	}
	if err := w.stock.Confirm(ctx, delivery); err != nil {
		return nil, fmt.Errorf("confirmar entrega %s: %w", delivery.ID, err)
	}
	// Supuesto de auto-cumplimiento: sin parciales ni backorders.
	if err := w.stock.SetDoneQuantities(ctx, delivery); err != nil {
		return nil, fmt.Errorf("marcar cantidades de la entrega %s: %w", delivery.ID, err)
	}
	if err := w.stock.Validate(ctx, delivery); err != nil {
		return nil, fmt.Errorf("validar entrega %s: %w", delivery.ID, err)
	}
	return delivery, nil
}
