package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

var _ OrderService = (*BaseOrderService)(nil)

// BaseOrderService operaciones base de la orden que el gatekeeper envuelve:
// la transición draft -> confirmed y la creación de la factura.
type BaseOrderService struct {
	orderRepo repository.OrderRepository
	txRunner  BillingTxRunner
}

// NewBaseOrderService construye el servicio.
func NewBaseOrderService(orderRepo repository.OrderRepository, txRunner BillingTxRunner) *BaseOrderService {
	return &BaseOrderService{orderRepo: orderRepo, txRunner: txRunner}
}

// Confirm transición draft -> confirmed. Precondición: la orden está en draft,
// si no retorna domain.ErrConflict. Deriva el estado de facturación: "to
// invoice" si hay líneas con cantidad positiva, "no" en caso contrario.
func (s *BaseOrderService) Confirm(ctx context.Context, order *entity.Order) error {
	if order.Status != entity.OrderStatusDraft {
		return fmt.Errorf("orden %s en estado %s: %w", order.ID, order.Status, domain.ErrConflict)
	}
	invoiceStatus := entity.InvoiceStatusNothing
	for _, line := range order.Lines {
		if line.Quantity.GreaterThan(decimal.Zero) {
			invoiceStatus = entity.InvoiceStatusToInvoice
			break
		}
	}
	if err := s.orderRepo.UpdateStatus(order.ID, entity.OrderStatusConfirmed, invoiceStatus); err != nil {
		return err
	}
	order.Status = entity.OrderStatusConfirmed
	order.InvoiceStatus = invoiceStatus
	return nil
}

// CreateInvoices crea la factura desde las líneas facturables de la orden y
// actualiza su estado en una sola transacción. Precondición: estado de
// facturación "to invoice". Una orden sin líneas produce una factura sin
// líneas; decidir si eso es legal es del caller.
func (s *BaseOrderService) CreateInvoices(ctx context.Context, order *entity.Order) (*entity.Invoice, error) {
	if order.InvoiceStatus != entity.InvoiceStatusToInvoice {
		return nil, fmt.Errorf("orden %s con estado de facturación %q: %w", order.ID, order.InvoiceStatus, domain.ErrConflict)
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Number:    fmt.Sprintf("INV-%d", now.Unix()),
		PartnerID: order.PartnerID,
		Status:    entity.InvoiceDocStatusDraft,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	total := decimal.Zero
	for _, line := range order.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		subtotal := line.Subtotal()
		invoice.Lines = append(invoice.Lines, entity.InvoiceLine{
			ID:        uuid.New().String(),
			InvoiceID: invoice.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			UomID:     line.UomID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	invoice.AmountTotal = total

	err := s.txRunner.RunBilling(ctx, func(invoiceRepo InvoiceWriter, orderRepo OrderStatusWriter) error {
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for i := range invoice.Lines {
			if err := invoiceRepo.CreateLine(&invoice.Lines[i]); err != nil {
				return err
			}
		}
		return orderRepo.UpdateStatus(order.ID, entity.OrderStatusInvoiced, entity.InvoiceStatusInvoiced)
	})
	if err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusInvoiced
	order.InvoiceStatus = entity.InvoiceStatusInvoiced
	return invoice, nil
}
