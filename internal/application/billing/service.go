package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ventas-flow/internal/application/sales"
	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

var _ sales.AccountingService = (*AccountingService)(nil)

// AccountingService posteo de facturas y registro de pagos.
type AccountingService struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	journalRepo repository.JournalRepository
}

// NewAccountingService construye el servicio.
func NewAccountingService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	journalRepo repository.JournalRepository,
) *AccountingService {
	return &AccountingService{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo, journalRepo: journalRepo}
}

// PostInvoice transición draft -> posted de la factura.
func (s *AccountingService) PostInvoice(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.Status != entity.InvoiceDocStatusDraft {
		return fmt.Errorf("factura %s en estado %s: %w", invoice.ID, invoice.Status, domain.ErrConflict)
	}
	if err := s.invoiceRepo.UpdateStatus(invoice.ID, entity.InvoiceDocStatusPosted); err != nil {
		return err
	}
	invoice.Status = entity.InvoiceDocStatusPosted
	return nil
}

// FirstBankJournal devuelve el primer diario de tipo bank, o (nil, nil) si no hay.
func (s *AccountingService) FirstBankJournal(ctx context.Context) (*entity.Journal, error) {
	return s.journalRepo.FirstByType(entity.JournalTypeBank)
}

// CreatePayment registra un pago en draft según el spec.
func (s *AccountingService) CreatePayment(ctx context.Context, spec sales.PaymentSpec) (*entity.Payment, error) {
	now := time.Now()
	payment := &entity.Payment{
		ID:          uuid.New().String(),
		InvoiceID:   spec.InvoiceID,
		JournalID:   spec.JournalID,
		PartnerID:   spec.PartnerID,
		Amount:      spec.Amount,
		PaymentType: entity.PaymentTypeInbound,
		MethodID:    spec.MethodID,
		Status:      entity.PaymentStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// PostPayment transición draft -> posted del pago.
func (s *AccountingService) PostPayment(ctx context.Context, payment *entity.Payment) error {
	if payment.Status != entity.PaymentStatusDraft {
		return fmt.Errorf("pago %s en estado %s: %w", payment.ID, payment.Status, domain.ErrConflict)
	}
	if err := s.paymentRepo.UpdateStatus(payment.ID, entity.PaymentStatusPosted); err != nil {
		return err
	}
	payment.Status = entity.PaymentStatusPosted
	return nil
}
