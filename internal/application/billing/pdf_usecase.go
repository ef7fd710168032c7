package billing

import (
	"context"

	"github.com/jhoicas/ventas-flow/internal/domain"
	"github.com/jhoicas/ventas-flow/internal/domain/entity"
	"github.com/jhoicas/ventas-flow/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible de una factura posteada.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	partnerRepo repository.PartnerRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	partnerRepo repository.PartnerRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, partnerRepo: partnerRepo, generator: generator}
}

// GetInvoicePDF devuelve los bytes del PDF. Solo facturas posteadas tienen
// representación imprimible; en draft retorna domain.ErrConflict.
func (uc *PDFUseCase) GetInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status != entity.InvoiceDocStatusPosted {
		return nil, domain.ErrConflict
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Lines = make([]entity.InvoiceLine, 0, len(lines))
	for _, l := range lines {
		invoice.Lines = append(invoice.Lines, *l)
	}
	partner, err := uc.partnerRepo.GetByID(invoice.PartnerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, partner)
}
