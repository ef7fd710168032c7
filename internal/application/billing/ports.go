package billing

import (
	"context"

	"github.com/jhoicas/ventas-flow/internal/domain/entity"
)

// InvoicePDFGenerator renderiza una factura como documento imprimible.
// Lo implementa pdf.MarotoPDFGenerator.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, partner *entity.Partner) ([]byte, error)
}
