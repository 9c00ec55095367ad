package billing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/application/inventory"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción de BD,
// pasando repositorios atados a esa tx. Commit si fn retorna nil, rollback
// si retorna error: la unidad de trabajo "factura + líneas + consecutivo +
// stock" (o "pago + estado de factura") es atómica por contrato.
type BillingTxRunner interface {
	// RunInvoice transacción para crear o cambiar de estado una factura.
	RunInvoice(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		counterRepo repository.CounterRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error

	// RunPayment transacción para registrar un abono y su efecto en la factura.
	RunPayment(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// StockLedger puerto hacia inventario. Los métodos operan con los repos del
// caller (misma transacción); si retornan error (ej: StockShortfallError) el
// caller debe hacer rollback.
type StockLedger interface {
	DeductInTx(productRepo repository.ProductRepository, allowNegative bool, items []inventory.ItemQty) error
	RestoreInTx(productRepo repository.ProductRepository, items []inventory.ItemQty) error
}

// InvoicePDFGenerator renderiza la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		company *entity.Company,
		customer *entity.Customer,
		items []*entity.InvoiceItem,
	) ([]byte, error)
}

// InvoiceMailer envía la factura por correo con el PDF adjunto.
type InvoiceMailer interface {
	SendInvoice(to, subject, body string, pdfName string, pdf []byte) error
}
