package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// InvoiceDocumentUseCase genera la representación PDF de una factura y su
// envío por correo al cliente.
type InvoiceDocumentUseCase struct {
	pdfGen       InvoicePDFGenerator
	mailer       InvoiceMailer
	invoiceRepo  repository.InvoiceRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceDocumentUseCase construye el caso de uso. mailer puede ser nil
// si el SMTP no está configurado; en ese caso SendByEmail retorna ErrConflict.
func NewInvoiceDocumentUseCase(
	pdfGen InvoicePDFGenerator,
	mailer InvoiceMailer,
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
) *InvoiceDocumentUseCase {
	return &InvoiceDocumentUseCase{
		pdfGen:       pdfGen,
		mailer:       mailer,
		invoiceRepo:  invoiceRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
	}
}

// GeneratePDF arma el PDF de la factura. Devuelve también el nombre de
// archivo sugerido (INV-AAAAMM-NNN.pdf).
func (uc *InvoiceDocumentUseCase) GeneratePDF(ctx context.Context, companyID, invoiceID string) ([]byte, string, error) {
	inv, company, customer, items, err := uc.load(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.pdfGen.GenerateInvoicePDF(ctx, inv, company, customer, items)
	if err != nil {
		return nil, "", err
	}
	return pdf, inv.InvoiceNo + ".pdf", nil
}

// SendByEmail genera el PDF y lo envía al correo del cliente.
func (uc *InvoiceDocumentUseCase) SendByEmail(ctx context.Context, companyID, invoiceID string) error {
	if uc.mailer == nil {
		return domain.ErrConflict
	}
	inv, company, customer, items, err := uc.load(companyID, invoiceID)
	if err != nil {
		return err
	}
	if customer.Email == "" {
		return domain.ErrInvalidInput
	}
	pdf, err := uc.pdfGen.GenerateInvoicePDF(ctx, inv, company, customer, items)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Factura %s - %s", inv.InvoiceNo, company.Name)
	body := fmt.Sprintf(
		"Hola %s,\n\nAdjuntamos la factura %s por un total de %s %s, con vencimiento el %s.\n\nGracias por su compra.\n%s",
		customer.Name, inv.InvoiceNo, company.Currency, inv.Total.StringFixed(2),
		inv.DueDate.Format(dateLayout), company.Name,
	)
	return uc.mailer.SendInvoice(customer.Email, subject, body, inv.InvoiceNo+".pdf", pdf)
}

func (uc *InvoiceDocumentUseCase) load(companyID, invoiceID string) (*entity.Invoice, *entity.Company, *entity.Customer, []*entity.InvoiceItem, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, nil, nil, nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil || customer == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return inv, company, customer, items, nil
}
