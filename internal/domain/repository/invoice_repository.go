package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Las líneas se crean junto con la cabecera y nunca por separado.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListByCompany(companyID string) ([]*entity.Invoice, error)
	// UpdateHeader actualiza solo campos editables de la cabecera:
	// status, notes, date, due_date. Totales y líneas son inmutables.
	UpdateHeader(invoice *entity.Invoice) error
	UpdateStatus(id, status string) error
}
