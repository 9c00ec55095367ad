package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft     = "draft"     // creada, sin efecto sobre inventario
	InvoiceStatusIssued    = "issued"    // emitida; stock ya descontado
	InvoiceStatusPaid      = "paid"      // pagos acumulados >= total
	InvoiceStatusCancelled = "cancelled" // anulada; si estaba emitida se repone stock
)

// ValidInvoiceStatus indica si s es un estado de factura conocido.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura. Los totales quedan fijos al
// crearla: SubTotal y TaxTotal son sumas de líneas ya redondeadas a 2
// decimales, y Total = SubTotal + TaxTotal siempre.
type Invoice struct {
	ID         string
	CompanyID  string
	CustomerID string
	InvoiceNo  string // formato INV-AAAAMM-NNN, consecutivo mensual
	Date       time.Time
	DueDate    time.Time
	Status     string
	SubTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	Total      decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
