package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices.
// Los totales NO se aceptan del cliente: el servidor los calcula siempre.
type CreateInvoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	Date       string               `json:"date"`     // YYYY-MM-DD
	DueDate    string               `json:"due_date"` // YYYY-MM-DD
	Status     string               `json:"status,omitempty"` // draft (default) o issued
	Notes      string               `json:"notes,omitempty"`
	Items      []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea de factura. UnitPrice vacío (cero) toma el precio
// vigente del producto; Description vacía toma el nombre del producto.
type InvoiceItemRequest struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description,omitempty"`
	Qty         int64           `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"` // porcentaje 0–100
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id (parcial).
// Solo cabecera: las líneas y los totales son inmutables tras la creación.
type UpdateInvoiceRequest struct {
	Status  *string `json:"status,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Date    *string `json:"date,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
}

// InvoiceResponse factura con detalle.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	CompanyID    string                `json:"company_id"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name,omitempty"`
	InvoiceNo    string                `json:"invoice_no"`
	Date         string                `json:"date"`
	DueDate      string                `json:"due_date"`
	Status       string                `json:"status"`
	SubTotal     decimal.Decimal       `json:"sub_total"`
	TaxTotal     decimal.Decimal       `json:"tax_total"`
	Total        decimal.Decimal       `json:"total"`
	Notes        string                `json:"notes,omitempty"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse línea de detalle en la respuesta.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Qty         int64           `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// CreatePaymentRequest body para POST /api/payments.
type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PaidAt    string          `json:"paid_at"` // YYYY-MM-DD
	Reference string          `json:"reference,omitempty"`
}

// PaymentResponse abono registrado; InvoiceStatus refleja el estado de la
// factura después de aplicarlo (puede haber pasado a "paid").
type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	PaidAt        string          `json:"paid_at"`
	Reference     string          `json:"reference,omitempty"`
	InvoiceStatus string          `json:"invoice_status"`
}
