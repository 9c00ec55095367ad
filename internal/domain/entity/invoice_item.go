package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura. Description y UnitPrice
// son copia del producto al momento de facturar: ediciones posteriores del
// producto no alteran facturas ya creadas. Las líneas son inmutables.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	Description string
	Qty         int64
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal // porcentaje 0–100
	LineTotal   decimal.Decimal // (qty × precio) + impuesto, redondeado a 2 decimales
}
