package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un abono aplicado a una factura (append-only).
// Cuando la suma de pagos alcanza el total, la factura pasa a "paid".
type Payment struct {
	ID        string
	InvoiceID string
	Amount    decimal.Decimal
	Method    string // cash, transfer, card, ...
	PaidAt    time.Time
	Reference string
}
