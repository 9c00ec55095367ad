package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment (append-only).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	// SumByInvoice devuelve la suma de abonos de la factura (0 si no hay).
	SumByInvoice(invoiceID string) (decimal.Decimal, error)
}
