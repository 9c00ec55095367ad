package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow resultado crudo de la reconstrucción del libro mayor.
// Lo produce la DB ya ordenado por (fecha, id de fila origen); el use case
// calcula el saldo acumulado y lo convierte en DTO.
type LedgerRow struct {
	SourceID string // id de la factura, pago o gasto de origen
	Date     time.Time
	Account  string // "Sales Income" | "Customer Payment" | "Expense: {categoría} - {proveedor}"
	Debit    decimal.Decimal
	Credit   decimal.Decimal
}

// ReportRepository define las consultas de lectura para reportes financieros.
// Las implementaciones son read-only (no modifican datos) y devuelven cero,
// nunca null, cuando el período no tiene filas.
type ReportRepository interface {
	// QueryLedgerRows fusiona facturas (crédito), pagos (débito) y gastos
	// (débito) del rango en una sola secuencia ordenada por fecha ascendente
	// con desempate por id de origen (orden estable y determinista).
	QueryLedgerRows(ctx context.Context, companyID string, from, to time.Time) ([]LedgerRow, error)

	// SumInvoicesByStatus suma invoices.total de las facturas del estado dado
	// con fecha dentro del rango.
	SumInvoicesByStatus(ctx context.Context, companyID, status string, from, to time.Time) (decimal.Decimal, error)

	// SumOutstanding suma el total de facturas emitidas sin restricción de
	// fecha (cartera pendiente de cobro).
	SumOutstanding(ctx context.Context, companyID string) (decimal.Decimal, error)

	// SumExpenses suma expenses.amount del rango.
	SumExpenses(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error)

	// SumCOGS suma qty × products.cost de las líneas de facturas pagadas del
	// rango. Usa el costo ACTUAL del producto, no un snapshot histórico:
	// limitación conocida, ver DESIGN.md.
	SumCOGS(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error)
}
