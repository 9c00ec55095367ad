package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only para los reportes financieros.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ledgerRowsSQL fusiona los tres orígenes del libro mayor en una sola
// secuencia. Una fila por factura del rango sin importar su estado (el libro
// refleja lo registrado, no solo lo emitido) acreditando "Sales Income", los
// pagos debitan "Customer Payment" y los gastos debitan su cuenta derivada de
// categoría y proveedor. El ORDER BY (fecha, id de origen) hace el orden
// determinista aunque varias filas compartan fecha.
const ledgerRowsSQL = `
	SELECT i.id AS source_id, i.date, 'Sales Income' AS account,
	       0::numeric AS debit, i.total AS credit
	FROM invoices i
	WHERE i.company_id = $1 AND i.date >= $2 AND i.date <= $3
	UNION ALL
	SELECT p.id, p.paid_at, 'Customer Payment', p.amount, 0::numeric
	FROM payments p
	JOIN invoices i ON i.id = p.invoice_id
	WHERE i.company_id = $1 AND p.paid_at >= $2 AND p.paid_at <= $3
	UNION ALL
	SELECT e.id, e.date, 'Expense: ' || e.category || ' - ' || e.vendor, e.amount, 0::numeric
	FROM expenses e
	WHERE e.company_id = $1 AND e.date >= $2 AND e.date <= $3
	ORDER BY 2, 1`

// QueryLedgerRows devuelve las filas del libro mayor del período ya ordenadas.
func (r *ReportRepo) QueryLedgerRows(ctx context.Context, companyID string, from, to time.Time) ([]repository.LedgerRow, error) {
	rows, err := r.q.Query(ctx, ledgerRowsSQL, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query ledger rows: %w", err)
	}
	defer rows.Close()
	var list []repository.LedgerRow
	for rows.Next() {
		var row repository.LedgerRow
		if err := rows.Scan(&row.SourceID, &row.Date, &row.Account, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// SumInvoicesByStatus suma invoices.total del estado y rango dados.
func (r *ReportRepo) SumInvoicesByStatus(ctx context.Context, companyID, status string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE company_id = $1 AND status = $2 AND date >= $3 AND date <= $4`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID, status, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum invoices by status: %w", err)
	}
	return sum, nil
}

// SumOutstanding suma el total de facturas emitidas, sin filtro de fecha.
func (r *ReportRepo) SumOutstanding(ctx context.Context, companyID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE company_id = $1 AND status = 'issued'`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum outstanding: %w", err)
	}
	return sum, nil
}

// SumExpenses suma expenses.amount del rango.
func (r *ReportRepo) SumExpenses(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE company_id = $1 AND date >= $2 AND date <= $3`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum expenses: %w", err)
	}
	return sum, nil
}

// SumCOGS suma qty × costo actual del producto sobre las líneas de facturas
// pagadas del rango. Usa products.cost vigente, no un snapshot al momento de
// la venta.
func (r *ReportRepo) SumCOGS(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(ii.qty * p.cost), 0)
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		JOIN products p ON p.id = ii.product_id
		WHERE i.company_id = $1 AND i.status = 'paid' AND i.date >= $2 AND i.date <= $3`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum cogs: %w", err)
	}
	return sum, nil
}
