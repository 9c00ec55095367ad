// Package reports contiene los casos de uso de reportes financieros:
// libro mayor reconstruido, estado de resultados (P&L) y dashboard.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// LedgerUseCase reconstruye el libro mayor a partir de facturas, pagos y
// gastos del período. No existe tabla de asientos: cada consulta deriva las
// filas desde los documentos fuente, siempre en el mismo orden.
type LedgerUseCase struct {
	reportRepo repository.ReportRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(reportRepo repository.ReportRepository) *LedgerUseCase {
	return &LedgerUseCase{reportRepo: reportRepo}
}

// GetLedger arma el reporte del rango [from, to]. Las filas llegan de la DB
// ordenadas por (fecha, id de origen); el saldo acumulado se calcula aquí
// como suma prefija de (crédito − débito).
func (uc *LedgerUseCase) GetLedger(ctx context.Context, companyID string, in dto.DateRangeRequest) (*dto.LedgerReportDTO, error) {
	from, to, err := parseRange(in)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.QueryLedgerRows(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("ledger: consulta de filas: %w", err)
	}

	report := &dto.LedgerReportDTO{
		From:         from.Format(dateLayout),
		To:           to.Format(dateLayout),
		Rows:         make([]dto.LedgerRowDTO, 0, len(rows)),
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		FinalBalance: decimal.Zero,
	}
	balance := decimal.Zero
	for _, row := range rows {
		balance = balance.Add(row.Credit).Sub(row.Debit)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
		report.Rows = append(report.Rows, dto.LedgerRowDTO{
			Date:    row.Date.Format(dateLayout),
			Account: row.Account,
			Debit:   row.Debit,
			Credit:  row.Credit,
			Balance: balance,
		})
	}
	report.FinalBalance = balance
	return report, nil
}

// parseRange valida el rango de fechas. Rango vacío = mes en curso.
func parseRange(in dto.DateRangeRequest) (time.Time, time.Time, error) {
	now := time.Now()
	if in.From == "" && in.To == "" {
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return from, to, nil
	}
	from, err := time.Parse(dateLayout, in.From)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	to, err := time.Parse(dateLayout, in.To)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	// Fin de rango inclusivo: hasta el último instante del día.
	to = to.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}
