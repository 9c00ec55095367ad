package reports

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// fakeReportRepo sirve sumas y filas precargadas; imita el orden de la DB
// (fecha ascendente, desempate por id de origen) y la regla de población de
// la consulta real: una fila de crédito por factura del rango, sin filtrar
// por estado. Registra además el rango recibido para poder asegurarlo.
type fakeReportRepo struct {
	invoices    []*entity.Invoice
	rows        []repository.LedgerRow
	paidTotal   decimal.Decimal
	outstanding decimal.Decimal
	expenses    decimal.Decimal
	cogs        decimal.Decimal
	gotFrom     time.Time
	gotTo       time.Time
}

func (r *fakeReportRepo) QueryLedgerRows(ctx context.Context, companyID string, from, to time.Time) ([]repository.LedgerRow, error) {
	out := append([]repository.LedgerRow(nil), r.rows...)
	for _, inv := range r.invoices {
		if inv.Date.Before(from) || inv.Date.After(to) {
			continue
		}
		out = append(out, repository.LedgerRow{
			SourceID: inv.ID,
			Date:     inv.Date,
			Account:  "Sales Income",
			Debit:    decimal.Zero,
			Credit:   inv.Total,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].SourceID < out[j].SourceID
	})
	return out, nil
}

func (r *fakeReportRepo) SumInvoicesByStatus(ctx context.Context, companyID, status string, from, to time.Time) (decimal.Decimal, error) {
	r.gotFrom, r.gotTo = from, to
	return r.paidTotal, nil
}

func (r *fakeReportRepo) SumOutstanding(ctx context.Context, companyID string) (decimal.Decimal, error) {
	return r.outstanding, nil
}

func (r *fakeReportRepo) SumExpenses(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error) {
	return r.expenses, nil
}

func (r *fakeReportRepo) SumCOGS(ctx context.Context, companyID string, from, to time.Time) (decimal.Decimal, error) {
	return r.cogs, nil
}

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetLedger_RunningBalance(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.LedgerRow{
		// Desordenadas a propósito: el fake las ordena como lo haría la DB.
		{SourceID: "exp-1", Date: day("2025-01-20"), Account: "Expense: Rent - Arriendos SA", Debit: dec("30.00"), Credit: decimal.Zero},
		{SourceID: "inv-1", Date: day("2025-01-10"), Account: "Sales Income", Debit: decimal.Zero, Credit: dec("100.00")},
		{SourceID: "pay-1", Date: day("2025-01-15"), Account: "Customer Payment", Debit: dec("100.00"), Credit: decimal.Zero},
		{SourceID: "inv-2", Date: day("2025-01-15"), Account: "Sales Income", Debit: decimal.Zero, Credit: dec("50.00")},
	}}
	uc := NewLedgerUseCase(repo)

	report, err := uc.GetLedger(context.Background(), "company-1", dto.DateRangeRequest{From: "2025-01-01", To: "2025-01-31"})
	require.NoError(t, err)
	require.Len(t, report.Rows, 4)

	// Orden: fecha asc, desempate por id de origen (inv-2 antes que pay-1).
	assert.Equal(t, "Sales Income", report.Rows[0].Account)
	assert.Equal(t, "2025-01-10", report.Rows[0].Date)
	assert.Equal(t, "Sales Income", report.Rows[1].Account)
	assert.Equal(t, "Customer Payment", report.Rows[2].Account)
	assert.Equal(t, "Expense: Rent - Arriendos SA", report.Rows[3].Account)

	// Saldo acumulado = suma prefija de (crédito − débito).
	assert.True(t, report.Rows[0].Balance.Equal(dec("100.00")))
	assert.True(t, report.Rows[1].Balance.Equal(dec("150.00")))
	assert.True(t, report.Rows[2].Balance.Equal(dec("50.00")))
	assert.True(t, report.Rows[3].Balance.Equal(dec("20.00")))

	assert.True(t, report.TotalCredit.Equal(dec("150.00")))
	assert.True(t, report.TotalDebit.Equal(dec("130.00")))
	// Identidad del reporte: saldo final = total crédito − total débito.
	assert.True(t, report.FinalBalance.Equal(report.TotalCredit.Sub(report.TotalDebit)))
	assert.True(t, report.FinalBalance.Equal(dec("20.00")))
}

// El libro mayor registra una fila por factura del rango sin importar su
// estado: borradores y anuladas también acreditan "Sales Income". El libro
// refleja lo registrado; filtrar por estado es tarea de otros reportes.
func TestGetLedger_AllInvoiceStatusesProduceRows(t *testing.T) {
	repo := &fakeReportRepo{invoices: []*entity.Invoice{
		{ID: "inv-1", Date: day("2025-02-05"), Status: entity.InvoiceStatusDraft, Total: dec("10.00")},
		{ID: "inv-2", Date: day("2025-02-10"), Status: entity.InvoiceStatusIssued, Total: dec("20.00")},
		{ID: "inv-3", Date: day("2025-02-15"), Status: entity.InvoiceStatusCancelled, Total: dec("30.00")},
		{ID: "inv-4", Date: day("2025-03-01"), Status: entity.InvoiceStatusPaid, Total: dec("99.00")}, // fuera de rango
	}}
	uc := NewLedgerUseCase(repo)

	report, err := uc.GetLedger(context.Background(), "company-1", dto.DateRangeRequest{From: "2025-02-01", To: "2025-02-28"})
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	for _, row := range report.Rows {
		assert.Equal(t, "Sales Income", row.Account)
		assert.True(t, row.Debit.IsZero())
	}
	assert.True(t, report.TotalCredit.Equal(dec("60.00")))
	assert.True(t, report.FinalBalance.Equal(dec("60.00")))
}

func TestGetLedger_EmptyPeriod(t *testing.T) {
	uc := NewLedgerUseCase(&fakeReportRepo{})

	report, err := uc.GetLedger(context.Background(), "company-1", dto.DateRangeRequest{From: "2025-06-01", To: "2025-06-30"})
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.True(t, report.TotalDebit.IsZero())
	assert.True(t, report.TotalCredit.IsZero())
	assert.True(t, report.FinalBalance.IsZero())
}

func TestGetLedger_InvalidRange(t *testing.T) {
	uc := NewLedgerUseCase(&fakeReportRepo{})

	_, err := uc.GetLedger(context.Background(), "company-1", dto.DateRangeRequest{From: "2025-06-30", To: "2025-06-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetLedger(context.Background(), "company-1", dto.DateRangeRequest{From: "junk", To: "2025-06-30"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetLedger_DefaultRangeIsCurrentMonth(t *testing.T) {
	uc := NewLedgerUseCase(&fakeReportRepo{})

	report, err := uc.GetLedger(context.Background(), "company-1", dto.DateRangeRequest{})
	require.NoError(t, err)

	now := time.Now()
	wantFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantFrom.Format(dateLayout), report.From)
}
