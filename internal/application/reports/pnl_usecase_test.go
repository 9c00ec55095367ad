package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// fakeProductRepo solo implementa lo que usa el dashboard.
type fakeProductRepo struct {
	lowStock []*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error                 { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) UpdateStock(string, int64) error { return nil }
func (r *fakeProductRepo) Update(*entity.Product) error    { return nil }
func (r *fakeProductRepo) ListByCompany(string) ([]*entity.Product, error) {
	return r.lowStock, nil
}
func (r *fakeProductRepo) LowStock(string, int64) ([]*entity.Product, error) {
	return r.lowStock, nil
}
func (r *fakeProductRepo) Delete(string) error { return nil }

func TestGetProfitLoss_Identities(t *testing.T) {
	repo := &fakeReportRepo{
		paidTotal: dec("1000.00"),
		cogs:      dec("400.00"),
		expenses:  dec("250.00"),
	}
	uc := NewProfitLossUseCase(repo)

	pnl, err := uc.GetProfitLoss(context.Background(), "company-1", dto.DateRangeRequest{From: "2025-01-01", To: "2025-01-31"})
	require.NoError(t, err)

	assert.True(t, pnl.GrossProfit.Equal(dec("600.00")))
	assert.True(t, pnl.NetProfit.Equal(dec("350.00")))
	// Identidades del estado de resultados.
	assert.True(t, pnl.GrossProfit.Equal(pnl.Revenue.Sub(pnl.COGS)))
	assert.True(t, pnl.NetProfit.Equal(pnl.GrossProfit.Sub(pnl.Expenses)))
	assert.True(t, pnl.GrossMarginPct.Equal(dec("60.00")))
	assert.True(t, pnl.NetMarginPct.Equal(dec("35.00")))
}

func TestGetProfitLoss_ZeroActivity(t *testing.T) {
	uc := NewProfitLossUseCase(&fakeReportRepo{})

	pnl, err := uc.GetProfitLoss(context.Background(), "company-1", dto.DateRangeRequest{From: "2025-02-01", To: "2025-02-28"})
	require.NoError(t, err)

	assert.True(t, pnl.Revenue.IsZero())
	assert.True(t, pnl.COGS.IsZero())
	assert.True(t, pnl.Expenses.IsZero())
	assert.True(t, pnl.GrossProfit.IsZero())
	assert.True(t, pnl.NetProfit.IsZero())
	// Sin ingresos los márgenes son 0, nunca división por cero.
	assert.True(t, pnl.GrossMarginPct.IsZero())
	assert.True(t, pnl.NetMarginPct.IsZero())
}

func TestGetProfitLoss_NegativeMargins(t *testing.T) {
	repo := &fakeReportRepo{
		paidTotal: dec("100.00"),
		cogs:      dec("150.00"),
		expenses:  dec("50.00"),
	}
	uc := NewProfitLossUseCase(repo)

	pnl, err := uc.GetProfitLoss(context.Background(), "company-1", dto.DateRangeRequest{From: "2025-03-01", To: "2025-03-31"})
	require.NoError(t, err)

	assert.True(t, pnl.GrossProfit.Equal(dec("-50.00")))
	assert.True(t, pnl.NetProfit.Equal(dec("-100.00")))
	assert.True(t, pnl.GrossMarginPct.Equal(dec("-50.00")))
	assert.True(t, pnl.NetMarginPct.Equal(dec("-100.00")))
}

func TestDashboardMetrics(t *testing.T) {
	repo := &fakeReportRepo{
		paidTotal:   dec("500.00"),
		outstanding: dec("200.00"),
		expenses:    dec("120.00"),
	}
	products := &fakeProductRepo{lowStock: []*entity.Product{
		{ID: "p1", CompanyID: "company-1", SKU: "WID-01", Name: "Widget", StockQty: 2},
	}}
	uc := NewDashboardUseCase(repo, products, 5)

	metrics, err := uc.GetMetrics(context.Background(), "company-1")
	require.NoError(t, err)

	assert.True(t, metrics.Revenue.Equal(dec("500.00")))
	assert.True(t, metrics.Outstanding.Equal(dec("200.00")))
	assert.True(t, metrics.Expenses.Equal(dec("120.00")))
	assert.True(t, metrics.Profit.Equal(dec("380.00")))
	require.Len(t, metrics.LowStock, 1)
	assert.Equal(t, "WID-01", metrics.LowStock[0].SKU)

	// El "mes en curso" del dashboard se calcula en UTC, igual que el rango
	// por defecto de los reportes.
	now := time.Now().UTC()
	wantFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.UTC, repo.gotFrom.Location())
	assert.True(t, repo.gotFrom.Equal(wantFrom))
	assert.True(t, repo.gotTo.After(repo.gotFrom))
}
