package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// DashboardUseCase arma las métricas de portada: ingresos y gastos del mes en
// curso, cartera pendiente y productos con stock bajo.
type DashboardUseCase struct {
	reportRepo        repository.ReportRepository
	productRepo       repository.ProductRepository
	lowStockThreshold int64
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository, productRepo repository.ProductRepository, lowStockThreshold int64) *DashboardUseCase {
	return &DashboardUseCase{
		reportRepo:        reportRepo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// GetMetrics construye el DashboardMetricsDTO para la empresa indicada.
//
// Cuatro llamadas en paralelo:
//  1. SumInvoicesByStatus(paid, mes)  → Revenue
//  2. SumOutstanding                  → Outstanding (sin filtro de fecha)
//  3. SumExpenses(mes)                → Expenses
//  4. LowStock(umbral)                → LowStock
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, companyID string) (*dto.DashboardMetricsDTO, error) {
	// Mismo reloj que el rango por defecto de los reportes: UTC, para que
	// "mes en curso" signifique lo mismo en dashboard y reportes.
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type sumResult struct {
		value decimal.Decimal
		err   error
	}
	type lowStockResult struct {
		products []*entity.Product
		err      error
	}

	revenueCh := make(chan sumResult, 1)
	outstandingCh := make(chan sumResult, 1)
	expensesCh := make(chan sumResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		v, err := uc.reportRepo.SumInvoicesByStatus(ctx, companyID, entity.InvoiceStatusPaid, monthStart, monthEnd)
		revenueCh <- sumResult{v, err}
	}()
	go func() {
		v, err := uc.reportRepo.SumOutstanding(ctx, companyID)
		outstandingCh <- sumResult{v, err}
	}()
	go func() {
		v, err := uc.reportRepo.SumExpenses(ctx, companyID, monthStart, monthEnd)
		expensesCh <- sumResult{v, err}
	}()
	go func() {
		products, err := uc.productRepo.LowStock(companyID, uc.lowStockThreshold)
		lowStockCh <- lowStockResult{products, err}
	}()

	revenue := <-revenueCh
	outstanding := <-outstandingCh
	expenses := <-expensesCh
	lowStock := <-lowStockCh

	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos del mes: %w", revenue.err)
	}
	if outstanding.err != nil {
		return nil, fmt.Errorf("dashboard: cartera: %w", outstanding.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: gastos del mes: %w", expenses.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	metrics := &dto.DashboardMetricsDTO{
		Revenue:     revenue.value.Round(2),
		Outstanding: outstanding.value.Round(2),
		Expenses:    expenses.value.Round(2),
		Profit:      revenue.value.Sub(expenses.value).Round(2),
		LowStock:    make([]dto.ProductResponse, 0, len(lowStock.products)),
	}
	for _, p := range lowStock.products {
		metrics.LowStock = append(metrics.LowStock, dto.ProductResponse{
			ID:        p.ID,
			CompanyID: p.CompanyID,
			SKU:       p.SKU,
			Name:      p.Name,
			Price:     p.Price,
			Cost:      p.Cost,
			StockQty:  p.StockQty,
		})
	}
	return metrics, nil
}
