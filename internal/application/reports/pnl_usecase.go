package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// ProfitLossUseCase calcula el estado de resultados del período.
//
//	Revenue     = Σ total de facturas pagadas del rango
//	COGS        = Σ qty × costo actual del producto (líneas de esas facturas)
//	GrossProfit = Revenue − COGS
//	NetProfit   = GrossProfit − Expenses
type ProfitLossUseCase struct {
	reportRepo repository.ReportRepository
}

// NewProfitLossUseCase construye el caso de uso.
func NewProfitLossUseCase(reportRepo repository.ReportRepository) *ProfitLossUseCase {
	return &ProfitLossUseCase{reportRepo: reportRepo}
}

// GetProfitLoss arma el P&L del rango. Un período sin actividad devuelve
// ceros en todos los campos, incluidos los márgenes (nunca divide por cero).
func (uc *ProfitLossUseCase) GetProfitLoss(ctx context.Context, companyID string, in dto.DateRangeRequest) (*dto.ProfitLossDTO, error) {
	from, to, err := parseRange(in)
	if err != nil {
		return nil, err
	}

	type sumResult struct {
		value decimal.Decimal
		err   error
	}
	revenueCh := make(chan sumResult, 1)
	cogsCh := make(chan sumResult, 1)
	expensesCh := make(chan sumResult, 1)

	go func() {
		v, err := uc.reportRepo.SumInvoicesByStatus(ctx, companyID, entity.InvoiceStatusPaid, from, to)
		revenueCh <- sumResult{v, err}
	}()
	go func() {
		v, err := uc.reportRepo.SumCOGS(ctx, companyID, from, to)
		cogsCh <- sumResult{v, err}
	}()
	go func() {
		v, err := uc.reportRepo.SumExpenses(ctx, companyID, from, to)
		expensesCh <- sumResult{v, err}
	}()

	revenue := <-revenueCh
	cogs := <-cogsCh
	expenses := <-expensesCh

	if revenue.err != nil {
		return nil, fmt.Errorf("pnl: ingresos: %w", revenue.err)
	}
	if cogs.err != nil {
		return nil, fmt.Errorf("pnl: costo de ventas: %w", cogs.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("pnl: gastos: %w", expenses.err)
	}

	grossProfit := revenue.value.Sub(cogs.value)
	netProfit := grossProfit.Sub(expenses.value)

	return &dto.ProfitLossDTO{
		From:           from.Format(dateLayout),
		To:             to.Format(dateLayout),
		Revenue:        revenue.value.Round(2),
		COGS:           cogs.value.Round(2),
		Expenses:       expenses.value.Round(2),
		GrossProfit:    grossProfit.Round(2),
		NetProfit:      netProfit.Round(2),
		GrossMarginPct: marginPct(grossProfit, revenue.value),
		NetMarginPct:   marginPct(netProfit, revenue.value),
	}, nil
}

// marginPct devuelve part/total × 100 redondeado a 2 decimales; 0 si total es 0.
func marginPct(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(total).Round(2)
}
