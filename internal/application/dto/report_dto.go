package dto

import "github.com/shopspring/decimal"

// LedgerRowDTO fila del libro mayor reconstruido.
// Balance es el acumulado de (crédito − débito) hasta esta fila inclusive.
type LedgerRowDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// LedgerReportDTO respuesta de GET /api/reports/ledger.
type LedgerReportDTO struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	Rows         []LedgerRowDTO  `json:"rows"`
	TotalDebit   decimal.Decimal `json:"total_debit"`
	TotalCredit  decimal.Decimal `json:"total_credit"`
	FinalBalance decimal.Decimal `json:"final_balance"` // == TotalCredit − TotalDebit
}

// ProfitLossDTO respuesta de GET /api/reports/pnl.
// Identidades: GrossProfit = Revenue − COGS; NetProfit = GrossProfit − Expenses.
// Los porcentajes de margen son 0 cuando Revenue es 0 (nunca NaN ni error).
type ProfitLossDTO struct {
	From           string          `json:"from"`
	To             string          `json:"to"`
	Revenue        decimal.Decimal `json:"revenue"`
	COGS           decimal.Decimal `json:"cogs"`
	Expenses       decimal.Decimal `json:"expenses"`
	GrossProfit    decimal.Decimal `json:"gross_profit"`
	NetProfit      decimal.Decimal `json:"net_profit"`
	GrossMarginPct decimal.Decimal `json:"gross_margin_pct"`
	NetMarginPct   decimal.Decimal `json:"net_margin_pct"`
}

// DashboardMetricsDTO respuesta de GET /api/analytics/dashboard.
// Revenue y Expenses del rango; Outstanding es cartera emitida sin
// restricción de fecha; Profit = Revenue − Expenses.
type DashboardMetricsDTO struct {
	Revenue     decimal.Decimal   `json:"revenue"`
	Outstanding decimal.Decimal   `json:"outstanding"`
	Expenses    decimal.Decimal   `json:"expenses"`
	Profit      decimal.Decimal   `json:"profit"`
	LowStock    []ProductResponse `json:"low_stock_products"`
}
