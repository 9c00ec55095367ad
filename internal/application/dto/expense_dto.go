package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Vendor   string          `json:"vendor"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Notes    string          `json:"notes,omitempty"`
}

// UpdateExpenseRequest body para PUT /api/expenses/:id (parcial).
type UpdateExpenseRequest struct {
	Vendor   *string          `json:"vendor,omitempty"`
	Category *string          `json:"category,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Vendor    string          `json:"vendor"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes,omitempty"`
}
