package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto de la empresa. Entrada independiente del libro
// mayor: no referencia facturas ni productos.
type Expense struct {
	ID        string
	CompanyID string
	Vendor    string
	Category  string
	Amount    decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
