package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// StockQty es unidades enteras; lo descuenta la facturación al emitir
// (nunca se edita directamente desde el CRUD de productos).
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario (2 decimales)
	Cost        decimal.Decimal // costo unitario; base del COGS en reportes
	StockQty    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
