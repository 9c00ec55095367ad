package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// GetForUpdate y UpdateStock solo tienen sentido dentro de una transacción
// (ver TxRunner): el bloqueo de fila serializa los descuentos de stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT ... FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock escribe el nuevo stock_qty. El caller ya validó la no-negatividad.
	UpdateStock(id string, stockQty int64) error
	Update(product *entity.Product) error
	ListByCompany(companyID string) ([]*entity.Product, error)
	// LowStock lista productos con stock_qty <= threshold, de menor a mayor stock.
	LowStock(companyID string, threshold int64) ([]*entity.Product, error)
	Delete(id string) error
}
