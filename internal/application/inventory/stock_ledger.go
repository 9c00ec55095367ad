// Package inventory contiene el libro de stock: descuentos y reposiciones de
// product.stock_qty ligados al ciclo de vida de las facturas.
package inventory

import (
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// ItemQty referencia (producto, cantidad) de una línea a aplicar sobre el stock.
type ItemQty struct {
	ProductID string
	Qty       int64
}

// StockLedger muta el stock de productos SIEMPRE dentro de la transacción del
// caller: el productRepo que recibe cada método debe estar atado a esa tx.
// Así un fallo en cualquier línea revierte factura, líneas y stock juntos.
type StockLedger struct{}

// NewStockLedger construye el libro de stock.
func NewStockLedger() *StockLedger { return &StockLedger{} }

// DeductInTx descuenta qty del stock de cada producto, bloqueando la fila
// (SELECT ... FOR UPDATE) antes de leer. Si el resultado quedaría negativo y
// la empresa no permite stock negativo, retorna StockShortfallError con el
// producto y el faltante; el caller hace rollback y el stock no cambia.
func (l *StockLedger) DeductInTx(productRepo repository.ProductRepository, allowNegative bool, items []ItemQty) error {
	for _, item := range items {
		product, err := productRepo.GetForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.StockQty - item.Qty
		if newQty < 0 && !allowNegative {
			return &domain.StockShortfallError{
				ProductID: product.ID,
				SKU:       product.SKU,
				Requested: item.Qty,
				Available: product.StockQty,
			}
		}
		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}
	}
	return nil
}

// RestoreInTx repone qty al stock de cada producto (anulación de una factura
// emitida). Misma disciplina de bloqueo de fila que DeductInTx.
func (l *StockLedger) RestoreInTx(productRepo repository.ProductRepository, items []ItemQty) error {
	for _, item := range items {
		product, err := productRepo.GetForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateStock(product.ID, product.StockQty+item.Qty); err != nil {
			return err
		}
	}
	return nil
}
