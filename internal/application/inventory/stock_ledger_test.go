package inventory

import (
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error { r.byID[p.ID] = p; return nil }

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *memProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *memProductRepo) UpdateStock(id string, stockQty int64) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQty = stockQty
	return nil
}

func (r *memProductRepo) Update(p *entity.Product) error { r.byID[p.ID] = p; return nil }

func (r *memProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) LowStock(companyID string, threshold int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CompanyID == companyID && p.StockQty <= threshold {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockQty < out[j].StockQty })
	return out, nil
}

func (r *memProductRepo) Delete(id string) error { delete(r.byID, id); return nil }

func product(id, sku string, stock int64) *entity.Product {
	return &entity.Product{
		ID:        id,
		CompanyID: "company-1",
		SKU:       sku,
		Name:      sku,
		Price:     decimal.RequireFromString("10.00"),
		StockQty:  stock,
	}
}

func TestDeductInTx_HappyPath(t *testing.T) {
	repo := newMemProductRepo(product("p1", "SKU-1", 5), product("p2", "SKU-2", 10))
	ledger := NewStockLedger()

	err := ledger.DeductInTx(repo, false, []ItemQty{
		{ProductID: "p1", Qty: 3},
		{ProductID: "p2", Qty: 10},
	})
	require.NoError(t, err)

	p1, _ := repo.GetByID("p1")
	p2, _ := repo.GetByID("p2")
	assert.Equal(t, int64(2), p1.StockQty)
	assert.Equal(t, int64(0), p2.StockQty)
}

func TestDeductInTx_ShortfallDetail(t *testing.T) {
	repo := newMemProductRepo(product("p1", "SKU-1", 5))
	ledger := NewStockLedger()

	err := ledger.DeductInTx(repo, false, []ItemQty{{ProductID: "p1", Qty: 8}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortfall *domain.StockShortfallError
	require.True(t, errors.As(err, &shortfall))
	assert.Equal(t, "p1", shortfall.ProductID)
	assert.Equal(t, "SKU-1", shortfall.SKU)
	assert.Equal(t, int64(8), shortfall.Requested)
	assert.Equal(t, int64(5), shortfall.Available)
	assert.Equal(t, int64(3), shortfall.Shortfall())
}

func TestDeductInTx_AllowNegative(t *testing.T) {
	repo := newMemProductRepo(product("p1", "SKU-1", 5))
	ledger := NewStockLedger()

	err := ledger.DeductInTx(repo, true, []ItemQty{{ProductID: "p1", Qty: 8}})
	require.NoError(t, err)

	p1, _ := repo.GetByID("p1")
	assert.Equal(t, int64(-3), p1.StockQty)
}

func TestDeductInTx_ExactStockIsNotShortfall(t *testing.T) {
	repo := newMemProductRepo(product("p1", "SKU-1", 5))
	ledger := NewStockLedger()

	err := ledger.DeductInTx(repo, false, []ItemQty{{ProductID: "p1", Qty: 5}})
	require.NoError(t, err)

	p1, _ := repo.GetByID("p1")
	assert.Equal(t, int64(0), p1.StockQty)
}

func TestDeductInTx_UnknownProduct(t *testing.T) {
	repo := newMemProductRepo()
	ledger := NewStockLedger()

	err := ledger.DeductInTx(repo, false, []ItemQty{{ProductID: "p404", Qty: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestoreInTx(t *testing.T) {
	repo := newMemProductRepo(product("p1", "SKU-1", 2), product("p2", "SKU-2", 9))
	ledger := NewStockLedger()

	err := ledger.RestoreInTx(repo, []ItemQty{
		{ProductID: "p1", Qty: 3},
		{ProductID: "p2", Qty: 1},
	})
	require.NoError(t, err)

	p1, _ := repo.GetByID("p1")
	p2, _ := repo.GetByID("p2")
	assert.Equal(t, int64(5), p1.StockQty)
	assert.Equal(t, int64(10), p2.StockQty)
}
