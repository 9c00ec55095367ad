// Package usecase agrupa los casos de uso de catálogo y configuración:
// productos, gastos y ajustes de la empresa.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// DefaultLowStockThreshold umbral por defecto para el listado de stock bajo.
const DefaultLowStockThreshold = 5

// ProductUseCase CRUD del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProduct registra un producto. El SKU es único por empresa.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	name := strings.TrimSpace(in.Name)
	if sku == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.StockQty < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByCompanyAndSKU(companyID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         sku,
		Name:        name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Cost:        in.Cost.Round(2),
		StockQty:    in.StockQty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetProduct obtiene un producto de la empresa.
func (uc *ProductUseCase) GetProduct(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ListProducts lista el catálogo de la empresa.
func (uc *ProductUseCase) ListProducts(ctx context.Context, companyID string) ([]*dto.ProductResponse, error) {
	list, err := uc.productRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// LowStockProducts lista productos con stock en o bajo el umbral.
func (uc *ProductUseCase) LowStockProducts(ctx context.Context, companyID string, threshold int64) ([]*dto.ProductResponse, error) {
	if threshold < 0 {
		threshold = DefaultLowStockThreshold
	}
	list, err := uc.productRepo.LowStock(companyID, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// UpdateProduct actualización parcial. El stock NO se toca por aquí: solo la
// facturación lo mueve (emisión descuenta, anulación repone).
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = in.Cost.Round(2)
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct elimina un producto del catálogo.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(companyID, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

func (uc *ProductUseCase) get(companyID, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		StockQty:    p.StockQty,
	}
}
