package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// CompanyUseCase lectura y actualización de los ajustes de la empresa.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// GetCompany obtiene los ajustes de la empresa.
func (uc *CompanyUseCase) GetCompany(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	return ToCompanyResponse(company), nil
}

// UpdateCompany actualización parcial de los ajustes.
func (uc *CompanyUseCase) UpdateCompany(ctx context.Context, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*in.Currency))
		if len(currency) != 3 {
			return nil, domain.ErrInvalidInput
		}
		company.Currency = currency
	}
	if in.Timezone != nil {
		if _, err := time.LoadLocation(*in.Timezone); err != nil {
			return nil, domain.ErrInvalidInput
		}
		company.Timezone = *in.Timezone
	}
	if in.AllowNegativeStock != nil {
		company.AllowNegativeStock = *in.AllowNegativeStock
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return ToCompanyResponse(company), nil
}

// ToCompanyResponse convierte la entidad a DTO (lo usa también auth).
func ToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Address:            c.Address,
		TaxID:              c.TaxID,
		Currency:           c.Currency,
		Timezone:           c.Timezone,
		AllowNegativeStock: c.AllowNegativeStock,
	}
}
