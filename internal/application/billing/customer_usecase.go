package billing

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

// CustomerUseCase CRUD de clientes de la empresa.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// CreateCustomer registra un cliente nuevo.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           name,
		Email:          strings.TrimSpace(in.Email),
		Phone:          in.Phone,
		BillingAddress: in.BillingAddress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetCustomer obtiene un cliente de la empresa.
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, companyID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// ListCustomers lista los clientes de la empresa.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, companyID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.customerRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// UpdateCustomer actualización parcial.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, companyID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = name
	}
	if in.Email != nil {
		customer.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.BillingAddress != nil {
		customer.BillingAddress = *in.BillingAddress
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// DeleteCustomer elimina un cliente.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(companyID, id); err != nil {
		return err
	}
	return uc.customerRepo.Delete(id)
}

func (uc *CustomerUseCase) get(companyID, id string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return customer, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		CompanyID:      c.CompanyID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		BillingAddress: c.BillingAddress,
	}
}
