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

const dateLayout = "2006-01-02"

// ExpenseUseCase CRUD de gastos (compras, servicios, nómina, etc.).
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// CreateExpense registra un gasto.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, companyID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	vendor := strings.TrimSpace(in.Vendor)
	category := strings.TrimSpace(in.Category)
	if vendor == "" || category == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Vendor:    vendor,
		Category:  category,
		Amount:    in.Amount.Round(2),
		Date:      date,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// ListExpenses lista los gastos de la empresa.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, companyID string) ([]*dto.ExpenseResponse, error) {
	list, err := uc.expenseRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// UpdateExpense actualización parcial.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, companyID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Vendor != nil {
		vendor := strings.TrimSpace(*in.Vendor)
		if vendor == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Vendor = vendor
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Category = category
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = in.Amount.Round(2)
	}
	if in.Date != nil {
		date, err := time.Parse(dateLayout, *in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expense.Date = date
	}
	if in.Notes != nil {
		expense.Notes = *in.Notes
	}
	expense.UpdatedAt = time.Now()
	if err := uc.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// DeleteExpense elimina un gasto.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, companyID, id string) error {
	if _, err := uc.get(companyID, id); err != nil {
		return err
	}
	return uc.expenseRepo.Delete(id)
}

func (uc *ExpenseUseCase) get(companyID, id string) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil || expense == nil {
		return nil, domain.ErrNotFound
	}
	if expense.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return expense, nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Vendor:    e.Vendor,
		Category:  e.Category,
		Amount:    e.Amount,
		Date:      e.Date.Format(dateLayout),
		Notes:     e.Notes,
	}
}
