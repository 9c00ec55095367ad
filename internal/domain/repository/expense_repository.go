package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	ListByCompany(companyID string) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
