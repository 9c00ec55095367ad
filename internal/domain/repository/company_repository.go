package repository

import "github.com/jhoicas/Facturacion-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	// GetByUserID obtiene la empresa del usuario (relación 1:1).
	GetByUserID(userID string) (*entity.Company, error)
	Update(company *entity.Company) error
}
