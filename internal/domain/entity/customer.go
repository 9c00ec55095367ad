package entity

import "time"

// Customer representa un cliente de la empresa (facturación).
type Customer struct {
	ID             string
	CompanyID      string
	Name           string
	Email          string
	Phone          string
	BillingAddress string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
