package entity

import "time"

// Company representa la empresa del usuario (frontera del tenant).
// AllowNegativeStock controla si la facturación puede dejar stock negativo.
type Company struct {
	ID                 string
	UserID             string // dueño; exactamente una empresa por usuario
	Name               string
	Address            string
	TaxID              string // NIT / GSTIN / identificador tributario local
	Currency           string // código ISO 4217, ej. "USD", "COP"
	Timezone           string
	AllowNegativeStock bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
