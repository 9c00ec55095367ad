package dto

// UpdateCompanyRequest body para PUT /api/company/settings.
// Campos nil no se modifican (actualización parcial).
type UpdateCompanyRequest struct {
	Name               *string `json:"name,omitempty"`
	Address            *string `json:"address,omitempty"`
	TaxID              *string `json:"tax_id,omitempty"`
	Currency           *string `json:"currency,omitempty"`
	Timezone           *string `json:"timezone,omitempty"`
	AllowNegativeStock *bool   `json:"allow_negative_stock,omitempty"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Address            string `json:"address,omitempty"`
	TaxID              string `json:"tax_id,omitempty"`
	Currency           string `json:"currency"`
	Timezone           string `json:"timezone"`
	AllowNegativeStock bool   `json:"allow_negative_stock"`
}
