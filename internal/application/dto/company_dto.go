package dto

import "time"

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameEn   string `json:"name_en"`
	Code     string `json:"code"`
	City     string `json:"city"`
	IsActive bool   `json:"is_active"`
}

// CompanyResponse salida de la empresa con sus sucursales.
type CompanyResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	NameEn    string           `json:"name_en"`
	TaxNumber string           `json:"tax_number"`
	City      string           `json:"city"`
	Country   string           `json:"country"`
	Currency  string           `json:"currency"`
	TaxRate   string           `json:"tax_rate"`
	Branches  []BranchResponse `json:"branches"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
