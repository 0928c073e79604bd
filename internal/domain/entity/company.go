package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa la organización raíz (tenant) bajo la que cuelga el resto de datos.
type Company struct {
	ID        string
	Name      string
	NameEn    string
	TaxNumber string
	City      string
	Country   string
	Currency  string          // ISO 4217, ej. SAR
	TaxRate   decimal.Decimal // porcentaje, ej. 15.0
	CreatedAt time.Time
	UpdatedAt time.Time
}
