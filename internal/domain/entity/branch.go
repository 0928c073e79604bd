package entity

import "time"

// Branch representa una sucursal de la empresa. Code es único por empresa.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	NameEn    string
	Code      string
	City      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
