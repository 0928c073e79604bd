package entity

import "time"

// Warehouse representa una bodega asociada a una sucursal. Code es único.
type Warehouse struct {
	ID        string
	BranchID  string
	Name      string
	NameEn    string
	Code      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
