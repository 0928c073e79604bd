package entity

import "time"

// Unit unidad de medida para productos.
type Unit struct {
	ID        string
	Name      string
	NameEn    string
	Symbol    string
	CreatedAt time.Time
}
