package entity

import "time"

// Módulos funcionales del catálogo de permisos.
const (
	ModuleMain       = "main"
	ModuleInventory  = "inventory"
	ModuleSales      = "sales"
	ModulePurchases  = "purchases"
	ModuleAccounting = "accounting"
	ModuleReports    = "reports"
	ModuleSettings   = "settings"
)

// Permission es una capacidad fina identificada por un nombre con puntos (ej. "sales.invoices.add").
type Permission struct {
	ID        string
	Name      string
	NameAr    string
	Module    string
	CreatedAt time.Time
}
