package dto

// RoleResponse rol con los nombres de sus permisos.
type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameAr      string   `json:"name_ar"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// AccountResponse entrada del plan de cuentas.
type AccountResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	NameEn      string `json:"name_en"`
	AccountType string `json:"account_type"`
	IsSystem    bool   `json:"is_system"`
}
