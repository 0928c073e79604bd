package bootstrap

import "github.com/jhoicas/erp-api/internal/domain/entity"

// ShellBinding nombre fijo expuesto en la consola de introspección.
type ShellBinding struct {
	Name  string
	Value any
}

// ShellContext devuelve el handle de persistencia como "db" y un valor cero de cada
// entidad bajo su nombre de tipo, siempre en el mismo orden.
func ShellContext(db any) []ShellBinding {
	return []ShellBinding{
		{Name: "db", Value: db},
		{Name: "User", Value: entity.User{}},
		{Name: "Role", Value: entity.Role{}},
		{Name: "Permission", Value: entity.Permission{}},
		{Name: "Company", Value: entity.Company{}},
		{Name: "Branch", Value: entity.Branch{}},
		{Name: "Unit", Value: entity.Unit{}},
		{Name: "Warehouse", Value: entity.Warehouse{}},
		{Name: "Account", Value: entity.Account{}},
	}
}
