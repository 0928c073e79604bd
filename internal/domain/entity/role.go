package entity

import "time"

// Roles creados por la carga inicial.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Role agrupa permisos asignables a usuarios.
type Role struct {
	ID          string
	Name        string
	NameAr      string
	Description string
	Permissions []*Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PermissionNames devuelve los nombres de los permisos del rol en el orden almacenado.
func (r *Role) PermissionNames() []string {
	names := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		names = append(names, p.Name)
	}
	return names
}

// HasPermission informa si el rol incluye el permiso indicado.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}
