package rbac

import (
	"strings"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// managerSettingsException es el único permiso de settings que conserva el rol manager.
const managerSettingsException = "settings.view"

// RoleDefinition describe un rol base y cómo se deriva su conjunto de permisos.
type RoleDefinition struct {
	Name        string
	NameAr      string
	Description string
	Includes    func(p *entity.Permission) bool
}

var roleDefinitions = []RoleDefinition{
	{
		Name:        entity.RoleAdmin,
		NameAr:      "مدير النظام",
		Description: "Full system access",
		Includes:    func(*entity.Permission) bool { return true },
	},
	{
		Name:        entity.RoleManager,
		NameAr:      "مدير",
		Description: "Manager access",
		Includes: func(p *entity.Permission) bool {
			return p.Module != entity.ModuleSettings || p.Name == managerSettingsException
		},
	},
	{
		Name:        entity.RoleUser,
		NameAr:      "مستخدم",
		Description: "Basic user access",
		Includes: func(p *entity.Permission) bool {
			return strings.Contains(p.Name, ".view")
		},
	},
}

// RoleDefinitions devuelve los roles base en orden (admin, manager, user).
func RoleDefinitions() []RoleDefinition {
	out := make([]RoleDefinition, len(roleDefinitions))
	copy(out, roleDefinitions)
	return out
}

// Derive filtra los permisos persistidos según la definición del rol.
// Recibe permisos con ID asignado: el rol los referencia por identidad, no por nombre.
func (d RoleDefinition) Derive(perms []*entity.Permission) []*entity.Permission {
	out := make([]*entity.Permission, 0, len(perms))
	for _, p := range perms {
		if d.Includes(p) {
			out = append(out, p)
		}
	}
	return out
}

// BuildRoles construye los tres roles base con sus permisos derivados.
func BuildRoles(perms []*entity.Permission) []*entity.Role {
	roles := make([]*entity.Role, 0, len(roleDefinitions))
	for _, d := range roleDefinitions {
		roles = append(roles, &entity.Role{
			Name:        d.Name,
			NameAr:      d.NameAr,
			Description: d.Description,
			Permissions: d.Derive(perms),
		})
	}
	return roles
}
