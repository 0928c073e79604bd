package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// PermissionService resuelve si un rol tiene un permiso del catálogo.
// Es el único punto de la aplicación que consulta role_permissions para autorizar.
type PermissionService struct {
	roleRepo repository.RoleRepository
}

// NewPermissionService construye el servicio de permisos.
func NewPermissionService(roleRepo repository.RoleRepository) *PermissionService {
	return &PermissionService{roleRepo: roleRepo}
}

// HasPermission informa si el rol tiene el permiso.
// Devuelve error solo ante fallos de infraestructura.
func (s *PermissionService) HasPermission(ctx context.Context, roleName, permission string) (bool, error) {
	if roleName == "" || permission == "" {
		return false, fmt.Errorf("permission: roleName y permission son obligatorios")
	}
	return s.roleRepo.HasPermission(ctx, roleName, permission)
}
