package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// RoleRepository define el puerto de lectura de roles y permisos.
type RoleRepository interface {
	// List devuelve los roles con sus permisos cargados, ordenados por nombre.
	List(ctx context.Context) ([]*entity.Role, error)
	// HasPermission informa si el rol (por nombre) tiene el permiso indicado.
	HasPermission(ctx context.Context, roleName, permission string) (bool, error)
}
