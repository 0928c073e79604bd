package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// Stats conteo de filas de las tablas que puebla la carga inicial.
type Stats struct {
	Companies   int `json:"companies"`
	Branches    int `json:"branches"`
	Permissions int `json:"permissions"`
	Roles       int `json:"roles"`
	Users       int `json:"users"`
	Units       int `json:"units"`
	Warehouses  int `json:"warehouses"`
	Accounts    int `json:"accounts"`
}

// SeedRepository define el puerto de persistencia de la carga inicial (DIP).
// Una instancia siempre está atada a la transacción abierta por el TxRunner.
// Los First*/Find* devuelven (nil, nil) cuando no hay fila.
type SeedRepository interface {
	Stats(ctx context.Context) (Stats, error)

	FirstCompany(ctx context.Context) (*entity.Company, error)
	CreateCompany(ctx context.Context, company *entity.Company) error

	FirstBranch(ctx context.Context) (*entity.Branch, error)
	CreateBranch(ctx context.Context, branch *entity.Branch) error

	ListPermissions(ctx context.Context) ([]*entity.Permission, error)
	CreatePermissions(ctx context.Context, perms []*entity.Permission) error

	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)
	// CreateRole persiste el rol y sus filas en role_permissions (los permisos ya deben tener ID).
	CreateRole(ctx context.Context, role *entity.Role) error
	// AddRolePermissions enlaza permisos existentes a un rol existente.
	AddRolePermissions(ctx context.Context, roleID string, perms []*entity.Permission) error

	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) error

	CreateUnits(ctx context.Context, units []*entity.Unit) error
	CreateWarehouse(ctx context.Context, warehouse *entity.Warehouse) error
	CreateAccounts(ctx context.Context, accounts []*entity.Account) error
}
