package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var (
	_ repository.UserRepository      = (*UserRepo)(nil)
	_ repository.RoleRepository      = (*RoleRepo)(nil)
	_ repository.AccountRepository   = (*AccountRepo)(nil)
	_ repository.CompanyRepository   = (*CompanyRepo)(nil)
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
)

// UserRepo lectura de usuarios.
type UserRepo struct {
	db *gorm.DB
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return findUserByUsername(r.db.WithContext(ctx), username)
}

// RoleRepo lectura de roles y permisos.
type RoleRepo struct {
	db *gorm.DB
}

func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	var rows []roleModel
	err := r.db.WithContext(ctx).
		Preload("Permissions", func(db *gorm.DB) *gorm.DB { return db.Order("module").Order("name") }).
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	list := make([]*entity.Role, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *RoleRepo) HasPermission(ctx context.Context, roleName, permission string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("role_permissions AS rp").
		Joins("JOIN roles AS r ON r.id = rp.role_id").
		Joins("JOIN permissions AS p ON p.id = rp.permission_id").
		Where("r.name = ? AND p.name = ?", roleName, permission).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check permission: %w", err)
	}
	return n > 0, nil
}

// AccountRepo lectura del plan de cuentas.
type AccountRepo struct {
	db *gorm.DB
}

func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	var rows []accountModel
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	list := make([]*entity.Account, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

// CompanyRepo lectura de la empresa y sus sucursales.
type CompanyRepo struct {
	db *gorm.DB
}

func (r *CompanyRepo) First(ctx context.Context) (*entity.Company, error) {
	return firstCompany(r.db.WithContext(ctx))
}

func (r *CompanyRepo) ListBranches(ctx context.Context, companyID string) ([]*entity.Branch, error) {
	var rows []branchModel
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("code").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	list := make([]*entity.Branch, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

// WarehouseRepo lectura de bodegas.
type WarehouseRepo struct {
	db *gorm.DB
}

func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	var rows []warehouseModel
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	list := make([]*entity.Warehouse, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}
