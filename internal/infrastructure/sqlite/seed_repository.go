package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.SeedRepository = (*SeedRepo)(nil)

// SeedRepo implementación de SeedRepository sobre gorm (usable con db o tx).
type SeedRepo struct {
	db *gorm.DB
}

// NewSeedRepository construye el adaptador.
func NewSeedRepository(db *gorm.DB) *SeedRepo {
	return &SeedRepo{db: db}
}

func (r *SeedRepo) Stats(ctx context.Context) (repository.Stats, error) {
	db := r.db.WithContext(ctx)
	var s repository.Stats
	counts := []struct {
		model any
		dst   *int
	}{
		{&companyModel{}, &s.Companies},
		{&branchModel{}, &s.Branches},
		{&permissionModel{}, &s.Permissions},
		{&roleModel{}, &s.Roles},
		{&userModel{}, &s.Users},
		{&unitModel{}, &s.Units},
		{&warehouseModel{}, &s.Warehouses},
		{&accountModel{}, &s.Accounts},
	}
	for _, c := range counts {
		var n int64
		if err := db.Model(c.model).Count(&n).Error; err != nil {
			return repository.Stats{}, fmt.Errorf("count seed tables: %w", err)
		}
		*c.dst = int(n)
	}
	return s, nil
}

func (r *SeedRepo) FirstCompany(ctx context.Context) (*entity.Company, error) {
	return firstCompany(r.db.WithContext(ctx))
}

// firstCompany devuelve la empresa más antigua o nil si no hay ninguna.
func firstCompany(db *gorm.DB) (*entity.Company, error) {
	var m companyModel
	err := db.Order("created_at").Order("id").Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first company: %w", err)
	}
	return m.toEntity(), nil
}

func (r *SeedRepo) CreateCompany(ctx context.Context, company *entity.Company) error {
	m := companyFromEntity(company)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return insertErr("company", err)
	}
	return nil
}

func (r *SeedRepo) FirstBranch(ctx context.Context) (*entity.Branch, error) {
	var m branchModel
	err := r.db.WithContext(ctx).Order("created_at").Order("id").Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first branch: %w", err)
	}
	return m.toEntity(), nil
}

func (r *SeedRepo) CreateBranch(ctx context.Context, branch *entity.Branch) error {
	m := branchFromEntity(branch)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return insertErr("branch", err)
	}
	return nil
}

func (r *SeedRepo) ListPermissions(ctx context.Context) ([]*entity.Permission, error) {
	var rows []permissionModel
	if err := r.db.WithContext(ctx).Order("module").Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	list := make([]*entity.Permission, 0, len(rows))
	for _, m := range rows {
		list = append(list, m.toEntity())
	}
	return list, nil
}

func (r *SeedRepo) CreatePermissions(ctx context.Context, perms []*entity.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	rows := make([]permissionModel, 0, len(perms))
	for _, p := range perms {
		rows = append(rows, permissionModel{ID: p.ID, Name: p.Name, NameAr: p.NameAr, Module: p.Module, CreatedAt: p.CreatedAt})
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return insertErr("permission", err)
	}
	return nil
}

func (r *SeedRepo) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var m roleModel
	err := r.db.WithContext(ctx).Preload("Permissions").Where("name = ?", name).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return m.toEntity(), nil
}

// CreateRole inserta el rol sin tocar la tabla permissions y luego sus filas de unión.
func (r *SeedRepo) CreateRole(ctx context.Context, role *entity.Role) error {
	m := roleModel{
		ID: role.ID, Name: role.Name, NameAr: role.NameAr, Description: role.Description,
		CreatedAt: role.CreatedAt, UpdatedAt: role.UpdatedAt,
	}
	links := make([]rolePermissionModel, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		if p.ID == "" {
			return fmt.Errorf("insert role %s: permiso %s sin ID", role.Name, p.Name)
		}
		links = append(links, rolePermissionModel{RoleID: role.ID, PermissionID: p.ID})
	}

	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&m).Error; err != nil {
		return insertErr("role", err)
	}
	if len(links) > 0 {
		if err := db.Create(&links).Error; err != nil {
			return insertErr("role permissions", err)
		}
	}
	return nil
}

func (r *SeedRepo) AddRolePermissions(ctx context.Context, roleID string, perms []*entity.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	links := make([]rolePermissionModel, 0, len(perms))
	for _, p := range perms {
		if p.ID == "" {
			return fmt.Errorf("insert role permissions: permiso %s sin ID", p.Name)
		}
		links = append(links, rolePermissionModel{RoleID: roleID, PermissionID: p.ID})
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return insertErr("role permissions", err)
	}
	return nil
}

func (r *SeedRepo) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return findUserByUsername(r.db.WithContext(ctx), username)
}

func (r *SeedRepo) CreateUser(ctx context.Context, user *entity.User) error {
	m := userFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return insertErr("user", err)
	}
	return nil
}

func (r *SeedRepo) CreateUnits(ctx context.Context, units []*entity.Unit) error {
	if len(units) == 0 {
		return nil
	}
	rows := make([]unitModel, 0, len(units))
	for _, u := range units {
		rows = append(rows, unitModel{ID: u.ID, Name: u.Name, NameEn: u.NameEn, Symbol: u.Symbol, CreatedAt: u.CreatedAt})
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return insertErr("unit", err)
	}
	return nil
}

func (r *SeedRepo) CreateWarehouse(ctx context.Context, w *entity.Warehouse) error {
	m := warehouseFromEntity(w)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return insertErr("warehouse", err)
	}
	return nil
}

func (r *SeedRepo) CreateAccounts(ctx context.Context, accounts []*entity.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	rows := make([]accountModel, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, accountModel{
			ID: a.ID, Code: a.Code, Name: a.Name, NameEn: a.NameEn, AccountType: a.AccountType,
			IsSystem: a.IsSystem, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
		})
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return insertErr("account", err)
	}
	return nil
}

func findUserByUsername(db *gorm.DB, username string) (*entity.User, error) {
	var rows []userWithRole
	err := db.Table("users AS u").
		Select("u.*, r.name AS role_name").
		Joins("LEFT JOIN roles AS r ON r.id = u.role_id").
		Where("u.username = ?", username).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toEntity(), nil
}
