package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

type companyModel struct {
	ID        string          `gorm:"primaryKey;size:36"`
	Name      string          `gorm:"size:200;not null"`
	NameEn    string          `gorm:"size:200"`
	TaxNumber string          `gorm:"size:50"`
	City      string          `gorm:"size:100"`
	Country   string          `gorm:"size:100"`
	Currency  string          `gorm:"size:3;not null"`
	TaxRate   decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (companyModel) TableName() string { return "companies" }

type branchModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	CompanyID string `gorm:"size:36;not null;uniqueIndex:idx_branches_company_code"`
	Name      string `gorm:"size:200;not null"`
	NameEn    string `gorm:"size:200"`
	Code      string `gorm:"size:20;not null;uniqueIndex:idx_branches_company_code"`
	City      string `gorm:"size:100"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (branchModel) TableName() string { return "branches" }

type permissionModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	NameAr    string `gorm:"size:200"`
	Module    string `gorm:"size:50;not null;index"`
	CreatedAt time.Time
}

func (permissionModel) TableName() string { return "permissions" }

type roleModel struct {
	ID          string            `gorm:"primaryKey;size:36"`
	Name        string            `gorm:"size:50;not null;uniqueIndex"`
	NameAr      string            `gorm:"size:100"`
	Description string            `gorm:"type:text"`
	Permissions []permissionModel `gorm:"many2many:role_permissions;joinForeignKey:RoleID;joinReferences:PermissionID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (roleModel) TableName() string { return "roles" }

// rolePermissionModel tabla de unión explícita (SetupJoinTable).
type rolePermissionModel struct {
	RoleID       string `gorm:"primaryKey;size:36"`
	PermissionID string `gorm:"primaryKey;size:36"`
}

func (rolePermissionModel) TableName() string { return "role_permissions" }

type userModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"size:80;not null;uniqueIndex"`
	Email        string `gorm:"size:120;not null;uniqueIndex"`
	FullName     string `gorm:"size:200"`
	PasswordHash string `gorm:"size:255;not null"`
	IsActive     bool   `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null"`
	Language     string `gorm:"size:10;not null"`
	BranchID     string `gorm:"size:36;index"`
	RoleID       string `gorm:"size:36;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

// userWithRole fila de users con el nombre del rol resuelto por JOIN.
type userWithRole struct {
	userModel
	RoleName string
}

type unitModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:50;not null"`
	NameEn    string `gorm:"size:50"`
	Symbol    string `gorm:"size:10"`
	CreatedAt time.Time
}

func (unitModel) TableName() string { return "units" }

type warehouseModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	BranchID  string `gorm:"size:36;not null;index"`
	Name      string `gorm:"size:200;not null"`
	NameEn    string `gorm:"size:200"`
	Code      string `gorm:"size:20;not null;uniqueIndex"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (warehouseModel) TableName() string { return "warehouses" }

type accountModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Code        string `gorm:"size:20;not null;uniqueIndex"`
	Name        string `gorm:"size:200;not null"`
	NameEn      string `gorm:"size:200"`
	AccountType string `gorm:"size:20;not null"`
	IsSystem    bool   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (accountModel) TableName() string { return "accounts" }

// allModels orden de creación de tablas para AutoMigrate.
var allModels = []any{
	&companyModel{}, &branchModel{}, &permissionModel{}, &roleModel{}, &rolePermissionModel{},
	&userModel{}, &unitModel{}, &warehouseModel{}, &accountModel{},
}

func companyFromEntity(c *entity.Company) companyModel {
	return companyModel{
		ID: c.ID, Name: c.Name, NameEn: c.NameEn, TaxNumber: c.TaxNumber, City: c.City,
		Country: c.Country, Currency: c.Currency, TaxRate: c.TaxRate,
		CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}
}

func (m companyModel) toEntity() *entity.Company {
	return &entity.Company{
		ID: m.ID, Name: m.Name, NameEn: m.NameEn, TaxNumber: m.TaxNumber, City: m.City,
		Country: m.Country, Currency: m.Currency, TaxRate: m.TaxRate,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func branchFromEntity(b *entity.Branch) branchModel {
	return branchModel{
		ID: b.ID, CompanyID: b.CompanyID, Name: b.Name, NameEn: b.NameEn, Code: b.Code,
		City: b.City, IsActive: b.IsActive, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

func (m branchModel) toEntity() *entity.Branch {
	return &entity.Branch{
		ID: m.ID, CompanyID: m.CompanyID, Name: m.Name, NameEn: m.NameEn, Code: m.Code,
		City: m.City, IsActive: m.IsActive, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func warehouseFromEntity(w *entity.Warehouse) warehouseModel {
	return warehouseModel{
		ID: w.ID, BranchID: w.BranchID, Name: w.Name, NameEn: w.NameEn, Code: w.Code,
		IsActive: w.IsActive, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt,
	}
}

func (m warehouseModel) toEntity() *entity.Warehouse {
	return &entity.Warehouse{
		ID: m.ID, BranchID: m.BranchID, Name: m.Name, NameEn: m.NameEn, Code: m.Code,
		IsActive: m.IsActive, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func (m permissionModel) toEntity() *entity.Permission {
	return &entity.Permission{ID: m.ID, Name: m.Name, NameAr: m.NameAr, Module: m.Module, CreatedAt: m.CreatedAt}
}

func (m roleModel) toEntity() *entity.Role {
	r := &entity.Role{
		ID: m.ID, Name: m.Name, NameAr: m.NameAr, Description: m.Description,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
	for _, p := range m.Permissions {
		r.Permissions = append(r.Permissions, p.toEntity())
	}
	return r
}

func userFromEntity(u *entity.User) userModel {
	return userModel{
		ID: u.ID, Username: u.Username, Email: u.Email, FullName: u.FullName, PasswordHash: u.PasswordHash,
		IsActive: u.IsActive, IsAdmin: u.IsAdmin, Language: u.Language, BranchID: u.BranchID, RoleID: u.RoleID,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt,
	}
}

func (m userWithRole) toEntity() *entity.User {
	return &entity.User{
		ID: m.ID, Username: m.Username, Email: m.Email, FullName: m.FullName, PasswordHash: m.PasswordHash,
		IsActive: m.IsActive, IsAdmin: m.IsAdmin, Language: m.Language, BranchID: m.BranchID, RoleID: m.RoleID,
		RoleName: m.RoleName, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func (m accountModel) toEntity() *entity.Account {
	return &entity.Account{
		ID: m.ID, Code: m.Code, Name: m.Name, NameEn: m.NameEn, AccountType: m.AccountType,
		IsSystem: m.IsSystem, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}
