package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// Valores fijos de la carga inicial.
const (
	AdminUsername = "admin"
	AdminEmail    = "admin@example.com"
	AdminLanguage = "ar"

	DefaultBranchCode    = "BR001"
	DefaultWarehouseCode = "WH001"
)

// ParseLanguage valida la etiqueta BCP 47 del idioma del administrador y la devuelve
// en forma canónica (ej. "es-co" -> "es-CO"). Vacío equivale a AdminLanguage.
func ParseLanguage(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AdminLanguage, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: idioma del administrador %q: %v", domain.ErrInvalidInput, s, err)
	}
	return tag.String(), nil
}

// defaults construye las entidades por defecto con IDs y timestamps ya asignados.
type defaults struct {
	now      time.Time
	newID    func() string
	language string
}

func (d defaults) company() *entity.Company {
	return &entity.Company{
		ID:        d.newID(),
		Name:      "شركة نموذجية",
		NameEn:    "Sample Company",
		TaxNumber: "123456789",
		City:      "الرياض",
		Country:   "السعودية",
		Currency:  "SAR",
		TaxRate:   decimal.NewFromFloat(15.0),
		CreatedAt: d.now,
		UpdatedAt: d.now,
	}
}

func (d defaults) branch(companyID string) *entity.Branch {
	return &entity.Branch{
		ID:        d.newID(),
		CompanyID: companyID,
		Name:      "الفرع الرئيسي",
		NameEn:    "Main Branch",
		Code:      DefaultBranchCode,
		City:      "الرياض",
		IsActive:  true,
		CreatedAt: d.now,
		UpdatedAt: d.now,
	}
}

func (d defaults) admin(branchID, roleID, passwordHash string) *entity.User {
	return &entity.User{
		ID:           d.newID(),
		Username:     AdminUsername,
		Email:        AdminEmail,
		FullName:     "مدير النظام",
		PasswordHash: passwordHash,
		IsActive:     true,
		IsAdmin:      true,
		Language:     d.language,
		BranchID:     branchID,
		RoleID:       roleID,
		CreatedAt:    d.now,
		UpdatedAt:    d.now,
	}
}

func (d defaults) units() []*entity.Unit {
	units := []*entity.Unit{
		{Name: "قطعة", NameEn: "Piece", Symbol: "قطعة"},
		{Name: "كيلوجرام", NameEn: "Kilogram", Symbol: "كجم"},
		{Name: "متر", NameEn: "Meter", Symbol: "م"},
		{Name: "لتر", NameEn: "Liter", Symbol: "لتر"},
		{Name: "صندوق", NameEn: "Box", Symbol: "صندوق"},
	}
	for _, u := range units {
		u.ID = d.newID()
		u.CreatedAt = d.now
	}
	return units
}

func (d defaults) warehouse(branchID string) *entity.Warehouse {
	return &entity.Warehouse{
		ID:        d.newID(),
		BranchID:  branchID,
		Name:      "المستودع الرئيسي",
		NameEn:    "Main Warehouse",
		Code:      DefaultWarehouseCode,
		IsActive:  true,
		CreatedAt: d.now,
		UpdatedAt: d.now,
	}
}

// accounts plan de cuentas de primer nivel: un código por tipo, todas de sistema.
func (d defaults) accounts() []*entity.Account {
	accounts := []*entity.Account{
		{Code: "1000", Name: "الأصول", NameEn: "Assets", AccountType: entity.AccountAsset},
		{Code: "2000", Name: "الخصوم", NameEn: "Liabilities", AccountType: entity.AccountLiability},
		{Code: "3000", Name: "حقوق الملكية", NameEn: "Equity", AccountType: entity.AccountEquity},
		{Code: "4000", Name: "الإيرادات", NameEn: "Revenue", AccountType: entity.AccountRevenue},
		{Code: "5000", Name: "المصروفات", NameEn: "Expenses", AccountType: entity.AccountExpense},
	}
	for _, a := range accounts {
		a.ID = d.newID()
		a.IsSystem = true
		a.CreatedAt = d.now
		a.UpdatedAt = d.now
	}
	return accounts
}
