package entity

import "time"

// Tipos de cuenta del plan contable.
const (
	AccountAsset     = "asset"
	AccountLiability = "liability"
	AccountEquity    = "equity"
	AccountRevenue   = "revenue"
	AccountExpense   = "expense"
)

// Account entrada del plan de cuentas. Las cuentas IsSystem no son editables por usuarios normales.
type Account struct {
	ID          string
	Code        string
	Name        string
	NameEn      string
	AccountType string
	IsSystem    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
