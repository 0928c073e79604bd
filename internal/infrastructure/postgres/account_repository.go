package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// CreateAccounts inserta el plan de cuentas en un solo batch.
func (r *SeedRepo) CreateAccounts(ctx context.Context, accounts []*entity.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(`
			INSERT INTO accounts (id, code, name, name_en, account_type, is_system, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			a.ID, a.Code, a.Name, a.NameEn, a.AccountType, a.IsSystem, a.CreatedAt, a.UpdatedAt)
	}
	return r.sendBatch(ctx, batch, "account")
}

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de lectura del plan de cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// List devuelve el plan de cuentas ordenado por código.
func (r *AccountRepo) List(ctx context.Context) ([]*entity.Account, error) {
	query := `
		SELECT id, code, name, COALESCE(name_en, ''), account_type, is_system, created_at, updated_at
		FROM accounts ORDER BY code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.NameEn, &a.AccountType, &a.IsSystem, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
