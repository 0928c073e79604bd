package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.SeedRepository = (*SeedRepo)(nil)

// SeedRepo implementación de SeedRepository sobre PostgreSQL (usable con pool o tx).
// Los métodos por entidad están en company_repository.go, role_repository.go,
// user_repository.go, warehouse_repository.go y account_repository.go.
type SeedRepo struct {
	q Querier
}

// NewSeedRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeedRepository(q Querier) *SeedRepo {
	return &SeedRepo{q: q}
}

// Stats cuenta las filas de cada tabla de la carga inicial en una sola consulta.
func (r *SeedRepo) Stats(ctx context.Context) (repository.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM branches),
			(SELECT COUNT(*) FROM permissions),
			(SELECT COUNT(*) FROM roles),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM units),
			(SELECT COUNT(*) FROM warehouses),
			(SELECT COUNT(*) FROM accounts)`
	var s repository.Stats
	err := r.q.QueryRow(ctx, query).Scan(
		&s.Companies, &s.Branches, &s.Permissions, &s.Roles,
		&s.Users, &s.Units, &s.Warehouses, &s.Accounts,
	)
	if err != nil {
		return repository.Stats{}, fmt.Errorf("count seed tables: %w", err)
	}
	return s, nil
}
