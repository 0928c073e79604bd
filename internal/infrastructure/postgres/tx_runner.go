package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ bootstrap.Store = (*Store)(nil)

// seedLockKey clave del advisory lock que serializa la carga inicial entre procesos.
const seedLockKey int64 = 0x45525053454544 // "ERPSEED"

// Store agrupa el pool y expone el TxRunner de la carga inicial y los repositorios de lectura.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el store con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Pool devuelve el pool subyacente.
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

// RunSeed inicia una transacción, toma el advisory lock de la carga, ejecuta fn con un
// SeedRepository atado a la tx y hace Commit o Rollback. El lock se libera al terminar la tx,
// así un segundo proceso espera y luego ve los datos ya confirmados.
func (s *Store) RunSeed(ctx context.Context, fn func(repo repository.SeedRepository) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	if err := fn(NewSeedRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Users repositorio de lectura de usuarios sobre el pool.
func (s *Store) Users() *UserRepo { return NewUserRepository(s.pool) }

// Roles repositorio de lectura de roles sobre el pool.
func (s *Store) Roles() *RoleRepo { return NewRoleRepository(s.pool) }

// Accounts repositorio de lectura del plan de cuentas sobre el pool.
func (s *Store) Accounts() *AccountRepo { return NewAccountRepository(s.pool) }

// Companies adaptador de lectura de empresa y sucursales sobre el pool.
func (s *Store) Companies() *CompanyRepo { return NewCompanyRepository(s.pool) }

// Warehouses adaptador de lectura de bodegas sobre el pool.
func (s *Store) Warehouses() *WarehouseRepo { return NewWarehouseRepository(s.pool) }

// Stats cuenta filas fuera de una transacción de carga (consola shell).
func (s *Store) Stats(ctx context.Context) (repository.Stats, error) {
	return NewSeedRepository(s.pool).Stats(ctx)
}

// Close cierra el pool.
func (s *Store) Close() {
	s.pool.Close()
}
