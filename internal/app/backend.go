package app

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/internal/infrastructure/postgres"
	"github.com/jhoicas/erp-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/erp-api/pkg/config"
	"github.com/jhoicas/erp-api/pkg/logger"
)

// backend reúne lo que la aplicación usa de un motor de persistencia concreto.
type backend struct {
	driver   string
	store    bootstrap.Store
	users    repository.UserRepository
	roles    repository.RoleRepository
	accounts repository.AccountRepository
	company  repository.CompanyRepository
	stores   repository.WarehouseRepository
	stats    func(ctx context.Context) (repository.Stats, error)
	handle   any // *gorm.DB o *pgxpool.Pool, expuesto en la consola shell
	close    func()
}

// openBackend elige el motor según el esquema de DATABASE_URL.
func openBackend(ctx context.Context, cfg config.DBConfig, logLevel string, log *logger.Logger) (*backend, error) {
	switch cfg.Driver() {
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath(), logLevel, log)
		if err != nil {
			return nil, err
		}
		return &backend{
			driver:   config.DriverSQLite,
			store:    store,
			users:    store.Users(),
			roles:    store.Roles(),
			accounts: store.Accounts(),
			company:  store.Companies(),
			stores:   store.Warehouses(),
			stats:    store.Stats,
			handle:   store.DB(),
			close:    func() { _ = store.Close() },
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := postgres.NewStore(pool)
		return &backend{
			driver:   config.DriverPostgres,
			store:    store,
			users:    store.Users(),
			roles:    store.Roles(),
			accounts: store.Accounts(),
			company:  store.Companies(),
			stores:   store.Warehouses(),
			stats:    store.Stats,
			handle:   pool,
			close:    store.Close,
		}, nil
	}
	return nil, fmt.Errorf("driver de base de datos no soportado: %s", cfg.Driver())
}
