package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ bootstrap.Store = (*Store)(nil)

// Store backend gorm sobre un archivo SQLite.
type Store struct {
	db   *gorm.DB
	path string
}

// DB devuelve el handle gorm (consola shell).
func (s *Store) DB() *gorm.DB { return s.db }

// EnsureSchema crea el directorio del archivo y las tablas que falten (AutoMigrate).
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := ensureDir(s.path); err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	if err := db.SetupJoinTable(&roleModel{}, "Permissions", &rolePermissionModel{}); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// RunSeed ejecuta fn dentro de una transacción (BEGIN IMMEDIATE); Commit si fn no falla.
func (s *Store) RunSeed(ctx context.Context, fn func(repo repository.SeedRepository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSeedRepository(tx))
	})
}

// Stats cuenta filas fuera de una transacción de carga.
func (s *Store) Stats(ctx context.Context) (repository.Stats, error) {
	return NewSeedRepository(s.db).Stats(ctx)
}

// Users repositorio de lectura de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{db: s.db} }

// Roles repositorio de lectura de roles.
func (s *Store) Roles() *RoleRepo { return &RoleRepo{db: s.db} }

// Accounts repositorio de lectura del plan de cuentas.
func (s *Store) Accounts() *AccountRepo { return &AccountRepo{db: s.db} }

// Companies lectura de la empresa y sus sucursales.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{db: s.db} }

// Warehouses lectura de bodegas.
func (s *Store) Warehouses() *WarehouseRepo { return &WarehouseRepo{db: s.db} }

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isUniqueViolation detecta violaciones de UNIQUE/PRIMARY KEY de SQLite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// insertErr envuelve el error de un INSERT; las violaciones de unicidad se traducen a domain.ErrDuplicate.
func insertErr(what string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("insert %s: %w", what, domain.ErrDuplicate)
	}
	return fmt.Errorf("insert %s: %w", what, err)
}
