package bootstrap

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// SchemaMigrator crea las tablas si no existen. Debe ser idempotente.
type SchemaMigrator interface {
	EnsureSchema(ctx context.Context) error
}

// TxRunner ejecuta fn dentro de una única transacción con un SeedRepository atado a ella.
// Si fn devuelve error se hace Rollback; si no, Commit. La implementación debe serializar
// ejecuciones concurrentes (lock de arranque) para cerrar la carrera verificar-e-insertar.
type TxRunner interface {
	RunSeed(ctx context.Context, fn func(repo repository.SeedRepository) error) error
}

// Store agrupa lo que el Seeder necesita del backend de persistencia.
type Store interface {
	SchemaMigrator
	TxRunner
}
