// Package sqlite implementa el backend de archivo local (gorm + SQLite) para desarrollo y tests.
package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jhoicas/erp-api/pkg/logger"
)

// Parámetros del driver: BEGIN IMMEDIATE toma el lock de escritura al abrir la transacción,
// así dos arranques concurrentes se serializan en vez de competir por verificar-e-insertar.
const dsnParams = "_txlock=immediate&_busy_timeout=5000"

// Open prepara la conexión gorm sin tocar el disco: el directorio padre se crea en EnsureSchema.
// path ":memory:" usa una base en memoria con una sola conexión.
func Open(path, logLevel string, log *logger.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path+"?"+dsnParams), &gorm.Config{
		Logger:                 NewGormLogger(log, MapGormLogLevel(logLevel)),
		TranslateError:         true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("abrir sqlite: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}
	return &Store{db: db, path: path}, nil
}

// ensureDir crea el directorio que contendrá el archivo de base de datos.
func ensureDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	return nil
}
