package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// UserRepository define el puerto de lectura de usuarios usado por auth.
type UserRepository interface {
	// FindByUsername devuelve el usuario con RoleName resuelto, o (nil, nil) si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
