package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// AccountRepository define el puerto de lectura del plan de cuentas.
type AccountRepository interface {
	List(ctx context.Context) ([]*entity.Account, error)
}
