package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura de bodegas (DIP).
type WarehouseRepository interface {
	List(ctx context.Context) ([]*entity.Warehouse, error)
}
