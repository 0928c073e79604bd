package repository

import (
	"context"

	"github.com/jhoicas/erp-api/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura de la empresa y sus sucursales (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// First devuelve la empresa más antigua o nil si no hay ninguna.
	First(ctx context.Context) (*entity.Company, error)
	ListBranches(ctx context.Context, companyID string) ([]*entity.Branch, error)
}
