package usecase

import (
	"context"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// AccountUseCase consultas del plan de cuentas.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso con el puerto de persistencia.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// List devuelve el plan de cuentas.
func (uc *AccountUseCase) List(ctx context.Context) ([]dto.AccountResponse, error) {
	accounts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountResponse{
			ID:          a.ID,
			Code:        a.Code,
			Name:        a.Name,
			NameEn:      a.NameEn,
			AccountType: a.AccountType,
			IsSystem:    a.IsSystem,
		})
	}
	return out, nil
}
