package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-api/internal/application/dto"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// CompanyUseCase consulta de la empresa configurada.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devuelve la empresa con sus sucursales. domain.ErrNotFound si la base aún no tiene datos.
func (uc *CompanyUseCase) Get(ctx context.Context) (*dto.CompanyResponse, error) {
	company, err := uc.repo.First(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa: %w", domain.ErrNotFound)
	}
	branches, err := uc.repo.ListBranches(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	out.Branches = make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out.Branches = append(out.Branches, dto.BranchResponse{
			ID:       b.ID,
			Name:     b.Name,
			NameEn:   b.NameEn,
			Code:     b.Code,
			City:     b.City,
			IsActive: b.IsActive,
		})
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NameEn:    c.NameEn,
		TaxNumber: c.TaxNumber,
		City:      c.City,
		Country:   c.Country,
		Currency:  c.Currency,
		TaxRate:   c.TaxRate.StringFixed(2),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
