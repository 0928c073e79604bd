package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// FirstCompany devuelve la empresa más antigua o nil si no hay ninguna.
func (r *SeedRepo) FirstCompany(ctx context.Context) (*entity.Company, error) {
	return firstCompany(ctx, r.q)
}

func firstCompany(ctx context.Context, q Querier) (*entity.Company, error) {
	query := `
		SELECT id, name, COALESCE(name_en, ''), COALESCE(tax_number, ''), COALESCE(city, ''),
			COALESCE(country, ''), currency, tax_rate, created_at, updated_at
		FROM companies ORDER BY created_at, id LIMIT 1`
	var c entity.Company
	err := q.QueryRow(ctx, query).Scan(
		&c.ID, &c.Name, &c.NameEn, &c.TaxNumber, &c.City,
		&c.Country, &c.Currency, &c.TaxRate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first company: %w", err)
	}
	return &c, nil
}

// CreateCompany persiste una nueva empresa.
func (r *SeedRepo) CreateCompany(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, name_en, tax_number, city, country, currency, tax_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.NameEn, company.TaxNumber, company.City,
		company.Country, company.Currency, company.TaxRate, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return insertErr("company", err)
	}
	return nil
}

// FirstBranch devuelve la sucursal más antigua o nil si no hay ninguna.
func (r *SeedRepo) FirstBranch(ctx context.Context) (*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, COALESCE(name_en, ''), code, COALESCE(city, ''), is_active, created_at, updated_at
		FROM branches ORDER BY created_at, id LIMIT 1`
	var b entity.Branch
	err := r.q.QueryRow(ctx, query).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.NameEn, &b.Code, &b.City, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first branch: %w", err)
	}
	return &b, nil
}

// CreateBranch persiste una nueva sucursal.
func (r *SeedRepo) CreateBranch(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, name_en, code, city, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		branch.ID, branch.CompanyID, branch.Name, branch.NameEn, branch.Code, branch.City,
		branch.IsActive, branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		return insertErr("branch", err)
	}
	return nil
}

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de lectura de empresa.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func (r *CompanyRepo) First(ctx context.Context) (*entity.Company, error) {
	return firstCompany(ctx, r.q)
}

// ListBranches devuelve las sucursales de la empresa ordenadas por código.
func (r *CompanyRepo) ListBranches(ctx context.Context, companyID string) ([]*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, COALESCE(name_en, ''), code, COALESCE(city, ''), is_active, created_at, updated_at
		FROM branches WHERE company_id = $1 ORDER BY code`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.NameEn, &b.Code, &b.City, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
