package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `
	u.id, u.username, u.email, COALESCE(u.full_name, ''), u.password_hash, u.is_active, u.is_admin,
	u.language, COALESCE(u.branch_id::text, ''), COALESCE(u.role_id::text, ''), COALESCE(r.name, ''),
	u.created_at, u.updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// FindByUsername obtiene un usuario por username con el nombre de su rol.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return findUserByUsername(ctx, r.q, username)
}

// FindUserByUsername variante de la carga inicial, dentro de la tx.
func (r *SeedRepo) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return findUserByUsername(ctx, r.q, username)
}

// CreateUser persiste un nuevo usuario.
func (r *SeedRepo) CreateUser(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, full_name, password_hash, is_active, is_admin, language,
			branch_id, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::uuid, NULLIF($10, '')::uuid, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.PasswordHash, user.IsActive, user.IsAdmin,
		user.Language, user.BranchID, user.RoleID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return insertErr("user", err)
	}
	return nil
}

func findUserByUsername(ctx context.Context, q Querier, username string) (*entity.User, error) {
	query := `SELECT` + userColumns + `
		FROM users u LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.username = $1`
	var u entity.User
	err := q.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.IsActive, &u.IsAdmin,
		&u.Language, &u.BranchID, &u.RoleID, &u.RoleName, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}
