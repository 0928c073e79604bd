package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// ListPermissions devuelve el catálogo persistido ordenado por módulo y nombre.
func (r *SeedRepo) ListPermissions(ctx context.Context) ([]*entity.Permission, error) {
	return listPermissions(ctx, r.q, `
		SELECT id, name, COALESCE(name_ar, ''), module, created_at
		FROM permissions ORDER BY module, name`)
}

// CreatePermissions inserta los permisos en un solo batch.
func (r *SeedRepo) CreatePermissions(ctx context.Context, perms []*entity.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range perms {
		batch.Queue(`
			INSERT INTO permissions (id, name, name_ar, module, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.Name, p.NameAr, p.Module, p.CreatedAt)
	}
	return r.sendBatch(ctx, batch, "permission")
}

// FindRoleByName obtiene un rol con sus permisos, o nil si no existe.
func (r *SeedRepo) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `
		SELECT id, name, COALESCE(name_ar, ''), COALESCE(description, ''), created_at, updated_at
		FROM roles WHERE name = $1`
	var role entity.Role
	err := r.q.QueryRow(ctx, query, name).Scan(
		&role.ID, &role.Name, &role.NameAr, &role.Description, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	perms, err := rolePermissions(ctx, r.q, role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = perms
	return &role, nil
}

// CreateRole inserta el rol y sus filas en role_permissions.
func (r *SeedRepo) CreateRole(ctx context.Context, role *entity.Role) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO roles (id, name, name_ar, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		role.ID, role.Name, role.NameAr, role.Description, role.CreatedAt, role.UpdatedAt)
	for _, p := range role.Permissions {
		if p.ID == "" {
			return fmt.Errorf("insert role %s: permiso %s sin ID", role.Name, p.Name)
		}
		batch.Queue(`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`, role.ID, p.ID)
	}
	return r.sendBatch(ctx, batch, "role")
}

// AddRolePermissions inserta las filas de role_permissions que falten para el rol.
func (r *SeedRepo) AddRolePermissions(ctx context.Context, roleID string, perms []*entity.Permission) error {
	if len(perms) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range perms {
		if p.ID == "" {
			return fmt.Errorf("insert role permissions: permiso %s sin ID", p.Name)
		}
		batch.Queue(`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`, roleID, p.ID)
	}
	return r.sendBatch(ctx, batch, "role permissions")
}

func (r *SeedRepo) sendBatch(ctx context.Context, batch *pgx.Batch, what string) error {
	sender, ok := r.q.(interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	})
	if !ok {
		return fmt.Errorf("insert %s: el querier no soporta batch", what)
	}
	br := sender.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return insertErr(what, err)
		}
	}
	if err := br.Close(); err != nil {
		return insertErr(what, err)
	}
	return nil
}

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de lectura de roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// List devuelve los roles ordenados por nombre, cada uno con sus permisos.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	query := `
		SELECT id, name, COALESCE(name_ar, ''), COALESCE(description, ''), created_at, updated_at
		FROM roles ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.NameAr, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	for _, role := range list {
		perms, err := rolePermissions(ctx, r.q, role.ID)
		if err != nil {
			return nil, err
		}
		role.Permissions = perms
	}
	return list, nil
}

// HasPermission informa si el rol (por nombre) tiene el permiso indicado.
func (r *RoleRepo) HasPermission(ctx context.Context, roleName, permission string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM role_permissions rp
			JOIN roles r ON r.id = rp.role_id
			JOIN permissions p ON p.id = rp.permission_id
			WHERE r.name = $1 AND p.name = $2)`
	var ok bool
	if err := r.q.QueryRow(ctx, query, roleName, permission).Scan(&ok); err != nil {
		return false, fmt.Errorf("check permission: %w", err)
	}
	return ok, nil
}

func rolePermissions(ctx context.Context, q Querier, roleID string) ([]*entity.Permission, error) {
	return listPermissions(ctx, q, `
		SELECT p.id, p.name, COALESCE(p.name_ar, ''), p.module, p.created_at
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.module, p.name`, roleID)
}

func listPermissions(ctx context.Context, q Querier, query string, args ...any) ([]*entity.Permission, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.NameAr, &p.Module, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
