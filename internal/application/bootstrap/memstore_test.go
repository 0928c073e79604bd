package bootstrap_test

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

// memData contenido de la base en memoria; clone() simula el aislamiento de una transacción.
type memData struct {
	companies   []*entity.Company
	branches    []*entity.Branch
	permissions []*entity.Permission
	roles       []*entity.Role
	users       []*entity.User
	units       []*entity.Unit
	warehouses  []*entity.Warehouse
	accounts    []*entity.Account
}

func (d memData) clone() memData {
	return memData{
		companies:   append([]*entity.Company(nil), d.companies...),
		branches:    append([]*entity.Branch(nil), d.branches...),
		permissions: append([]*entity.Permission(nil), d.permissions...),
		roles:       append([]*entity.Role(nil), d.roles...),
		users:       append([]*entity.User(nil), d.users...),
		units:       append([]*entity.Unit(nil), d.units...),
		warehouses:  append([]*entity.Warehouse(nil), d.warehouses...),
		accounts:    append([]*entity.Account(nil), d.accounts...),
	}
}

// memStore implementa bootstrap.Store: Commit solo si fn no devuelve error.
type memStore struct {
	data        memData
	schemaCalls int
	schemaErr   error
	failOn      string // nombre del método que falla
	failErr     error
	// afterFail simula lo que otro proceso hizo mientras esta transacción fallaba.
	afterFail func(m *memStore)
}

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) EnsureSchema(context.Context) error {
	m.schemaCalls++
	return m.schemaErr
}

func (m *memStore) RunSeed(_ context.Context, fn func(repository.SeedRepository) error) error {
	tx := &memTx{data: m.data.clone(), store: m}
	if err := fn(tx); err != nil {
		return err
	}
	m.data = tx.data
	return nil
}

func (m *memStore) stats() repository.Stats {
	s, _ := (&memTx{data: m.data}).Stats(context.Background())
	return s
}

type memTx struct {
	data  memData
	store *memStore
}

var _ repository.SeedRepository = (*memTx)(nil)

func (t *memTx) fail(method string) error {
	if t.store != nil && t.store.failOn == method {
		if t.store.afterFail != nil {
			t.store.afterFail(t.store)
		}
		return t.store.failErr
	}
	return nil
}

func (t *memTx) Stats(context.Context) (repository.Stats, error) {
	return repository.Stats{
		Companies:   len(t.data.companies),
		Branches:    len(t.data.branches),
		Permissions: len(t.data.permissions),
		Roles:       len(t.data.roles),
		Users:       len(t.data.users),
		Units:       len(t.data.units),
		Warehouses:  len(t.data.warehouses),
		Accounts:    len(t.data.accounts),
	}, nil
}

func (t *memTx) FirstCompany(context.Context) (*entity.Company, error) {
	if len(t.data.companies) == 0 {
		return nil, nil
	}
	return t.data.companies[0], nil
}

func (t *memTx) CreateCompany(_ context.Context, c *entity.Company) error {
	if err := t.fail("CreateCompany"); err != nil {
		return err
	}
	t.data.companies = append(t.data.companies, c)
	return nil
}

func (t *memTx) FirstBranch(context.Context) (*entity.Branch, error) {
	if len(t.data.branches) == 0 {
		return nil, nil
	}
	return t.data.branches[0], nil
}

func (t *memTx) CreateBranch(_ context.Context, b *entity.Branch) error {
	if err := t.fail("CreateBranch"); err != nil {
		return err
	}
	t.data.branches = append(t.data.branches, b)
	return nil
}

func (t *memTx) ListPermissions(context.Context) ([]*entity.Permission, error) {
	return append([]*entity.Permission(nil), t.data.permissions...), nil
}

func (t *memTx) CreatePermissions(_ context.Context, perms []*entity.Permission) error {
	if err := t.fail("CreatePermissions"); err != nil {
		return err
	}
	for _, p := range perms {
		for _, q := range t.data.permissions {
			if q.Name == p.Name {
				return fmt.Errorf("permiso %s: %w", p.Name, domain.ErrDuplicate)
			}
		}
		t.data.permissions = append(t.data.permissions, p)
	}
	return nil
}

func (t *memTx) FindRoleByName(_ context.Context, name string) (*entity.Role, error) {
	for _, r := range t.data.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (t *memTx) CreateRole(_ context.Context, r *entity.Role) error {
	if err := t.fail("CreateRole"); err != nil {
		return err
	}
	for _, q := range t.data.roles {
		if q.Name == r.Name {
			return fmt.Errorf("rol %s: %w", r.Name, domain.ErrDuplicate)
		}
	}
	for _, p := range r.Permissions {
		if p.ID == "" {
			return fmt.Errorf("permiso %s sin ID", p.Name)
		}
	}
	t.data.roles = append(t.data.roles, r)
	return nil
}

// AddRolePermissions reemplaza el rol por una copia para que el Rollback no vea el cambio.
func (t *memTx) AddRolePermissions(_ context.Context, roleID string, perms []*entity.Permission) error {
	if err := t.fail("AddRolePermissions"); err != nil {
		return err
	}
	for i, r := range t.data.roles {
		if r.ID != roleID {
			continue
		}
		for _, p := range perms {
			if r.HasPermission(p.Name) {
				return fmt.Errorf("rol %s permiso %s: %w", r.Name, p.Name, domain.ErrDuplicate)
			}
		}
		cp := *r
		cp.Permissions = append(append([]*entity.Permission(nil), r.Permissions...), perms...)
		t.data.roles[i] = &cp
		return nil
	}
	return fmt.Errorf("rol %s: %w", roleID, domain.ErrNotFound)
}

func (t *memTx) FindUserByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range t.data.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (t *memTx) CreateUser(_ context.Context, u *entity.User) error {
	if err := t.fail("CreateUser"); err != nil {
		return err
	}
	t.data.users = append(t.data.users, u)
	return nil
}

func (t *memTx) CreateUnits(_ context.Context, units []*entity.Unit) error {
	if err := t.fail("CreateUnits"); err != nil {
		return err
	}
	t.data.units = append(t.data.units, units...)
	return nil
}

func (t *memTx) CreateWarehouse(_ context.Context, w *entity.Warehouse) error {
	if err := t.fail("CreateWarehouse"); err != nil {
		return err
	}
	t.data.warehouses = append(t.data.warehouses, w)
	return nil
}

func (t *memTx) CreateAccounts(_ context.Context, accounts []*entity.Account) error {
	if err := t.fail("CreateAccounts"); err != nil {
		return err
	}
	t.data.accounts = append(t.data.accounts, accounts...)
	return nil
}
