package bootstrap_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/domain"
	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/rbac"
	"github.com/jhoicas/erp-api/internal/domain/repository"
	"github.com/jhoicas/erp-api/pkg/logger"
	"github.com/jhoicas/erp-api/pkg/password"
)

// fastOptions evita bcrypt en los tests que no verifican la contraseña.
func fastOptions() bootstrap.Options {
	var n int64
	return bootstrap.Options{
		AdminPassword: "admin123",
		NewID:         func() string { return fmt.Sprintf("id-%03d", atomic.AddInt64(&n, 1)) },
		HashPassword:  func(p string) (string, error) { return "hashed:" + p, nil },
	}
}

func newSeeder(store bootstrap.Store, status *bootstrap.Status) *bootstrap.Seeder {
	return bootstrap.NewSeeder(store, fastOptions(), logger.Nop(), status)
}

var fullStats = repository.Stats{
	Companies: 1, Branches: 1, Permissions: 50, Roles: 3,
	Users: 1, Units: 5, Warehouses: 1, Accounts: 5,
}

func TestRun_BaseVacia_CargaTodo(t *testing.T) {
	for _, policy := range []bootstrap.Policy{bootstrap.PolicyAll, bootstrap.PolicyEach} {
		t.Run(string(policy), func(t *testing.T) {
			store := newMemStore()
			status := bootstrap.NewStatus()

			res, err := newSeeder(store, status).Run(context.Background(), policy)
			require.NoError(t, err)

			assert.Equal(t, bootstrap.OutcomeSeeded, res.Outcome)
			assert.Equal(t, fullStats, store.stats())
			assert.Equal(t, 50, res.Created["permissions"])
			assert.Equal(t, 1, store.schemaCalls)
			assert.True(t, status.Ready())
		})
	}
}

func TestRun_SegundaEjecucion_NoCreaFilas(t *testing.T) {
	for _, policy := range []bootstrap.Policy{bootstrap.PolicyAll, bootstrap.PolicyEach} {
		t.Run(string(policy), func(t *testing.T) {
			store := newMemStore()
			seeder := newSeeder(store, nil)

			_, err := seeder.Run(context.Background(), policy)
			require.NoError(t, err)
			before := store.stats()

			res, err := seeder.Run(context.Background(), policy)
			require.NoError(t, err)

			assert.Equal(t, bootstrap.OutcomeSkipped, res.Outcome)
			assert.Empty(t, res.Created)
			assert.Equal(t, before, store.stats())
			assert.Equal(t, 2, store.schemaCalls, "el esquema se verifica en cada arranque")
		})
	}
}

func TestRun_PolicyAll_EmpresaExistenteBloqueaTodo(t *testing.T) {
	store := newMemStore()
	store.data.companies = []*entity.Company{{ID: "c-previa", Name: "Previa"}}

	res, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)

	assert.Equal(t, bootstrap.OutcomeSkipped, res.Outcome)
	assert.Equal(t, repository.Stats{Companies: 1}, store.stats())
}

func TestRun_PolicyEach_CompletaSoloLoQueFalta(t *testing.T) {
	store := newMemStore()
	store.data.companies = []*entity.Company{{ID: "c-previa", Name: "Previa"}}
	store.data.units = []*entity.Unit{{ID: "u-previa", Name: "Docena"}}

	res, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyEach)
	require.NoError(t, err)

	assert.Equal(t, bootstrap.OutcomePartial, res.Outcome)
	assert.NotContains(t, res.Created, "companies")
	assert.NotContains(t, res.Created, "units")

	got := store.stats()
	assert.Equal(t, 1, got.Companies)
	assert.Equal(t, 1, got.Units, "no se agregan unidades si ya hay alguna")
	assert.Equal(t, 1, got.Branches)
	assert.Equal(t, 3, got.Roles)

	assert.Equal(t, "c-previa", store.data.branches[0].CompanyID,
		"la sucursal referencia la empresa existente, no un ID supuesto")
}

func TestRun_PolicyEach_SincronizaCatalogoYRolesSiempreDerivados(t *testing.T) {
	store := newMemStore()
	// Catálogo incompleto de una versión anterior, sin roles.
	store.data.permissions = []*entity.Permission{
		{ID: "p-old-1", Name: "dashboard.view", Module: entity.ModuleMain},
		{ID: "p-old-2", Name: "settings.backup", Module: entity.ModuleSettings},
	}

	res, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyEach)
	require.NoError(t, err)

	assert.Equal(t, 48, res.Created["permissions"])
	assert.Len(t, store.data.permissions, 50)

	admin := findRole(t, store, entity.RoleAdmin)
	assert.ElementsMatch(t, rbac.CatalogNames(), admin.PermissionNames())
	assert.Contains(t, admin.Permissions, store.data.permissions[0], "los permisos previos conservan su identidad")
}

func TestRun_PolicyEach_CreaRolesBaseFaltantes(t *testing.T) {
	store := newMemStore()
	store.data.roles = []*entity.Role{{ID: "r-1", Name: "cajero"}}

	res, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyEach)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created["roles"])
	assert.Len(t, store.data.roles, 4, "el rol propio se conserva")
	assert.Empty(t, findRole(t, store, "cajero").Permissions)
	assert.Equal(t, findRole(t, store, entity.RoleAdmin).ID, store.data.users[0].RoleID)
}

func TestRun_PolicyEach_EnlazaPermisosNuevosARolesExistentes(t *testing.T) {
	store := newMemStore()
	seeder := newSeeder(store, nil)
	_, err := seeder.Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)

	// Base de una versión anterior: sin settings.view ni sus enlaces.
	const removed = "settings.view"
	var perms []*entity.Permission
	for _, p := range store.data.permissions {
		if p.Name != removed {
			perms = append(perms, p)
		}
	}
	store.data.permissions = perms
	for i, r := range store.data.roles {
		cp := *r
		cp.Permissions = nil
		for _, p := range r.Permissions {
			if p.Name != removed {
				cp.Permissions = append(cp.Permissions, p)
			}
		}
		store.data.roles[i] = &cp
	}
	require.Len(t, findRole(t, store, entity.RoleAdmin).Permissions, 49)

	status := bootstrap.NewStatus()
	res, err := bootstrap.NewSeeder(store, fastOptions(), logger.Nop(), status).Run(context.Background(), bootstrap.PolicyEach)
	require.NoError(t, err)

	assert.Equal(t, bootstrap.OutcomePartial, res.Outcome)
	assert.Equal(t, 1, res.Created["permissions"])
	assert.Equal(t, 3, res.Created["role_permissions"], "admin, manager y user reciben settings.view")
	assert.NotContains(t, res.Created, "roles")
	assert.True(t, status.Ready())

	assert.ElementsMatch(t, rbac.CatalogNames(), findRole(t, store, entity.RoleAdmin).PermissionNames())
	for _, name := range []string{entity.RoleAdmin, entity.RoleManager, entity.RoleUser} {
		assert.Contains(t, findRole(t, store, name).PermissionNames(), removed, name)
	}

	// Ya sincronizado: la siguiente ejecución no enlaza nada.
	res, err = seeder.Run(context.Background(), bootstrap.PolicyEach)
	require.NoError(t, err)
	assert.Equal(t, bootstrap.OutcomeSkipped, res.Outcome)
}

func TestRun_PolicyEach_FalloAlEnlazarHaceRollback(t *testing.T) {
	store := newMemStore()
	_, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)
	for i, r := range store.data.roles {
		if r.Name == entity.RoleAdmin {
			cp := *r
			cp.Permissions = cp.Permissions[1:]
			store.data.roles[i] = &cp
		}
	}

	store.failOn = "AddRolePermissions"
	store.failErr = errors.New("conexión perdida")
	res, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyEach)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enlazar permisos del rol admin")
	assert.Equal(t, bootstrap.OutcomeFailed, res.Outcome)
	assert.Len(t, findRole(t, store, entity.RoleAdmin).Permissions, 49)
}

func TestRun_ReferenciasCapturadas(t *testing.T) {
	store := newMemStore()
	_, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)

	company := store.data.companies[0]
	branch := store.data.branches[0]
	user := store.data.users[0]
	admin := findRole(t, store, entity.RoleAdmin)

	assert.Equal(t, company.ID, branch.CompanyID)
	assert.Equal(t, branch.ID, user.BranchID)
	assert.Equal(t, branch.ID, store.data.warehouses[0].BranchID)
	assert.Equal(t, admin.ID, user.RoleID)
	assert.Equal(t, "15", company.TaxRate.String())
	assert.Equal(t, bootstrap.DefaultBranchCode, branch.Code)
	assert.Equal(t, bootstrap.DefaultWarehouseCode, store.data.warehouses[0].Code)
}

func TestRun_RolesDerivados(t *testing.T) {
	store := newMemStore()
	_, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)

	var all, managerWant, userWant []string
	for _, p := range store.data.permissions {
		all = append(all, p.Name)
		if p.Module != entity.ModuleSettings || p.Name == "settings.view" {
			managerWant = append(managerWant, p.Name)
		}
		if strings.Contains(p.Name, ".view") {
			userWant = append(userWant, p.Name)
		}
	}

	assert.ElementsMatch(t, rbac.CatalogNames(), all)
	assert.ElementsMatch(t, all, findRole(t, store, entity.RoleAdmin).PermissionNames())
	assert.ElementsMatch(t, managerWant, findRole(t, store, entity.RoleManager).PermissionNames())
	assert.ElementsMatch(t, userWant, findRole(t, store, entity.RoleUser).PermissionNames())
}

func TestRun_PlanDeCuentas(t *testing.T) {
	store := newMemStore()
	_, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)

	require.Len(t, store.data.accounts, 5)
	byCode := map[string]string{}
	types := map[string]bool{}
	for _, a := range store.data.accounts {
		assert.True(t, a.IsSystem, a.Code)
		byCode[a.Code] = a.AccountType
		types[a.AccountType] = true
	}
	assert.Equal(t, map[string]string{
		"1000": entity.AccountAsset,
		"2000": entity.AccountLiability,
		"3000": entity.AccountEquity,
		"4000": entity.AccountRevenue,
		"5000": entity.AccountExpense,
	}, byCode)
	assert.Len(t, types, 5, "biyección código-tipo")
}

func TestRun_AdminConContraseñaHasheada(t *testing.T) {
	store := newMemStore()
	seeder := bootstrap.NewSeeder(store, bootstrap.Options{AdminPassword: "admin123"}, logger.Nop(), nil)

	_, err := seeder.Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)

	require.Len(t, store.data.users, 1)
	admin := store.data.users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, admin.IsAdmin)
	assert.True(t, admin.IsActive)
	assert.Equal(t, "ar", admin.Language)
	assert.NotEqual(t, "admin123", admin.PasswordHash)
	assert.True(t, password.Verify(admin.PasswordHash, "admin123"))
}

func TestRun_FalloAMitadDeLote_RollbackYLog(t *testing.T) {
	store := newMemStore()
	store.failOn = "CreateRole"
	store.failErr = errors.New("conexión perdida")

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})
	status := bootstrap.NewStatus()
	seeder := bootstrap.NewSeeder(store, fastOptions(), log, status)

	res, err := seeder.Run(context.Background(), bootstrap.PolicyAll)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.failErr)
	assert.Contains(t, err.Error(), "crear rol admin")
	assert.Equal(t, bootstrap.OutcomeFailed, res.Outcome)
	assert.Empty(t, res.Created)
	assert.Equal(t, repository.Stats{}, store.stats(), "los permisos insertados antes del fallo no persisten")
	assert.False(t, status.Ready())
	assert.Contains(t, buf.String(), "conexión perdida")
	assert.Contains(t, buf.String(), `"level":"error"`)

	// El proceso sigue: un nuevo intento sin fallo completa la carga.
	store.failOn = ""
	res, err = seeder.Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)
	assert.Equal(t, bootstrap.OutcomeSeeded, res.Outcome)
	assert.True(t, status.Ready())
}

func TestRun_DuplicadoConcurrenteSeTrataComoOmitido(t *testing.T) {
	// Otro proceso completa la carga mientras esta transacción choca con su empresa.
	other := newMemStore()
	_, err := newSeeder(other, nil).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)

	store := newMemStore()
	store.failOn = "CreateCompany"
	store.failErr = fmt.Errorf("insert company: %w", domain.ErrDuplicate)
	store.afterFail = func(m *memStore) { m.data = other.data.clone() }
	status := bootstrap.NewStatus()

	res, err := newSeeder(store, status).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)
	assert.Equal(t, bootstrap.OutcomeSkipped, res.Outcome)
	assert.Empty(t, res.Error)
	assert.True(t, status.Ready())
}

func TestRun_DuplicadoSinDatosCompletosFalla(t *testing.T) {
	// El conflicto viene de una fila ajena (ej. otro usuario con el correo del admin):
	// la relectura no encuentra el conjunto completo y la carga no se reporta como lista.
	store := newMemStore()
	store.failOn = "CreateUser"
	store.failErr = fmt.Errorf("insert user: %w", domain.ErrDuplicate)
	status := bootstrap.NewStatus()

	res, err := newSeeder(store, status).Run(context.Background(), bootstrap.PolicyEach)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, bootstrap.OutcomeFailed, res.Outcome)
	assert.NotEmpty(t, res.Error)
	assert.False(t, status.Ready())
	assert.Equal(t, repository.Stats{}, store.stats(), "rollback completo")
}

func TestRun_IdiomaDelAdmin(t *testing.T) {
	store := newMemStore()
	opts := fastOptions()
	opts.AdminLanguage = "es-co"

	_, err := bootstrap.NewSeeder(store, opts, logger.Nop(), nil).Run(context.Background(), bootstrap.PolicyAll)
	require.NoError(t, err)
	require.Len(t, store.data.users, 1)
	assert.Equal(t, "es-CO", store.data.users[0].Language)
}

func TestRun_IdiomaInvalido(t *testing.T) {
	store := newMemStore()
	opts := fastOptions()
	opts.AdminLanguage = "no válido"
	status := bootstrap.NewStatus()

	res, err := bootstrap.NewSeeder(store, opts, logger.Nop(), status).Run(context.Background(), bootstrap.PolicyAll)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, bootstrap.OutcomeFailed, res.Outcome)
	assert.Zero(t, store.schemaCalls)
	assert.False(t, status.Ready())
}

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]string{
		"":       bootstrap.AdminLanguage,
		"  ":     bootstrap.AdminLanguage,
		"ar":     "ar",
		"es-co":  "es-CO",
		"EN_us":  "en-US",
		"pt-BR ": "pt-BR",
	} {
		got, err := bootstrap.ParseLanguage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := bootstrap.ParseLanguage("x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRun_ErrorDeEsquema(t *testing.T) {
	store := newMemStore()
	store.schemaErr = errors.New("permiso denegado")

	res, err := newSeeder(store, nil).Run(context.Background(), bootstrap.PolicyAll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crear esquema")
	assert.Equal(t, bootstrap.OutcomeFailed, res.Outcome)
	assert.Equal(t, "crear esquema: permiso denegado", res.Error)
}

func TestRun_PoliticaInvalida(t *testing.T) {
	store := newMemStore()
	_, err := newSeeder(store, nil).Run(context.Background(), bootstrap.Policy("nunca"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.schemaCalls)
}

func TestParsePolicy(t *testing.T) {
	p, err := bootstrap.ParsePolicy("each")
	require.NoError(t, err)
	assert.Equal(t, bootstrap.PolicyEach, p)

	_, err = bootstrap.ParsePolicy("")
	assert.Error(t, err)
}

func TestStatus_SinResultadoNoEstaListo(t *testing.T) {
	status := bootstrap.NewStatus()
	assert.False(t, status.Ready())

	status.Record(bootstrap.Result{Outcome: bootstrap.OutcomeDisabled})
	assert.True(t, status.Ready())

	last, ok := status.Last()
	require.True(t, ok)
	assert.Equal(t, bootstrap.OutcomeDisabled, last.Outcome)
}

func TestShellContext_NombresFijos(t *testing.T) {
	handle := struct{}{}
	bindings := bootstrap.ShellContext(handle)

	var names []string
	for _, b := range bindings {
		names = append(names, b.Name)
	}
	assert.Equal(t, "db", names[0])
	assert.Equal(t, handle, bindings[0].Value)

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	assert.Equal(t, []string{"Account", "Branch", "Company", "Permission", "Role", "Unit", "User", "Warehouse", "db"}, sorted)
}

func findRole(t *testing.T, store *memStore, name string) *entity.Role {
	t.Helper()
	for _, r := range store.data.roles {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rol %s no encontrado", name)
	return nil
}
