package rbac_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/domain/entity"
	"github.com/jhoicas/erp-api/internal/domain/rbac"
)

func catalogPermissions() []*entity.Permission {
	var perms []*entity.Permission
	for i, e := range rbac.Catalog() {
		perms = append(perms, &entity.Permission{
			ID:     string(rune('a' + i%26)) + e.Name,
			Name:   e.Name,
			NameAr: e.NameAr,
			Module: e.Module,
		})
	}
	return perms
}

func namesOf(perms []*entity.Permission) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, p.Name)
	}
	return out
}

func TestCatalog_Completo(t *testing.T) {
	cat := rbac.Catalog()
	require.Len(t, cat, 50)

	seen := map[string]bool{}
	perModule := map[string]int{}
	for _, e := range cat {
		assert.False(t, seen[e.Name], "nombre duplicado: %s", e.Name)
		seen[e.Name] = true
		assert.Contains(t, e.Name, ".", "los permisos usan rutas con puntos")
		assert.NotEmpty(t, e.NameAr)
		perModule[e.Module]++
	}

	assert.ElementsMatch(t, rbac.Modules(), keys(perModule), "exactamente 7 módulos")
	assert.Equal(t, map[string]int{
		entity.ModuleMain:       4,
		entity.ModuleInventory:  11,
		entity.ModuleSales:      8,
		entity.ModulePurchases:  7,
		entity.ModuleAccounting: 7,
		entity.ModuleReports:    6,
		entity.ModuleSettings:   7,
	}, perModule)
}

func TestCatalog_DevuelveCopia(t *testing.T) {
	cat := rbac.Catalog()
	cat[0].Name = "alterado"
	assert.Equal(t, "dashboard.view", rbac.Catalog()[0].Name)
}

func TestBuildRoles_Derivacion(t *testing.T) {
	perms := catalogPermissions()
	roles := rbac.BuildRoles(perms)
	require.Len(t, roles, 3)

	byName := map[string]*entity.Role{}
	for _, r := range roles {
		byName[r.Name] = r
	}

	t.Run("admin tiene el catálogo completo", func(t *testing.T) {
		assert.ElementsMatch(t, rbac.CatalogNames(), namesOf(byName[entity.RoleAdmin].Permissions))
	})

	t.Run("manager excluye settings salvo settings.view", func(t *testing.T) {
		var want []string
		for _, p := range perms {
			if p.Module != entity.ModuleSettings {
				want = append(want, p.Name)
			}
		}
		want = append(want, "settings.view")

		got := byName[entity.RoleManager]
		assert.ElementsMatch(t, want, namesOf(got.Permissions))
		assert.Len(t, got.Permissions, 44)
		assert.True(t, got.HasPermission("settings.view"))
		assert.False(t, got.HasPermission("settings.users.manage"))
	})

	t.Run("user solo permisos .view", func(t *testing.T) {
		got := byName[entity.RoleUser]
		assert.Len(t, got.Permissions, 17)
		for _, name := range got.PermissionNames() {
			assert.True(t, strings.Contains(name, ".view"), name)
		}
		assert.False(t, got.HasPermission("sales.invoices.add"))
	})

	t.Run("los roles referencian los mismos permisos por identidad", func(t *testing.T) {
		for _, p := range byName[entity.RoleUser].Permissions {
			assert.Contains(t, perms, p)
		}
	})
}

func TestRoleDefinitions_Orden(t *testing.T) {
	defs := rbac.RoleDefinitions()
	require.Len(t, defs, 3)
	assert.Equal(t, []string{entity.RoleAdmin, entity.RoleManager, entity.RoleUser},
		[]string{defs[0].Name, defs[1].Name, defs[2].Name})
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
