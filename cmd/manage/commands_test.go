package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-api/internal/application/bootstrap"
	"github.com/jhoicas/erp-api/internal/domain/repository"
)

func init() {
	color.NoColor = true
}

func TestRootCmd_Subcomandos(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "init-db", "shell"}, names)
}

func TestInitDB_RechazaArgumentos(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"init-db", "extra"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, bootstrap.Result{
		Outcome: bootstrap.OutcomePartial,
		Created: map[string]int{"roles": 3, "users": 1},
	})
	out := buf.String()
	assert.Contains(t, out, "partial")
	assert.Contains(t, out, "roles")
	assert.Contains(t, out, "+3")
	assert.NotContains(t, out, "companies")
}

func TestShellJSON(t *testing.T) {
	var buf bytes.Buffer
	stats := repository.Stats{Users: 1, Roles: 3, Permissions: 50}
	require.NoError(t, writeShellJSON(&buf, bootstrap.ShellContext("handle"), stats))

	var entries []shellEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 9)
	assert.Equal(t, "db", entries[0].Name)
	assert.Nil(t, entries[0].Rows)
	assert.Equal(t, "User", entries[1].Name)
	require.NotNil(t, entries[1].Rows)
	assert.Equal(t, 1, *entries[1].Rows)
}

func TestShell_BaseNuevaSinTablas(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DATABASE_URL", "sqlite://"+filepath.Join(t.TempDir(), "fresca.db"))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"shell", "--json"})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())

	var entries []shellEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 9)
	require.NotNil(t, entries[1].Rows)
	assert.Zero(t, *entries[1].Rows)
}
