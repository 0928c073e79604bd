package postgres

import (
	"context"
	"fmt"
)

// schemaStatements DDL idempotente de las tablas que usa la carga inicial.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id          UUID PRIMARY KEY,
		name        VARCHAR(200) NOT NULL,
		name_en     VARCHAR(200),
		tax_number  VARCHAR(50),
		city        VARCHAR(100),
		country     VARCHAR(100),
		currency    VARCHAR(3) NOT NULL DEFAULT 'SAR',
		tax_rate    NUMERIC(5,2) NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS branches (
		id          UUID PRIMARY KEY,
		company_id  UUID NOT NULL REFERENCES companies(id),
		name        VARCHAR(200) NOT NULL,
		name_en     VARCHAR(200),
		code        VARCHAR(20) NOT NULL,
		city        VARCHAR(100),
		is_active   BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL,
		UNIQUE (company_id, code)
	)`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id          UUID PRIMARY KEY,
		name        VARCHAR(100) NOT NULL UNIQUE,
		name_ar     VARCHAR(200),
		module      VARCHAR(50) NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id          UUID PRIMARY KEY,
		name        VARCHAR(50) NOT NULL UNIQUE,
		name_ar     VARCHAR(100),
		description TEXT,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS role_permissions (
		role_id       UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		permission_id UUID NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,
		PRIMARY KEY (role_id, permission_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      VARCHAR(80) NOT NULL UNIQUE,
		email         VARCHAR(120) NOT NULL UNIQUE,
		full_name     VARCHAR(200),
		password_hash VARCHAR(255) NOT NULL,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
		language      VARCHAR(10) NOT NULL DEFAULT 'ar',
		branch_id     UUID REFERENCES branches(id),
		role_id       UUID REFERENCES roles(id),
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS units (
		id          UUID PRIMARY KEY,
		name        VARCHAR(50) NOT NULL,
		name_en     VARCHAR(50),
		symbol      VARCHAR(10),
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id          UUID PRIMARY KEY,
		branch_id   UUID NOT NULL REFERENCES branches(id),
		name        VARCHAR(200) NOT NULL,
		name_en     VARCHAR(200),
		code        VARCHAR(20) NOT NULL UNIQUE,
		is_active   BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id           UUID PRIMARY KEY,
		code         VARCHAR(20) NOT NULL UNIQUE,
		name         VARCHAR(200) NOT NULL,
		name_en      VARCHAR(200),
		account_type VARCHAR(20) NOT NULL
			CHECK (account_type IN ('asset', 'liability', 'equity', 'revenue', 'expense')),
		is_system    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema crea las tablas que falten. Se ejecuta en una transacción bajo el mismo
// advisory lock que la carga para que dos arranques no compitan por el DDL.
func (s *Store) EnsureSchema(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
