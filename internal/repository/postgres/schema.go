package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables and indexes if they do not exist.
// Table names are interpolated before the SQL is sent, so each
// environment prefix gets its own statements.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, tablePrefix string) error {
	createUsers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			given_name TEXT NOT NULL,
			family_name TEXT NOT NULL,
			email TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT ` + tablePrefix + `users_user_id_key UNIQUE (user_id),
			CONSTRAINT ` + tablePrefix + `users_email_key UNIQUE (email)
		)
	`
	if _, err := pool.Exec(ctx, createUsers); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	createProjects := `
		CREATE TABLE IF NOT EXISTS ` + tables.Projects + ` (
			id BIGSERIAL PRIMARY KEY,
			project_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT ` + tablePrefix + `projects_project_id_key UNIQUE (project_id)
		)
	`
	if _, err := pool.Exec(ctx, createProjects); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}

	createMembers := `
		CREATE TABLE IF NOT EXISTS ` + tables.ProjectMembers + ` (
			user_id BIGINT NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			project_id BIGINT NOT NULL REFERENCES ` + tables.Projects + `(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, project_id)
		)
	`
	if _, err := pool.Exec(ctx, createMembers); err != nil {
		return fmt.Errorf("create project_members table: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `project_members_project ON ` + tables.ProjectMembers + `(project_id)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

// DropTables drops all tables. Used by the seed command's fresh-start
// mode; refuses nothing here, the caller guards against production.
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	stmts := []string{
		`DROP TABLE IF EXISTS ` + tables.ProjectMembers + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Projects + ` CASCADE`,
		`DROP TABLE IF EXISTS ` + tables.Users + ` CASCADE`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
