package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates tables and indexes if they don't exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, tablePrefix string) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + tables.Admins + ` (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// parent_id has no foreign key: 0 is the root sentinel, and deleting a
		// folder does not cascade.
		`CREATE TABLE IF NOT EXISTS ` + tables.Folders + ` (
			id BIGSERIAL PRIMARY KEY,
			parent_id BIGINT NOT NULL DEFAULT 0,
			name TEXT NOT NULL,
			short_name TEXT NOT NULL UNIQUE,
			level INTEGER NOT NULL DEFAULT 1,
			sort INTEGER NOT NULL DEFAULT 1,
			status TEXT NOT NULL,
			type TEXT NOT NULL,
			rank TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Files + ` (
			id BIGSERIAL PRIMARY KEY,
			folder_id BIGINT NOT NULL DEFAULT 0,
			admin_id BIGINT NOT NULL DEFAULT 0,
			picture TEXT NOT NULL,
			name TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			view_count INTEGER NOT NULL DEFAULT 0,
			comment_count INTEGER NOT NULL DEFAULT 0,
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + tables.Comments + ` (
			id BIGSERIAL PRIMARY KEY,
			file_id BIGINT NOT NULL,
			author TEXT NOT NULL,
			content TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_parent ON ` + tables.Folders + `(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `files_folder_status ON ` + tables.Files + `(folder_id, status, type)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `files_type_status ON ` + tables.Files + `(type, status)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `comments_file_status ON ` + tables.Comments + `(file_id, status)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

// DropTables drops all tables in reverse dependency order
func DropTables(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.Comments, tables.Files, tables.Folders, tables.Admins} {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

// ClearData removes every row but keeps the schema
func ClearData(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	query := fmt.Sprintf("TRUNCATE %s, %s, %s, %s RESTART IDENTITY",
		tables.Comments, tables.Files, tables.Folders, tables.Admins)
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return nil
}
