package sqlite

import (
	"context"
	"fmt"
)

// EnsureSchema creates tables and indexes if they don't exist
func (s *Store) EnsureSchema(ctx context.Context, tablePrefix string) error {
	t := s.Tables
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + t.Admins + ` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + t.Folders + ` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_id INTEGER NOT NULL DEFAULT 0,
			name TEXT NOT NULL,
			short_name TEXT NOT NULL UNIQUE,
			level INTEGER NOT NULL DEFAULT 1,
			sort INTEGER NOT NULL DEFAULT 1,
			status TEXT NOT NULL,
			type TEXT NOT NULL,
			rank TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + t.Files + ` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			folder_id INTEGER NOT NULL DEFAULT 0,
			admin_id INTEGER NOT NULL DEFAULT 0,
			picture TEXT NOT NULL,
			name TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			view_count INTEGER NOT NULL DEFAULT 0,
			comment_count INTEGER NOT NULL DEFAULT 0,
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + t.Comments + ` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			file_id INTEGER NOT NULL,
			author TEXT NOT NULL,
			content TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_parent ON ` + t.Folders + `(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `files_folder_status ON ` + t.Files + `(folder_id, status, type)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `files_type_status ON ` + t.Files + `(type, status)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `comments_file_status ON ` + t.Comments + `(file_id, status)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropTables drops all tables
func (s *Store) DropTables(ctx context.Context) error {
	t := s.Tables
	for _, table := range []string{t.Comments, t.Files, t.Folders, t.Admins} {
		if _, err := s.DB.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

// ClearData removes every row but keeps the schema
func (s *Store) ClearData(ctx context.Context) error {
	t := s.Tables
	for _, table := range []string{t.Comments, t.Files, t.Folders, t.Admins} {
		if _, err := s.DB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	// sqlite_sequence is created alongside the first AUTOINCREMENT table
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM sqlite_sequence"); err != nil {
		return fmt.Errorf("reset sequences: %w", err)
	}
	return nil
}
