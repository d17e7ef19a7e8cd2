package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"cms/internal/repository/postgres"

	_ "modernc.org/sqlite"
)

// Store holds the shared handle used by every SQLite repository
type Store struct {
	DB     *sql.DB
	Tables *postgres.TableNames
	Logger *slog.Logger
}

// Open opens (or creates) the SQLite database at dsn.
// A single connection serializes writers and keeps shared-cache in-memory
// databases alive for the lifetime of the handle.
func Open(ctx context.Context, dsn string, tablePrefix string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return &Store{
		DB:     db,
		Tables: postgres.NewTableNames(tablePrefix),
		Logger: logger,
	}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.DB.Close()
}

// DBTX is implemented by both *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txContextKey struct{}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction stored in ctx, or the database handle when there is none
func GetExecutor(ctx context.Context, db *sql.DB) DBTX {
	if tx, ok := ctx.Value(txContextKey{}).(*sql.Tx); ok && tx != nil {
		return tx
	}
	return db
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
