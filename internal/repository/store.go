// Package repository selects and opens the record store backend.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"cms/internal/config"
	"cms/internal/domain/repositories"
	cmsRepo "cms/internal/domain/repositories/cms"
	"cms/internal/repository/postgres"
	postgresCMS "cms/internal/repository/postgres/cms"
	"cms/internal/repository/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store bundles the repositories of one backend with its lifecycle hooks
type Store struct {
	Driver    string
	Folders   cmsRepo.FolderRepository
	Files     cmsRepo.FileRepository
	Admins    cmsRepo.AdminRepository
	Comments  cmsRepo.CommentRepository
	TxManager repositories.TransactionManager

	ping         func(ctx context.Context) error
	ensureSchema func(ctx context.Context) error
	dropTables   func(ctx context.Context) error
	clearData    func(ctx context.Context) error
	close        func()
}

// Open connects to the backend named by cfg.DatabaseDriver
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case DriverSQLite:
		return openSQLite(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}

	logger.Info("database connected", "driver", DriverPostgres, "max_conns", 25, "min_conns", 5)

	return &Store{
		Driver:    DriverPostgres,
		Folders:   postgresCMS.NewFolderRepository(repoConfig),
		Files:     postgresCMS.NewFileRepository(repoConfig),
		Admins:    postgresCMS.NewAdminRepository(repoConfig),
		Comments:  postgresCMS.NewCommentRepository(repoConfig),
		TxManager: postgres.NewTransactionManager(pool, logger),
		ping:      pool.Ping,
		ensureSchema: func(ctx context.Context) error {
			return postgres.EnsureSchema(ctx, pool, tables, cfg.TablePrefix)
		},
		dropTables: func(ctx context.Context) error {
			return postgres.DropTables(ctx, pool, tables)
		},
		clearData: func(ctx context.Context) error {
			return postgres.ClearData(ctx, pool, tables)
		},
		close: pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	db, err := sqlite.Open(ctx, cfg.SQLitePath, cfg.TablePrefix, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("database connected", "driver", DriverSQLite, "path", cfg.SQLitePath)

	return &Store{
		Driver:    DriverSQLite,
		Folders:   sqlite.NewFolderRepository(db),
		Files:     sqlite.NewFileRepository(db),
		Admins:    sqlite.NewAdminRepository(db),
		Comments:  sqlite.NewCommentRepository(db),
		TxManager: sqlite.NewTransactionManager(db),
		ping:      db.DB.PingContext,
		ensureSchema: func(ctx context.Context) error {
			return db.EnsureSchema(ctx, cfg.TablePrefix)
		},
		dropTables: db.DropTables,
		clearData:  db.ClearData,
		close: func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing sqlite database", "error", err)
			}
		},
	}, nil
}

// Ping checks that the backend answers
func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// EnsureSchema creates missing tables and indexes
func (s *Store) EnsureSchema(ctx context.Context) error { return s.ensureSchema(ctx) }

// DropTables drops every table owned by the configured prefix
func (s *Store) DropTables(ctx context.Context) error { return s.dropTables(ctx) }

// ClearData deletes every row and resets id sequences
func (s *Store) ClearData(ctx context.Context) error { return s.clearData(ctx) }

// Close releases the connection pool
func (s *Store) Close() { s.close() }
