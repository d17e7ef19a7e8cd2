package cms

import (
	"context"
	"fmt"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	"cms/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAdminRepository implements the AdminRepository interface
type PostgresAdminRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(config *postgres.RepositoryConfig) cmsRepo.AdminRepository {
	return &PostgresAdminRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new admin
func (r *PostgresAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.Admins)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, admin.Name, admin.Email, admin.CreatedAt).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("an admin with email %q already exists", admin.Email),
				ResourceType: "admin",
			}
		}
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

// GetByID retrieves an admin by ID
func (r *PostgresAdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := fmt.Sprintf(`SELECT id, name, email, created_at FROM %s WHERE id = $1`, r.tables.Admins)

	var admin models.Admin
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.CreatedAt)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("admin", id)
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &admin, nil
}
