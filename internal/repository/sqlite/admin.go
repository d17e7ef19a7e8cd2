package sqlite

import (
	"context"
	"fmt"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
)

// AdminRepository stores admins in SQLite
type AdminRepository struct {
	store *Store
}

func NewAdminRepository(store *Store) cmsRepo.AdminRepository {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := fmt.Sprintf(`INSERT INTO %s (name, email, created_at) VALUES (?, ?, ?)`, r.store.Tables.Admins)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query, admin.Name, admin.Email, admin.CreatedAt)
	if err != nil {
		if IsDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("an admin with email %q already exists", admin.Email),
				ResourceType: "admin",
			}
		}
		return fmt.Errorf("create admin: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	admin.ID = id
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := fmt.Sprintf(`SELECT id, name, email, created_at FROM %s WHERE id = ?`, r.store.Tables.Admins)

	var admin models.Admin
	err := GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, id).
		Scan(&admin.ID, &admin.Name, &admin.Email, &admin.CreatedAt)
	if err != nil {
		if IsNoRowsError(err) {
			return nil, domain.NewNotFound("admin", id)
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}
