package cms

import (
	"context"
	"fmt"
	"strconv"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	"cms/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

const folderColumns = `id, parent_id, name, short_name, level, sort, status, type, rank, count, created_at`

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFolder(row rowScanner, folder *models.Folder) error {
	return row.Scan(
		&folder.ID,
		&folder.ParentID,
		&folder.Name,
		&folder.ShortName,
		&folder.Level,
		&folder.Sort,
		&folder.Status,
		&folder.Type,
		&folder.Rank,
		&folder.Count,
		&folder.CreatedAt,
	)
}

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *postgres.RepositoryConfig) cmsRepo.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (parent_id, name, short_name, level, sort, status, type, rank, count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, r.tables.Folders)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		folder.ParentID,
		folder.Name,
		folder.ShortName,
		folder.Level,
		folder.Sort,
		folder.Status,
		folder.Type,
		folder.Rank,
		folder.Count,
		folder.CreatedAt,
	).Scan(&folder.ID, &folder.CreatedAt)

	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return r.shortNameConflict(ctx, folder.ShortName)
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, folderColumns, r.tables.Folders)

	var folder models.Folder
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := scanFolder(executor.QueryRow(ctx, query, id), &folder); err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("folder", id)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// GetByShortName retrieves a folder by its unique short name
func (r *PostgresFolderRepository) GetByShortName(ctx context.Context, shortName string) (*models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE short_name = $1`, folderColumns, r.tables.Folders)

	var folder models.Folder
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := scanFolder(executor.QueryRow(ctx, query, shortName), &folder); err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("folder", shortName)
		}
		return nil, fmt.Errorf("get folder by short name: %w", err)
	}

	return &folder, nil
}

// Update writes the mutable fields of a folder
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET parent_id = $1, name = $2, short_name = $3, level = $4, sort = $5,
		    status = $6, type = $7, rank = $8
		WHERE id = $9
	`, r.tables.Folders)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		folder.ParentID,
		folder.Name,
		folder.ShortName,
		folder.Level,
		folder.Sort,
		folder.Status,
		folder.Type,
		folder.Rank,
		folder.ID,
	)
	if err != nil {
		if postgres.IsPgDuplicateError(err) {
			return r.shortNameConflict(ctx, folder.ShortName)
		}
		return fmt.Errorf("update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("folder", folder.ID)
	}

	return nil
}

// UpdateLevel rewrites only the depth level of a folder
func (r *PostgresFolderRepository) UpdateLevel(ctx context.Context, id int64, level int) error {
	return r.updateColumn(ctx, id, "level", level)
}

// UpdateCount overwrites the denormalized content count
func (r *PostgresFolderRepository) UpdateCount(ctx context.Context, id int64, count int) error {
	return r.updateColumn(ctx, id, "count", count)
}

func (r *PostgresFolderRepository) updateColumn(ctx context.Context, id int64, column string, value int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE id = $2`, r.tables.Folders, column)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update folder %s: %w", column, err)
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("folder", id)
	}
	return nil
}

// Delete removes the folder row
func (r *PostgresFolderRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Folders)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("folder", id)
	}

	return nil
}

// ListChildren lists immediate child folders in id order
func (r *PostgresFolderRepository) ListChildren(ctx context.Context, parentID int64) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE parent_id = $1 ORDER BY id ASC`, folderColumns, r.tables.Folders)
	return r.queryFolders(ctx, query, parentID)
}

// ListAll retrieves every folder (flat list)
func (r *PostgresFolderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC`, folderColumns, r.tables.Folders)
	return r.queryFolders(ctx, query)
}

// ListPage retrieves a slice of all folders
func (r *PostgresFolderRepository) ListPage(ctx context.Context, offset, limit int) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC LIMIT $1 OFFSET $2`, folderColumns, r.tables.Folders)
	return r.queryFolders(ctx, query, limit, offset)
}

// Count returns the number of folders
func (r *PostgresFolderRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.tables.Folders)

	var total int
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}
	return total, nil
}

func (r *PostgresFolderRepository) queryFolders(ctx context.Context, query string, args ...interface{}) ([]models.Folder, error) {
	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		var folder models.Folder
		if err := scanFolder(rows, &folder); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// shortNameConflict builds a ConflictError pointing at the folder that owns shortName
func (r *PostgresFolderRepository) shortNameConflict(ctx context.Context, shortName string) error {
	conflict := &domain.ConflictError{
		Message:      fmt.Sprintf("a folder with short name %q already exists", shortName),
		ResourceType: "folder",
	}
	if existing, err := r.GetByShortName(ctx, shortName); err == nil {
		conflict.ResourceID = strconv.FormatInt(existing.ID, 10)
	}
	return conflict
}
