package cms

import (
	"context"
	"fmt"
	"strings"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	"cms/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
)

const fileColumns = `id, folder_id, admin_id, picture, name, content, view_count, comment_count, type, status, created_at`

func scanFile(row rowScanner, file *models.File) error {
	return row.Scan(
		&file.ID,
		&file.FolderID,
		&file.AdminID,
		&file.Picture,
		&file.Name,
		&file.Content,
		&file.ViewCount,
		&file.CommentCount,
		&file.Type,
		&file.Status,
		&file.CreatedAt,
	)
}

// PostgresFileRepository implements the FileRepository interface
type PostgresFileRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewFileRepository creates a new content item repository
func NewFileRepository(config *postgres.RepositoryConfig) cmsRepo.FileRepository {
	return &PostgresFileRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new content item
func (r *PostgresFileRepository) Create(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (folder_id, admin_id, picture, name, content, view_count, comment_count, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		file.FolderID,
		file.AdminID,
		file.Picture,
		file.Name,
		file.Content,
		file.ViewCount,
		file.CommentCount,
		file.Type,
		file.Status,
		file.CreatedAt,
	).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	return nil
}

// GetByID retrieves a content item by ID regardless of status
func (r *PostgresFileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, fileColumns, r.tables.Files)

	var file models.File
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := scanFile(executor.QueryRow(ctx, query, id), &file); err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("file", id)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return &file, nil
}

// Update replaces every mutable column, counters included
func (r *PostgresFileRepository) Update(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1, admin_id = $2, picture = $3, name = $4, content = $5,
		    view_count = $6, comment_count = $7, type = $8, status = $9
		WHERE id = $10
	`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		file.FolderID,
		file.AdminID,
		file.Picture,
		file.Name,
		file.Content,
		file.ViewCount,
		file.CommentCount,
		file.Type,
		file.Status,
		file.ID,
	)
	if err != nil {
		return fmt.Errorf("update file: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound("file", file.ID)
	}

	return nil
}

// UpdateStatus moves an item in or out of the recycle bin
func (r *PostgresFileRepository) UpdateStatus(ctx context.Context, id int64, status models.FileStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update file status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("file", id)
	}
	return nil
}

// buildFileWhere turns a filter into a WHERE clause with positional parameters
func buildFileWhere(filter models.FileFilter) (string, []interface{}) {
	conditions := []string{"status = $1"}
	args := []interface{}{filter.Status}

	if filter.FolderID != nil {
		args = append(args, *filter.FolderID)
		conditions = append(conditions, fmt.Sprintf("folder_id = $%d", len(args)))
	}
	if filter.AdminID != nil {
		args = append(args, *filter.AdminID)
		conditions = append(conditions, fmt.Sprintf("admin_id = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// List returns the [offset, offset+limit) slice of matching items, newest first
func (r *PostgresFileRepository) List(ctx context.Context, filter models.FileFilter, offset, limit int) ([]models.File, error) {
	where, args := buildFileWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
		fileColumns, r.tables.Files, where, len(args)-1, len(args))

	return r.queryFiles(ctx, query, args...)
}

// Count returns the number of items matching filter
func (r *PostgresFileRepository) Count(ctx context.Context, filter models.FileFilter) (int, error) {
	where, args := buildFileWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, r.tables.Files, where)

	var total int
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return total, nil
}

// ListByPicture lists display items of a type with the given picture treatment
func (r *PostgresFileRepository) ListByPicture(ctx context.Context, fileType models.FileType, picture models.PictureKind) ([]models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE type = $1 AND picture = $2 AND status = $3
		ORDER BY id DESC
	`, fileColumns, r.tables.Files)

	return r.queryFiles(ctx, query, fileType, picture, models.FileStatusDisplay)
}

// UpdateViewCount overwrites the cached view count
func (r *PostgresFileRepository) UpdateViewCount(ctx context.Context, id int64, viewCount int) error {
	return r.updateCounter(ctx, id, "view_count", viewCount)
}

// IncrementViewCount adds one to the view count in a single statement
func (r *PostgresFileRepository) IncrementViewCount(ctx context.Context, id int64) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, r.tables.Files)

	var viewCount int
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, id).Scan(&viewCount); err != nil {
		if postgres.IsPgNoRowsError(err) {
			return 0, domain.NewNotFound("file", id)
		}
		return 0, fmt.Errorf("increment view count: %w", err)
	}
	return viewCount, nil
}

// UpdateCommentCount overwrites the cached comment count
func (r *PostgresFileRepository) UpdateCommentCount(ctx context.Context, id int64, commentCount int) error {
	return r.updateCounter(ctx, id, "comment_count", commentCount)
}

func (r *PostgresFileRepository) updateCounter(ctx context.Context, id int64, column string, value int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE id = $2`, r.tables.Files, column)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update file %s: %w", column, err)
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("file", id)
	}
	return nil
}

// MoveToFolder reassigns an item owned by adminID and reports how many rows changed
func (r *PostgresFileRepository) MoveToFolder(ctx context.Context, id, folderID, adminID int64) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET folder_id = $1 WHERE id = $2 AND admin_id = $3`, r.tables.Files)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, folderID, id, adminID)
	if err != nil {
		return 0, fmt.Errorf("move file: %w", err)
	}
	return int(result.RowsAffected()), nil
}

func (r *PostgresFileRepository) queryFiles(ctx context.Context, query string, args ...interface{}) ([]models.File, error) {
	executor := postgres.GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		var file models.File
		if err := scanFile(rows, &file); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}

	return files, nil
}
