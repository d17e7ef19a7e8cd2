package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
)

const fileColumns = `id, folder_id, admin_id, picture, name, content, view_count, comment_count, type, status, created_at`

func scanFile(row rowScanner, f *models.File) error {
	return row.Scan(&f.ID, &f.FolderID, &f.AdminID, &f.Picture, &f.Name, &f.Content,
		&f.ViewCount, &f.CommentCount, &f.Type, &f.Status, &f.CreatedAt)
}

// expectRow maps "zero rows affected" to a not-found error
func expectRow(res sql.Result, resource string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.NewNotFound(resource, id)
	}
	return nil
}

// FileRepository stores content items in SQLite
type FileRepository struct {
	store *Store
}

// NewFileRepository creates a new content item repository
func NewFileRepository(store *Store) cmsRepo.FileRepository {
	return &FileRepository{store: store}
}

func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (folder_id, admin_id, picture, name, content, view_count, comment_count, type, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.store.Tables.Files)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query,
		file.FolderID, file.AdminID, file.Picture, file.Name, file.Content,
		file.ViewCount, file.CommentCount, file.Type, file.Status, file.CreatedAt)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	file.ID = id
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, fileColumns, r.store.Tables.Files)

	var file models.File
	if err := scanFile(GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, id), &file); err != nil {
		if IsNoRowsError(err) {
			return nil, domain.NewNotFound("file", id)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}
	return &file, nil
}

func (r *FileRepository) Update(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = ?, admin_id = ?, picture = ?, name = ?, content = ?,
		    view_count = ?, comment_count = ?, type = ?, status = ?
		WHERE id = ?
	`, r.store.Tables.Files)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query,
		file.FolderID, file.AdminID, file.Picture, file.Name, file.Content,
		file.ViewCount, file.CommentCount, file.Type, file.Status, file.ID)
	if err != nil {
		return fmt.Errorf("update file: %w", err)
	}
	return expectRow(res, "file", file.ID)
}

func (r *FileRepository) UpdateStatus(ctx context.Context, id int64, status models.FileStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET status = ? WHERE id = ?`, r.store.Tables.Files)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update file status: %w", err)
	}
	return expectRow(res, "file", id)
}

func buildFileWhere(filter models.FileFilter) (string, []interface{}) {
	conditions := []string{"status = ?"}
	args := []interface{}{filter.Status}

	if filter.FolderID != nil {
		conditions = append(conditions, "folder_id = ?")
		args = append(args, *filter.FolderID)
	}
	if filter.AdminID != nil {
		conditions = append(conditions, "admin_id = ?")
		args = append(args, *filter.AdminID)
	}
	if filter.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, *filter.Type)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *FileRepository) List(ctx context.Context, filter models.FileFilter, offset, limit int) ([]models.File, error) {
	where, args := buildFileWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY id DESC LIMIT ? OFFSET ?`, fileColumns, r.store.Tables.Files, where)
	return r.queryFiles(ctx, query, append(args, limit, offset)...)
}

func (r *FileRepository) Count(ctx context.Context, filter models.FileFilter) (int, error) {
	where, args := buildFileWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, r.store.Tables.Files, where)

	var total int
	if err := GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return total, nil
}

func (r *FileRepository) ListByPicture(ctx context.Context, fileType models.FileType, picture models.PictureKind) ([]models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE type = ? AND picture = ? AND status = ? ORDER BY id DESC`,
		fileColumns, r.store.Tables.Files)
	return r.queryFiles(ctx, query, fileType, picture, models.FileStatusDisplay)
}

func (r *FileRepository) UpdateViewCount(ctx context.Context, id int64, viewCount int) error {
	return r.updateCounter(ctx, id, "view_count", viewCount)
}

func (r *FileRepository) IncrementViewCount(ctx context.Context, id int64) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET view_count = view_count + 1 WHERE id = ? RETURNING view_count`, r.store.Tables.Files)

	var viewCount int
	if err := GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, id).Scan(&viewCount); err != nil {
		if IsNoRowsError(err) {
			return 0, domain.NewNotFound("file", id)
		}
		return 0, fmt.Errorf("increment view count: %w", err)
	}
	return viewCount, nil
}

func (r *FileRepository) UpdateCommentCount(ctx context.Context, id int64, commentCount int) error {
	return r.updateCounter(ctx, id, "comment_count", commentCount)
}

func (r *FileRepository) updateCounter(ctx context.Context, id int64, column string, value int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE id = ?`, r.store.Tables.Files, column)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update file %s: %w", column, err)
	}
	return expectRow(res, "file", id)
}

func (r *FileRepository) MoveToFolder(ctx context.Context, id, folderID, adminID int64) (int, error) {
	query := fmt.Sprintf(`UPDATE %s SET folder_id = ? WHERE id = ? AND admin_id = ?`, r.store.Tables.Files)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query, folderID, id, adminID)
	if err != nil {
		return 0, fmt.Errorf("move file: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("move file: %w", err)
	}
	return int(n), nil
}

func (r *FileRepository) queryFiles(ctx context.Context, query string, args ...interface{}) ([]models.File, error) {
	rows, err := GetExecutor(ctx, r.store.DB).QueryContext(ctx, query, args...)
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
