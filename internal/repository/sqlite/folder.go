package sqlite

import (
	"context"
	"fmt"
	"strconv"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
)

const folderColumns = `id, parent_id, name, short_name, level, sort, status, type, rank, count, created_at`

func scanFolder(row rowScanner, f *models.Folder) error {
	return row.Scan(&f.ID, &f.ParentID, &f.Name, &f.ShortName, &f.Level, &f.Sort,
		&f.Status, &f.Type, &f.Rank, &f.Count, &f.CreatedAt)
}

// FolderRepository stores folders in SQLite
type FolderRepository struct {
	store *Store
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(store *Store) cmsRepo.FolderRepository {
	return &FolderRepository{store: store}
}

func (r *FolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (parent_id, name, short_name, level, sort, status, type, rank, count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.store.Tables.Folders)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query,
		folder.ParentID, folder.Name, folder.ShortName, folder.Level, folder.Sort,
		folder.Status, folder.Type, folder.Rank, folder.Count, folder.CreatedAt)
	if err != nil {
		if IsDuplicateError(err) {
			return r.shortNameConflict(ctx, folder.ShortName)
		}
		return fmt.Errorf("create folder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	folder.ID = id
	return nil
}

func (r *FolderRepository) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, folderColumns, r.store.Tables.Folders)

	var folder models.Folder
	if err := scanFolder(GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, id), &folder); err != nil {
		if IsNoRowsError(err) {
			return nil, domain.NewNotFound("folder", id)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return &folder, nil
}

func (r *FolderRepository) GetByShortName(ctx context.Context, shortName string) (*models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE short_name = ?`, folderColumns, r.store.Tables.Folders)

	var folder models.Folder
	if err := scanFolder(GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, shortName), &folder); err != nil {
		if IsNoRowsError(err) {
			return nil, domain.NewNotFound("folder", shortName)
		}
		return nil, fmt.Errorf("get folder by short name: %w", err)
	}
	return &folder, nil
}

func (r *FolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET parent_id = ?, name = ?, short_name = ?, level = ?, sort = ?, status = ?, type = ?, rank = ?
		WHERE id = ?
	`, r.store.Tables.Folders)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query,
		folder.ParentID, folder.Name, folder.ShortName, folder.Level, folder.Sort,
		folder.Status, folder.Type, folder.Rank, folder.ID)
	if err != nil {
		if IsDuplicateError(err) {
			return r.shortNameConflict(ctx, folder.ShortName)
		}
		return fmt.Errorf("update folder: %w", err)
	}
	return expectRow(res, "folder", folder.ID)
}

func (r *FolderRepository) UpdateLevel(ctx context.Context, id int64, level int) error {
	return r.updateColumn(ctx, id, "level", level)
}

func (r *FolderRepository) UpdateCount(ctx context.Context, id int64, count int) error {
	return r.updateColumn(ctx, id, "count", count)
}

func (r *FolderRepository) updateColumn(ctx context.Context, id int64, column string, value int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE id = ?`, r.store.Tables.Folders, column)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update folder %s: %w", column, err)
	}
	return expectRow(res, "folder", id)
}

func (r *FolderRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.store.Tables.Folders)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return expectRow(res, "folder", id)
}

func (r *FolderRepository) ListChildren(ctx context.Context, parentID int64) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE parent_id = ? ORDER BY id ASC`, folderColumns, r.store.Tables.Folders)
	return r.queryFolders(ctx, query, parentID)
}

func (r *FolderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC`, folderColumns, r.store.Tables.Folders)
	return r.queryFolders(ctx, query)
}

func (r *FolderRepository) ListPage(ctx context.Context, offset, limit int) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC LIMIT ? OFFSET ?`, folderColumns, r.store.Tables.Folders)
	return r.queryFolders(ctx, query, limit, offset)
}

func (r *FolderRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.store.Tables.Folders)

	var total int
	if err := GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}
	return total, nil
}

func (r *FolderRepository) queryFolders(ctx context.Context, query string, args ...interface{}) ([]models.Folder, error) {
	rows, err := GetExecutor(ctx, r.store.DB).QueryContext(ctx, query, args...)
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

func (r *FolderRepository) shortNameConflict(ctx context.Context, shortName string) error {
	conflict := &domain.ConflictError{
		Message:      fmt.Sprintf("a folder with short name %q already exists", shortName),
		ResourceType: "folder",
	}
	if existing, err := r.GetByShortName(ctx, shortName); err == nil {
		conflict.ResourceID = strconv.FormatInt(existing.ID, 10)
	}
	return conflict
}
