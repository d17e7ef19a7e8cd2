package sqlite

import (
	"context"
	"fmt"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
)

// CommentRepository stores comments in SQLite
type CommentRepository struct {
	store *Store
}

func NewCommentRepository(store *Store) cmsRepo.CommentRepository {
	return &CommentRepository{store: store}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`INSERT INTO %s (file_id, author, content, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.store.Tables.Comments)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query,
		comment.FileID, comment.Author, comment.Content, comment.Status, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	comment.ID = id
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := fmt.Sprintf(`SELECT id, file_id, author, content, status, created_at FROM %s WHERE id = ?`,
		r.store.Tables.Comments)

	var c models.Comment
	err := GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.FileID, &c.Author, &c.Content, &c.Status, &c.CreatedAt)
	if err != nil {
		if IsNoRowsError(err) {
			return nil, domain.NewNotFound("comment", id)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepository) UpdateStatus(ctx context.Context, id int64, status models.CommentStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET status = ? WHERE id = ?`, r.store.Tables.Comments)

	res, err := GetExecutor(ctx, r.store.DB).ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update comment status: %w", err)
	}
	return expectRow(res, "comment", id)
}

func (r *CommentRepository) CountByParent(ctx context.Context, fileID int64, status models.CommentStatus) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE file_id = ? AND status = ?`, r.store.Tables.Comments)

	var total int
	if err := GetExecutor(ctx, r.store.DB).QueryRowContext(ctx, query, fileID, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return total, nil
}
