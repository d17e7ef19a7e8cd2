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

// PostgresCommentRepository implements the CommentRepository interface
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(config *postgres.RepositoryConfig) cmsRepo.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new comment
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (file_id, author, content, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.tables.Comments)

	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		comment.FileID,
		comment.Author,
		comment.Content,
		comment.Status,
		comment.CreatedAt,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT id, file_id, author, content, status, created_at
		FROM %s WHERE id = $1
	`, r.tables.Comments)

	var comment models.Comment
	executor := postgres.GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.FileID,
		&comment.Author,
		&comment.Content,
		&comment.Status,
		&comment.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, domain.NewNotFound("comment", id)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// UpdateStatus shows or hides a comment
func (r *PostgresCommentRepository) UpdateStatus(ctx context.Context, id int64, status models.CommentStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1 WHERE id = $2`, r.tables.Comments)

	executor := postgres.GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update comment status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.NewNotFound("comment", id)
	}
	return nil
}

// CountByParent counts comments on fileID with the given status
func (r *PostgresCommentRepository) CountByParent(ctx context.Context, fileID int64, status models.CommentStatus) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE file_id = $1 AND status = $2`, r.tables.Comments)

	var total int
	executor := postgres.GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, fileID, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return total, nil
}
