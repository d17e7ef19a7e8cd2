package cms

import (
	"context"

	"cms/internal/domain/models/cms"
)

// CommentRepository defines data access operations for comments
type CommentRepository interface {
	// Create inserts a comment and fills in its ID and CreatedAt
	Create(ctx context.Context, comment *cms.Comment) error

	// GetByID retrieves a comment by ID
	GetByID(ctx context.Context, id int64) (*cms.Comment, error)

	// UpdateStatus shows or hides a comment
	UpdateStatus(ctx context.Context, id int64, status cms.CommentStatus) error

	// CountByParent counts comments on fileID with the given status
	CountByParent(ctx context.Context, fileID int64, status cms.CommentStatus) (int, error)
}
