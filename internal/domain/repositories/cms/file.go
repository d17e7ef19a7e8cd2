package cms

import (
	"context"

	"cms/internal/domain/models/cms"
)

// FileRepository defines data access operations for content items
type FileRepository interface {
	// Create inserts a content item and fills in its ID and CreatedAt
	Create(ctx context.Context, file *cms.File) error

	// GetByID retrieves a content item by ID regardless of status
	GetByID(ctx context.Context, id int64) (*cms.File, error)

	// Update replaces every mutable column of the row, counters included
	Update(ctx context.Context, file *cms.File) error

	// UpdateStatus moves an item in or out of the recycle bin
	UpdateStatus(ctx context.Context, id int64, status cms.FileStatus) error

	// List returns the [offset, offset+limit) slice of items matching filter, newest first
	List(ctx context.Context, filter cms.FileFilter, offset, limit int) ([]cms.File, error)

	// Count returns the number of items matching filter (ignores offset/limit)
	Count(ctx context.Context, filter cms.FileFilter) (int, error)

	// ListByPicture lists display items of a type with the given picture treatment
	ListByPicture(ctx context.Context, fileType cms.FileType, picture cms.PictureKind) ([]cms.File, error)

	// UpdateViewCount overwrites the cached view count (blind write)
	UpdateViewCount(ctx context.Context, id int64, viewCount int) error

	// IncrementViewCount atomically adds one to the view count and returns the new value
	IncrementViewCount(ctx context.Context, id int64) (int, error)

	// UpdateCommentCount overwrites the cached comment count
	UpdateCommentCount(ctx context.Context, id int64, commentCount int) error

	// MoveToFolder reassigns an item owned by adminID to folderID.
	// Returns the number of rows changed (0 when the item is not owned by adminID).
	MoveToFolder(ctx context.Context, id, folderID, adminID int64) (int, error)
}
