package cms

import (
	"context"

	"cms/internal/domain/models/cms"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create inserts a folder and fills in its ID and CreatedAt
	Create(ctx context.Context, folder *cms.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id int64) (*cms.Folder, error)

	// GetByShortName retrieves a folder by its unique short name
	GetByShortName(ctx context.Context, shortName string) (*cms.Folder, error)

	// Update writes the mutable fields (parent, name, short name, status, type, rank, sort, level)
	Update(ctx context.Context, folder *cms.Folder) error

	// UpdateLevel rewrites only the depth level of a folder
	UpdateLevel(ctx context.Context, id int64, level int) error

	// UpdateCount overwrites the denormalized content count
	UpdateCount(ctx context.Context, id int64, count int) error

	// Delete removes the row (hard delete)
	Delete(ctx context.Context, id int64) error

	// ListChildren lists immediate child folders of parentID (0 = root).
	// Rows come back in id order; callers impose their own sibling ordering.
	ListChildren(ctx context.Context, parentID int64) ([]cms.Folder, error)

	// ListAll retrieves every folder (flat list, id order)
	ListAll(ctx context.Context) ([]cms.Folder, error)

	// ListPage retrieves a slice of all folders in id order
	ListPage(ctx context.Context, offset, limit int) ([]cms.Folder, error)

	// Count returns the number of folders
	Count(ctx context.Context) (int, error)
}
