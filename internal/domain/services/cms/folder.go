package cms

import (
	"context"

	"cms/internal/domain/models/cms"
)

// FolderService handles folder business logic
type FolderService interface {
	// CreateFolder resolves the parent first to compute the level, then inserts the folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*cms.Folder, error)

	// GetFolder retrieves a folder by ID
	GetFolder(ctx context.Context, id int64) (*cms.Folder, error)

	// GetFolderByShortName retrieves a folder by its unique short name
	GetFolderByShortName(ctx context.Context, shortName string) (*cms.Folder, error)

	// UpdateFolder updates a folder in place; moving it re-levels its subtree
	UpdateFolder(ctx context.Context, id int64, req *UpdateFolderRequest) (*cms.Folder, error)

	// DeleteFolder removes the folder row. Content is not cascaded.
	DeleteFolder(ctx context.Context, id int64) error

	// ListFolders returns every folder in id order
	ListFolders(ctx context.Context) ([]cms.Folder, error)

	// ListFolderPage returns a page of folders in id order
	ListFolderPage(ctx context.Context, pageNum, rows int) (*cms.Page[cms.Folder], error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	ParentID  int64            `json:"parent_id"` // 0 = root
	Name      string           `json:"name"`
	ShortName string           `json:"short_name"`
	Status    cms.FolderStatus `json:"status"`
	Type      cms.FolderType   `json:"type"`
	Rank      cms.FolderRank   `json:"rank"`
}

// UpdateFolderRequest represents a folder update request.
// Nil fields are left unchanged.
type UpdateFolderRequest struct {
	ParentID  *int64            `json:"parent_id,omitempty"` // 0 = move to root
	Name      *string           `json:"name,omitempty"`
	ShortName *string           `json:"short_name,omitempty"`
	Status    *cms.FolderStatus `json:"status,omitempty"`
	Type      *cms.FolderType   `json:"type,omitempty"`
	Rank      *cms.FolderRank   `json:"rank,omitempty"`
	Sort      *int              `json:"sort,omitempty"`
}
