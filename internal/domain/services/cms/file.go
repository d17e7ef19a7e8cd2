package cms

import (
	"context"

	"cms/internal/domain/models/cms"
)

// FileService handles content item lifecycle and listings
type FileService interface {
	// CreateFile inserts a content item with zeroed counters
	CreateFile(ctx context.Context, req *FileRequest) (*cms.File, error)

	// GetFile resolves an item by ID (hidden items included) and attaches its admin
	GetFile(ctx context.Context, id int64) (*cms.FileView, error)

	// UpdateFile replaces the whole row. Counters are reset to zero.
	UpdateFile(ctx context.Context, id int64, req *FileRequest) (*cms.File, error)

	// DeleteFile moves an item to the recycle bin (status hidden)
	DeleteFile(ctx context.Context, id int64) error

	// RestoreFile moves an item out of the recycle bin (status display)
	RestoreFile(ctx context.Context, id int64) error

	// SetFileStatus sets the status explicitly
	SetFileStatus(ctx context.Context, id int64, status cms.FileStatus) error

	// MoveImage reassigns an image owned by adminID to another folder
	MoveImage(ctx context.Context, folderID, fileID, adminID int64) error

	// ListByPicture lists display items of a type with a picture treatment
	ListByPicture(ctx context.Context, fileType cms.FileType, picture cms.PictureKind) ([]cms.File, error)
}

// PaginationService produces offset-based pages of content
type PaginationService interface {
	// Paginate computes the page for any filter. pageNum must be >= 1.
	Paginate(ctx context.Context, filter cms.FileFilter, pageNum, rows int) (*cms.Page[cms.FileView], error)

	// FolderPage lists display items in a folder, optionally restricted to one type
	FolderPage(ctx context.Context, folderID int64, fileType *cms.FileType, pageNum, rows int) (*cms.Page[cms.FileView], error)

	// TypePage is the admin listing of one type and status
	TypePage(ctx context.Context, fileType cms.FileType, status cms.FileStatus, pageNum int) (*cms.Page[cms.FileView], error)

	// AdminImagePage lists an admin's own items of one type
	AdminImagePage(ctx context.Context, adminID int64, fileType cms.FileType, pageNum int) (*cms.Page[cms.FileView], error)
}

// CounterService maintains the denormalized counters
type CounterService interface {
	// RecordView writes previouslyKnown+1 without reading the row first.
	// Two concurrent calls with the same stale value lose one increment.
	RecordView(ctx context.Context, id int64, previouslyKnown int) error

	// IncrementView atomically adds one view and returns the new count
	IncrementView(ctx context.Context, id int64) (int, error)

	// RecomputeCommentCount recounts display comments and overwrites the cache
	RecomputeCommentCount(ctx context.Context, id int64) (int, error)

	// RecomputeFolderCount recounts display items in a folder and overwrites its count
	RecomputeFolderCount(ctx context.Context, folderID int64) (int, error)
}

// CommentService handles comments on content items
type CommentService interface {
	AddComment(ctx context.Context, req *CommentRequest) (*cms.Comment, error)
	HideComment(ctx context.Context, id int64) error
}

// FileRequest carries every writable column of a content item
type FileRequest struct {
	FolderID int64           `json:"folder_id"`
	AdminID  int64           `json:"-"` // Set by handler from auth context
	Picture  cms.PictureKind `json:"picture"`
	Name     string          `json:"name"`
	Content  string          `json:"content"`
	Type     cms.FileType    `json:"type"`
	Status   cms.FileStatus  `json:"status"`
}

// CommentRequest represents a new comment on a content item
type CommentRequest struct {
	FileID  int64  `json:"-"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
