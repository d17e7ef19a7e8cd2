package cms

import (
	"time"
)

// File is a content item (article, image, document) owned by one folder and one admin.
// ViewCount and CommentCount are caches, never the source of truth.
type File struct {
	ID           int64       `json:"id" db:"id"`
	FolderID     int64       `json:"folder_id" db:"folder_id"`
	AdminID      int64       `json:"admin_id" db:"admin_id"`
	Picture      PictureKind `json:"picture" db:"picture"`
	Name         string      `json:"name" db:"name"`
	Content      string      `json:"content" db:"content"`
	ViewCount    int         `json:"view_count" db:"view_count"`
	CommentCount int         `json:"comment_count" db:"comment_count"`
	Type         FileType    `json:"type" db:"type"`
	Status       FileStatus  `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}

// FileView is a File enriched with its resolved owner and folder.
// Either reference is nil when the row it points to no longer exists.
type FileView struct {
	File
	Admin  *Admin  `json:"admin,omitempty"`
	Folder *Folder `json:"folder,omitempty"`
}

// FileFilter scopes content listings and counts.
// nil FolderID / Type means "any".
type FileFilter struct {
	FolderID *int64
	AdminID  *int64
	Type     *FileType
	Status   FileStatus
}
