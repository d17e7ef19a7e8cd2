package cms

import "fmt"

// FolderStatus controls whether a folder is shown in navigation
type FolderStatus string

const (
	FolderStatusActive  FolderStatus = "active"
	FolderStatusHidden  FolderStatus = "hidden"
	FolderStatusDeleted FolderStatus = "deleted"
)

// Valid reports whether s is one of the known folder statuses
func (s FolderStatus) Valid() bool {
	switch s {
	case FolderStatusActive, FolderStatusHidden, FolderStatusDeleted:
		return true
	default:
		return false
	}
}

// FolderType is the content category a folder holds
type FolderType string

const (
	FolderTypeArticle  FolderType = "article"
	FolderTypePhoto    FolderType = "photo"
	FolderTypeDownload FolderType = "download"
	FolderTypePage     FolderType = "page"
)

func (t FolderType) Valid() bool {
	switch t {
	case FolderTypeArticle, FolderTypePhoto, FolderTypeDownload, FolderTypePage:
		return true
	default:
		return false
	}
}

// FolderRank is the priority tier of a folder in navigation
type FolderRank string

const (
	FolderRankNormal   FolderRank = "normal"
	FolderRankFeatured FolderRank = "featured"
	FolderRankTop      FolderRank = "top"
)

func (r FolderRank) Valid() bool {
	switch r {
	case FolderRankNormal, FolderRankFeatured, FolderRankTop:
		return true
	default:
		return false
	}
}

// FileStatus is the visibility of a content item. Hidden means recycle bin.
type FileStatus string

const (
	FileStatusDisplay FileStatus = "display"
	FileStatusHidden  FileStatus = "hidden"
)

func (s FileStatus) Valid() bool {
	switch s {
	case FileStatusDisplay, FileStatusHidden:
		return true
	default:
		return false
	}
}

// FileType is the kind of content item
type FileType string

const (
	FileTypeArticle  FileType = "article"
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
)

func (t FileType) Valid() bool {
	switch t {
	case FileTypeArticle, FileTypeImage, FileTypeDocument:
		return true
	default:
		return false
	}
}

// PictureKind controls gallery display treatment of a content item
type PictureKind string

const (
	PictureNone    PictureKind = "none"
	PictureCover   PictureKind = "cover"
	PictureGallery PictureKind = "gallery"
)

func (p PictureKind) Valid() bool {
	switch p {
	case PictureNone, PictureCover, PictureGallery:
		return true
	default:
		return false
	}
}

// CommentStatus is the visibility of a comment
type CommentStatus string

const (
	CommentStatusDisplay CommentStatus = "display"
	CommentStatusHidden  CommentStatus = "hidden"
)

func (s CommentStatus) Valid() bool {
	switch s {
	case CommentStatusDisplay, CommentStatusHidden:
		return true
	default:
		return false
	}
}

// ParseFileStatus converts a query/body value into a FileStatus
func ParseFileStatus(s string) (FileStatus, error) {
	status := FileStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown file status %q", s)
	}
	return status, nil
}

// ParseFileType converts a query/body value into a FileType
func ParseFileType(s string) (FileType, error) {
	t := FileType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown file type %q", s)
	}
	return t, nil
}

// ParsePictureKind converts a query/body value into a PictureKind
func ParsePictureKind(s string) (PictureKind, error) {
	p := PictureKind(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown picture kind %q", s)
	}
	return p, nil
}
