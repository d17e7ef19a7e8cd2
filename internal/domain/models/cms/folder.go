package cms

import (
	"time"
)

// RootFolderID is the parent id of top-level folders. It is not itself a folder row.
const RootFolderID int64 = 0

type Folder struct {
	ID        int64        `json:"id" db:"id"`
	ParentID  int64        `json:"parent_id" db:"parent_id"` // 0 = root level
	Name      string       `json:"name" db:"name"`
	ShortName string       `json:"short_name" db:"short_name"` // Globally unique, used in URLs
	Level     int          `json:"level" db:"level"`           // Computed once at creation (root=1)
	Sort      int          `json:"sort" db:"sort"`
	Status    FolderStatus `json:"status" db:"status"`
	Type      FolderType   `json:"type" db:"type"`
	Rank      FolderRank   `json:"rank" db:"rank"`
	Count     int          `json:"count" db:"count"` // Denormalized content count
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// IsRoot reports whether the folder sits directly under the root sentinel
func (f *Folder) IsRoot() bool {
	return f.ParentID == RootFolderID
}

// LevelUnder returns the level a folder gets when placed under parent.
// A nil parent means the root sentinel.
func LevelUnder(parent *Folder) int {
	if parent == nil {
		return 1
	}
	return parent.Level + 1
}
