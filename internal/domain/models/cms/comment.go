package cms

import "time"

type Comment struct {
	ID        int64         `json:"id" db:"id"`
	FileID    int64         `json:"file_id" db:"file_id"` // Parent content item
	Author    string        `json:"author" db:"author"`
	Content   string        `json:"content" db:"content"`
	Status    CommentStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}
