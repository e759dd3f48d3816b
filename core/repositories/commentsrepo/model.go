package commentsrepo

import "time"

// Comment is a note attached to a task.
type Comment struct {
	CommentID int64     `db:"comment_id" json:"comment_id"`
	TaskID    string    `db:"task_id" json:"task_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateComment carries the fields accepted when creating a comment.
type CreateComment struct {
	TaskID  string `json:"task_id"`
	Content string `json:"content"`
}
