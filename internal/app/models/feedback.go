package models

import "time"

// Feedback defines the feedback model based on the 'feedbacks' table.
// PostID is nullable: feedback submitted from the standalone form is not
// attached to any post.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Username  string    `json:"username,omitempty" db:"-"` // joined for display
	PostID    *int64    `json:"postId,omitempty" db:"post_id"`
	Text      string    `json:"text" db:"feedback"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
