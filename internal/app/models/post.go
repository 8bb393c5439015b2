package models

import "time"

// Post defines the post model based on the 'posts' table
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImagePath *string   `json:"imagePath,omitempty" db:"image_path"` // optional upload path (nullable)
	AuthorID  int64     `json:"authorId" db:"author_id"`
	Author    string    `json:"author,omitempty" db:"-"` // joined username for display
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
