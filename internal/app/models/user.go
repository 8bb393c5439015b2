package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	IsStaff   bool      `json:"isStaff" db:"is_staff"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
