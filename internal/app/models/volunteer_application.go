package models

import "time"

// VolunteerApplication defines a per-event signup based on the
// 'volunteer_applications' table. Valid only once the submitter's volunteer
// request has been accepted.
type VolunteerApplication struct {
	ID         int64     `json:"id" db:"id"`
	EventID    int64     `json:"eventId" db:"event_id"`
	EventTitle string    `json:"eventTitle,omitempty" db:"-"` // joined for display
	UserID     *int64    `json:"userId,omitempty" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Motivation string    `json:"motivation" db:"motivation"`
	Status     Status    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
