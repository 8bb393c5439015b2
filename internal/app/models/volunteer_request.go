package models

import "time"

// VolunteerRequest defines the per-user volunteer status request based on the
// 'volunteer_requests' table. At most one request exists per user; the
// user_id column carries a unique constraint.
type VolunteerRequest struct {
	ID             int64     `json:"id" db:"id"`
	UserID         *int64    `json:"userId,omitempty" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	AreaOfInterest string    `json:"areaOfInterest" db:"area_of_interest"`
	Availability   string    `json:"availability" db:"availability"` // e.g. weekends, evenings
	Status         Status    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
