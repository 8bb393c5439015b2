package models

import "time"

// ReportIssue defines the issue report model based on the 'report_issues'
// table
type ReportIssue struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Issue     string    `json:"issue" db:"issue"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
