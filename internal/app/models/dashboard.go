package models

// DashboardCounts is the staff dashboard rollup, one count per table.
type DashboardCounts struct {
	Posts             int64 `json:"posts"`
	ContactMessages   int64 `json:"contactMessages"`
	Feedbacks         int64 `json:"feedbacks"`
	VolunteerRequests int64 `json:"volunteerRequests"`
	Issues            int64 `json:"issues"`
	Events            int64 `json:"events"`
	Users             int64 `json:"users"`
}
