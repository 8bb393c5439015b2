package models

// Status tracks the moderation state of volunteer requests and event
// applications. Pending is the only non-terminal state: staff may move a
// record to Accepted or Denied, never back.
type Status string

const (
	StatusPending  Status = "P"
	StatusAccepted Status = "A"
	StatusDenied   Status = "D"
)

// Label returns the human-readable form used in notices.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAccepted:
		return "Accepted"
	case StatusDenied:
		return "Denied"
	default:
		return string(s)
	}
}

// Terminal reports whether the status can no longer change.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusDenied
}
