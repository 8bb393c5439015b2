// Package forms holds one form struct per submitting entity, with explicit
// per-field validation mirroring the table constraints. A form never touches
// storage; server-controlled fields (author, status, timestamps) are filled
// by the services from the session identity.
package forms

// Errors maps field names to validation messages.
type Errors map[string]string

// Add records a message for a field, keeping the first one.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}
