package forms

import (
	"time"

	"github.com/deren/greenhub/internal/pkg/validation"
)

// EventForm is the staff event creation form.
type EventForm struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Location    string
}

// Validate checks the event fields.
func (f *EventForm) Validate() Errors {
	errs := Errors{}

	if !validation.Required(f.Title) {
		errs.Add("title", "Title is required.")
	} else if !validation.MaxLength(f.Title, validation.EventTitleMaxLength) {
		errs.Add("title", "Title must be 255 characters or fewer.")
	}

	if !validation.Required(f.Description) {
		errs.Add("description", "Description is required.")
	}

	if !validation.Required(f.Date) {
		errs.Add("date", "Date is required.")
	} else if !validation.Date(f.Date) {
		errs.Add("date", "Date must be in YYYY-MM-DD format.")
	} else if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		errs.Add("date", "Enter a valid date.")
	}

	if !validation.Required(f.Location) {
		errs.Add("location", "Location is required.")
	} else if !validation.MaxLength(f.Location, validation.LocationMaxLength) {
		errs.Add("location", "Location must be 255 characters or fewer.")
	}

	return errs
}

// ParsedDate returns the parsed event date. Call only after Validate.
func (f *EventForm) ParsedDate() time.Time {
	t, _ := time.Parse("2006-01-02", f.Date)
	return t
}
