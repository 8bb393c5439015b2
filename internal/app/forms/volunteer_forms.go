package forms

import (
	"strconv"

	"github.com/deren/greenhub/internal/pkg/validation"
)

// VolunteerRequestForm is the general volunteer status request form. Name and
// email are server-controlled (copied from the session identity) and not part
// of the submitted fields.
type VolunteerRequestForm struct {
	Phone          string
	AreaOfInterest string
	Availability   string
}

// Validate checks the volunteer request fields.
func (f *VolunteerRequestForm) Validate() Errors {
	errs := Errors{}

	if !validation.Required(f.Phone) {
		errs.Add("phone", "Phone number is required.")
	} else if !validation.MaxLength(f.Phone, validation.PhoneMaxLength) {
		errs.Add("phone", "Phone number must be 20 characters or fewer.")
	}

	if !validation.Required(f.AreaOfInterest) {
		errs.Add("area_of_interest", "Area of interest is required.")
	} else if !validation.MaxLength(f.AreaOfInterest, validation.InterestMaxLength) {
		errs.Add("area_of_interest", "Area of interest must be 200 characters or fewer.")
	}

	if !validation.Required(f.Availability) {
		errs.Add("availability", "Availability is required.")
	} else if !validation.MaxLength(f.Availability, validation.AvailabilityMaxLength) {
		errs.Add("availability", "Availability must be 200 characters or fewer.")
	}

	return errs
}

// VolunteerApplicationForm is the per-event signup form.
type VolunteerApplicationForm struct {
	EventID    string
	Phone      string // optional
	Motivation string
}

// Validate checks the application fields.
func (f *VolunteerApplicationForm) Validate() Errors {
	errs := Errors{}

	if id, err := strconv.ParseInt(f.EventID, 10, 64); err != nil || id <= 0 {
		errs.Add("event", "Choose a valid event.")
	}

	if f.Phone != "" && !validation.MaxLength(f.Phone, validation.PhoneMaxLength) {
		errs.Add("phone", "Phone number must be 20 characters or fewer.")
	}

	if !validation.Required(f.Motivation) {
		errs.Add("motivation", "Motivation is required.")
	}

	return errs
}
