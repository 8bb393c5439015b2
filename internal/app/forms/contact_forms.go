package forms

import (
	"github.com/deren/greenhub/internal/pkg/validation"
)

// ContactForm is the contact-us form.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Validate checks the contact fields.
func (f *ContactForm) Validate() Errors {
	errs := Errors{}

	if !validation.Required(f.Name) {
		errs.Add("name", "Name is required.")
	} else if !validation.MaxLength(f.Name, validation.NameMaxLength) {
		errs.Add("name", "Name must be 100 characters or fewer.")
	}

	if !validation.Required(f.Email) {
		errs.Add("email", "Email is required.")
	} else if !validation.Email(f.Email) {
		errs.Add("email", "Enter a valid email address.")
	}

	if !validation.Required(f.Message) {
		errs.Add("message", "Message is required.")
	}

	return errs
}

// ReportIssueForm is the public issue report form.
type ReportIssueForm struct {
	Name  string
	Issue string
}

// Validate checks the issue report fields.
func (f *ReportIssueForm) Validate() Errors {
	errs := Errors{}

	if !validation.Required(f.Name) {
		errs.Add("name", "Name is required.")
	} else if !validation.MaxLength(f.Name, validation.NameMaxLength) {
		errs.Add("name", "Name must be 100 characters or fewer.")
	}

	if !validation.Required(f.Issue) {
		errs.Add("issue", "Describe the issue.")
	}

	return errs
}
