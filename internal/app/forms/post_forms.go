package forms

import (
	"github.com/deren/greenhub/internal/pkg/validation"
)

// PostForm is the add-post form. The optional image arrives as a multipart
// file and is handled separately by the controller.
type PostForm struct {
	Title   string
	Content string
}

// Validate checks the post fields.
func (f *PostForm) Validate() Errors {
	errs := Errors{}

	if !validation.Required(f.Title) {
		errs.Add("title", "Title is required.")
	} else if !validation.MaxLength(f.Title, validation.PostTitleMaxLength) {
		errs.Add("title", "Title must be 200 characters or fewer.")
	}

	if !validation.Required(f.Content) {
		errs.Add("content", "Content is required.")
	}

	return errs
}

// FeedbackForm is the feedback form, standalone or inline on a post detail
// page.
type FeedbackForm struct {
	Text string
}

// Validate checks the feedback fields.
func (f *FeedbackForm) Validate() Errors {
	errs := Errors{}
	if !validation.Required(f.Text) {
		errs.Add("feedback", "Feedback text is required.")
	}
	return errs
}
