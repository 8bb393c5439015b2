package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("invalid session token")
	ErrSessionExpired     = errors.New("session expired")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// Post and feedback errors
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
)

// Event errors
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrApplicationNotFound = errors.New("volunteer application not found")
)

// Volunteer request preconditions
var (
	ErrRequestNotFound = errors.New("volunteer request not found")
	// ErrDuplicateRequest is returned when a user submits a second volunteer
	// request; one request per user is enforced at the application layer and
	// again by a unique constraint in storage.
	ErrDuplicateRequest = errors.New("volunteer request already submitted")
	// ErrRequestNotApproved is returned when a user applies to an event
	// before their volunteer request has been accepted.
	ErrRequestNotApproved = errors.New("volunteer request not approved")
	// ErrRequestMissing is returned when a user applies to an event without
	// ever submitting a volunteer request.
	ErrRequestMissing = errors.New("volunteer request missing")
)

// ValidationError carries per-field messages for a failed form submission.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError wraps field errors from the forms layer.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
