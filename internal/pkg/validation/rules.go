package validation

import (
	"regexp"
	"strings"
)

// Field limits mirroring the table constraints.
const (
	PostTitleMaxLength    = 200
	NameMaxLength         = 100
	PhoneMaxLength        = 20
	EventTitleMaxLength   = 255
	LocationMaxLength     = 255
	InterestMaxLength     = 200
	AvailabilityMaxLength = 200
	PasswordMinLength     = 8
	UsernameMinLength     = 3
	UsernameMaxLength     = 150
)

// EmailPattern is the accepted email shape.
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Required reports whether the trimmed value is non-empty.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxLength reports whether the value fits within max bytes.
func MaxLength(value string, max int) bool {
	return len(value) <= max
}

// MinLength reports whether the value has at least min bytes.
func MinLength(value string, min int) bool {
	return len(value) >= min
}

// Email reports whether the value looks like an email address.
func Email(value string) bool {
	return EmailPattern.MatchString(value)
}

// Date reports whether the value parses as YYYY-MM-DD.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func Date(value string) bool {
	return datePattern.MatchString(value)
}
