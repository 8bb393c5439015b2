package forms

import (
	"github.com/deren/greenhub/internal/pkg/validation"
)

// SignupForm is the registration form.
type SignupForm struct {
	Username  string
	Email     string
	Password  string
	Password2 string
}

// Validate checks the signup fields.
func (f *SignupForm) Validate() Errors {
	errs := Errors{}

	if !validation.Required(f.Username) {
		errs.Add("username", "Username is required.")
	} else if !validation.MinLength(f.Username, validation.UsernameMinLength) {
		errs.Add("username", "Username is too short.")
	} else if !validation.MaxLength(f.Username, validation.UsernameMaxLength) {
		errs.Add("username", "Username is too long.")
	}

	if !validation.Required(f.Email) {
		errs.Add("email", "Email is required.")
	} else if !validation.Email(f.Email) {
		errs.Add("email", "Enter a valid email address.")
	}

	if !validation.Required(f.Password) {
		errs.Add("password", "Password is required.")
	} else if !validation.MinLength(f.Password, validation.PasswordMinLength) {
		errs.Add("password", "Password must be at least 8 characters.")
	}

	if f.Password != f.Password2 {
		errs.Add("password2", "Passwords do not match.")
	}

	return errs
}

// LoginForm is the login form.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks the login fields.
func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	if !validation.Required(f.Username) {
		errs.Add("username", "Username is required.")
	}
	if !validation.Required(f.Password) {
		errs.Add("password", "Password is required.")
	}
	return errs
}
