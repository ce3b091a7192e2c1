package auth

import "strings"

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterDTO carries the registration form.
type RegisterDTO struct {
	FirstName   string `json:"nome"`
	LastName    string `json:"cognome"`
	DateOfBirth string `json:"dob"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

// Validate checks the registration form. Password length is checked by the
// service against its configured minimum.
func (d RegisterDTO) Validate() error {
	if d.FirstName == "" || d.LastName == "" {
		return ValidationError{Msg: "first and last name are required"}
	}
	if d.DateOfBirth == "" {
		return ValidationError{Msg: "date of birth is required"}
	}
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return ValidationError{Msg: "a valid email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
