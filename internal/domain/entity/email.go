package entity

import (
	"fmt"
	"regexp"
	"strings"
)

const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is an immutable value object wrapping a validated email address.
// Two Emails are equal iff their normalized values are equal, so the zero
// value is comparable and usable as a map key.
type Email struct {
	value string
}

// NewEmail validates and normalizes raw into an Email. The address must have
// a local@domain.tld shape and be at most 254 characters; anything else fails
// with ErrInvalidEmail before a value exists.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if len(v) > maxEmailLength {
		return Email{}, fmt.Errorf("%w: too long (%d chars)", ErrInvalidEmail, len(v))
	}
	if !emailPattern.MatchString(v) {
		return Email{}, fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return Email{value: v}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e is the uninitialized Email.
func (e Email) IsZero() bool {
	return e.value == ""
}
