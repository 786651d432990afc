package apperr

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Required records a failure when value is blank.
func (v *ValidationError) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
		return false
	}
	return true
}

// MaxLen records a failure when value is longer than max runes.
func (v *ValidationError) MaxLen(field, value string, max int) bool {
	if utf8.RuneCountInString(value) > max {
		v.Add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
		return false
	}
	return true
}

// MinLen records a failure when value is shorter than min runes.
func (v *ValidationError) MinLen(field, value string, min int) bool {
	if utf8.RuneCountInString(value) < min {
		v.Add(field, fmt.Sprintf("%s must be at least %d characters", field, min))
		return false
	}
	return true
}

// Email records a failure when value is not a bare address.
func (v *ValidationError) Email(field, value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.Add(field, "invalid email address")
		return false
	}
	return true
}

// Check records message for field when ok is false.
func (v *ValidationError) Check(ok bool, field, message string) bool {
	if !ok {
		v.Add(field, message)
	}
	return ok
}
