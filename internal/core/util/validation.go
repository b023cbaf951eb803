package util

import (
	"errors"
	"fmt"
	"regexp"
)

// emailShape accepts exactly one "@" with at least one character on each
// side. It is deliberately rough and lets many malformed addresses through;
// tightening it would break callers that rely on the loose check.
var emailShape = regexp.MustCompile(`^[^@]+@[^@]+$`)

// InvalidFormatError reports a field that failed a shape check.
type InvalidFormatError struct {
	Field  string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func IsInvalidFormat(err error) bool {
	var target *InvalidFormatError
	return errors.As(err, &target)
}

func ValidateEmail(email string) error {
	if !emailShape.MatchString(email) {
		return &InvalidFormatError{Field: "email", Reason: fmt.Sprintf("invalid email: %q", email)}
	}

	return nil
}

// ValidateNonEmpty rejects the empty string only. Whitespace-only values
// pass; trimming is a handler concern.
func ValidateNonEmpty(field, value string) error {
	if value == "" {
		return &InvalidFormatError{Field: field, Reason: fmt.Sprintf("%s must not be empty", field)}
	}

	return nil
}
