package form

import (
	"strconv"
	"strings"
)

const (
	MinLength = 4
	MaxLength = 20

	FieldLength = "length"
)

const (
	msgRequired = "Length is required"
	msgNumeric  = "Length must be a number"
	msgTooShort = "Should be at least 4 characters"
	msgTooLong  = "Should be at most 20 characters"
)

// ValidationError is an input problem shown inline next to a field. The core
// generator is never invoked while one is outstanding.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseLength turns the raw text of the length field into a checked length.
func ParseLength(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, &ValidationError{Field: FieldLength, Message: msgRequired}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: FieldLength, Message: msgNumeric}
	}

	if err := CheckLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

// CheckLength enforces MinLength <= n <= MaxLength.
func CheckLength(n int) error {
	if n < MinLength {
		return &ValidationError{Field: FieldLength, Message: msgTooShort}
	}
	if n > MaxLength {
		return &ValidationError{Field: FieldLength, Message: msgTooLong}
	}
	return nil
}

// RequiredError is returned when the length was never supplied.
func RequiredError() error {
	return &ValidationError{Field: FieldLength, Message: msgRequired}
}
