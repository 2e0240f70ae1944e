package widgets

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

var (
	// ErrTooShort is returned when a value is not longer than the minimum.
	ErrTooShort = errors.New("min limit")
	// ErrTooLong is returned when a value exceeds the maximum.
	ErrTooLong = errors.New("max limit")
)

// Validator checks the text of a field.
type Validator interface {
	Validate(value string) error
}

// NopValidator accepts everything.
type NopValidator struct{}

// Validate implements Validator.
func (NopValidator) Validate(string) error { return nil }

// StrValidator bounds the length of a string in runes. A value is valid when
// Min < len <= Max, so the zero Min still rejects the empty string.
type StrValidator struct {
	Min int
	Max int
}

// DefaultStrValidator only rejects empty values.
func DefaultStrValidator() StrValidator {
	return StrValidator{Min: 0, Max: math.MaxInt - 1}
}

// Validate implements Validator.
func (v StrValidator) Validate(value string) error {
	n := utf8.RuneCountInString(value)
	if n > v.Max {
		return fmt.Errorf("%w: %d > %d", ErrTooLong, n, v.Max)
	}
	if n <= v.Min {
		return fmt.Errorf("%w: %d <= %d", ErrTooShort, n, v.Min)
	}
	return nil
}
