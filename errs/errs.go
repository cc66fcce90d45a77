package errs

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a storage location does not exist
var ErrNotFound = errors.New("not found")

// ParseError reports content at a location that is not well-formed
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AccessError reports an I/O failure reading or writing a location
type AccessError struct {
	Op       string // "read" or "write"
	Location string
	Err      error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Location, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// ValidationError reports user input that cannot be turned into a value
type ValidationError struct {
	Field string
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q is not valid: %v", e.Field, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q is not valid", e.Field, e.Input)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsParse reports whether err is or wraps a ParseError
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsAccess reports whether err is or wraps an AccessError
func IsAccess(err error) bool {
	var ae *AccessError
	return errors.As(err, &ae)
}

// IsValidation reports whether err is or wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
