package verex

import (
	"errors"
	"fmt"
)

// Common builder errors
var (
	// ErrInvalidArgument indicates a verb received an argument it cannot render
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOddRange indicates Range received an unpaired boundary
	ErrOddRange = fmt.Errorf("%w: range bounds must come in (lower, upper) pairs", ErrInvalidArgument)

	// ErrInvertedRange indicates a range whose lower bound exceeds its upper bound
	ErrInvertedRange = fmt.Errorf("%w: range lower bound exceeds upper bound", ErrInvalidArgument)

	// ErrEmptyClass indicates a character set with no members
	ErrEmptyClass = fmt.Errorf("%w: empty character set", ErrInvalidArgument)
)

// ArgumentError records a caller contract violation on a single verb.
type ArgumentError struct {
	Verb  string
	Value any
	Err   error
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("verex: %s(%#v): %v", e.Verb, e.Value, e.Err)
	}
	return fmt.Sprintf("verex: %s: %v", e.Verb, e.Err)
}

// Unwrap returns the underlying error
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// CompileError wraps a matcher's rejection of a rendered pattern
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("verex: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
