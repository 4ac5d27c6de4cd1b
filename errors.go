// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package safeenv

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingVariable is matched by every MissingVariableError.
	ErrMissingVariable = errors.New("variable is not defined")

	// ErrInvalidVariable is matched by every InvalidVariableError.
	ErrInvalidVariable = errors.New("variable is not valid")

	// ErrInvalidName is matched by every InvalidNameError.
	ErrInvalidName = errors.New("invalid variable name")
)

// MissingVariableError occurs when a variable has no usable value
// in the Source and no fallback was given.
type MissingVariableError struct {
	Name string
}

// Error implements the error interface.
func (e MissingVariableError) Error() string {
	return fmt.Sprintf("%s is not defined, and no default was provided", e.Name)
}

// Is implements the implicit interface used by errors.Is.
func (e MissingVariableError) Is(target error) bool {
	return target == ErrMissingVariable
}

// InvalidVariableError occurs when a stored value or fallback
// fails either the format or the range check of an operation.
type InvalidVariableError struct {
	// Name is empty when the error comes from a validating
	// constructor such as NewPositiveInteger.
	Name string

	// Value is the offending value as it was read from the Source,
	// or the rendered fallback if the fallback was rejected.
	Value string

	// Expected names the rule which failed e.g. "integer" or "positive number".
	Expected string

	// Cause is the underlying parse error, if any.
	Cause error
}

// Error implements the error interface.
func (e InvalidVariableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("value is not valid (%s), expected '%s'", e.Value, e.Expected)
	}
	return fmt.Sprintf("%s is not valid (%s), expected '%s'", e.Name, e.Value, e.Expected)
}

// Is implements the implicit interface used by errors.Is.
func (e InvalidVariableError) Is(target error) bool {
	return target == ErrInvalidVariable
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidVariableError) Unwrap() error {
	return e.Cause
}

// InvalidNameError occurs when a variable name is empty or
// has leading or trailing whitespace.
type InvalidNameError struct {
	Name string
}

// Error implements the error interface.
func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid variable name %q: must be non-empty without leading or trailing whitespace", e.Name)
}

// Is implements the implicit interface used by errors.Is.
func (e InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}
