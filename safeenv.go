// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package safeenv

import (
	"math"
	"strconv"
	"strings"
)

// Source represents a read-only, string keyed collection of values
// e.g. the environment variables of the current process.
type Source interface {
	Lookup(name string) (string, bool)
}

// Env reads typed values out of a Source. An Env holds no state besides
// its Source, so it is safe for concurrent use as long as the Source is.
type Env struct {
	src Source
}

// New returns an Env which reads from the given Source.
func New(src Source) *Env {
	return &Env{src: src}
}

// AsString returns the value of the variable as is. An empty
// value is still a value, so the fallback is only used when the
// variable is not present at all.
func (e *Env) AsString(name string, fallback ...string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	if v, ok := e.src.Lookup(name); ok {
		return v, nil
	}
	if len(fallback) > 0 {
		return fallback[0], nil
	}
	return "", MissingVariableError{Name: name}
}

// AsNumber returns the value of the variable parsed as a base-10 float64.
func (e *Env) AsNumber(name string, fallback ...float64) (float64, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	f, _, err := e.number(name, fallback)
	return f, err
}

// AsPositiveNumber returns the value of the variable parsed as a
// base-10 float64 which must be greater than zero.
func (e *Env) AsPositiveNumber(name string, fallback ...float64) (PositiveNumber, error) {
	if err := validateName(name); err != nil {
		return PositiveNumber{}, err
	}
	f, raw, err := e.number(name, fallback)
	if err != nil {
		return PositiveNumber{}, err
	}
	if f <= 0 {
		return PositiveNumber{}, InvalidVariableError{
			Name:     name,
			Value:    raw,
			Expected: expectPositiveNumber,
		}
	}
	return PositiveNumber{f: f}, nil
}

// AsInteger returns the value of the variable parsed as an int64.
// The value must be a plain decimal literal without a sign prefix
// other than '-', leading zeros, a fraction or an exponent.
func (e *Env) AsInteger(name string, fallback ...int64) (Integer, error) {
	if err := validateName(name); err != nil {
		return Integer{}, err
	}
	n, _, err := e.integer(name, fallback)
	if err != nil {
		return Integer{}, err
	}
	return Integer{n: n}, nil
}

// AsPositiveInteger is the same as AsInteger except the
// value must also be greater than zero.
func (e *Env) AsPositiveInteger(name string, fallback ...int64) (PositiveInteger, error) {
	if err := validateName(name); err != nil {
		return PositiveInteger{}, err
	}
	n, raw, err := e.integer(name, fallback)
	if err != nil {
		return PositiveInteger{}, err
	}
	if n <= 0 {
		return PositiveInteger{}, InvalidVariableError{
			Name:     name,
			Value:    raw,
			Expected: expectPositiveInteger,
		}
	}
	return PositiveInteger{n: n}, nil
}

// AsBoolean returns the value of the variable as a bool. The accepted
// values are true, yes, 1, false, no and 0, ignoring case. A value
// outside of those is always an error, regardless of the fallback.
func (e *Env) AsBoolean(name string, fallback ...bool) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	s, ok := e.lookup(name)
	if !ok {
		if len(fallback) > 0 {
			return fallback[0], nil
		}
		return false, MissingVariableError{Name: name}
	}
	b, ok := ParseBoolean(s)
	if !ok {
		return false, InvalidVariableError{
			Name:     name,
			Value:    s,
			Expected: expectBoolean,
		}
	}
	return b, nil
}

// lookup treats empty values as absent.
func (e *Env) lookup(name string) (string, bool) {
	s, ok := e.src.Lookup(name)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func (e *Env) number(name string, fallback []float64) (float64, string, error) {
	s, ok := e.lookup(name)
	if !ok {
		if len(fallback) == 0 {
			return 0, "", MissingVariableError{Name: name}
		}
		f := fallback[0]
		raw := formatFloat(f)
		if math.IsNaN(f) {
			return 0, raw, InvalidVariableError{Name: name, Value: raw, Expected: expectNumber}
		}
		return f, raw, nil
	}

	f, err := parseNumber(s)
	if err != nil {
		return 0, s, InvalidVariableError{
			Name:     name,
			Value:    s,
			Expected: expectNumber,
			Cause:    err,
		}
	}
	if math.IsNaN(f) {
		return 0, s, InvalidVariableError{Name: name, Value: s, Expected: expectNumber}
	}
	return f, s, nil
}

func (e *Env) integer(name string, fallback []int64) (int64, string, error) {
	s, ok := e.lookup(name)
	if !ok {
		if len(fallback) == 0 {
			return 0, "", MissingVariableError{Name: name}
		}
		return fallback[0], strconv.FormatInt(fallback[0], 10), nil
	}

	n, err := parseInteger(s)
	if err != nil {
		return 0, s, InvalidVariableError{
			Name:     name,
			Value:    s,
			Expected: expectInteger,
			Cause:    err,
		}
	}
	return n, s, nil
}

func validateName(name string) error {
	if name == "" || strings.TrimSpace(name) != name {
		return InvalidNameError{Name: name}
	}
	return nil
}
