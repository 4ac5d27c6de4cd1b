// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/z5labs/safeenv"
)

// Kind selects which safeenv.Env method is used to read a variable.
// It implements pflag.Value so it can be used directly as a flag.
type Kind string

// Supported kinds, one per safeenv.Env method.
const (
	KindString          Kind = "string"
	KindNumber          Kind = "number"
	KindPositiveNumber  Kind = "positive-number"
	KindInteger         Kind = "integer"
	KindPositiveInteger Kind = "positive-integer"
	KindBoolean         Kind = "boolean"
)

var kinds = []Kind{
	KindString,
	KindNumber,
	KindPositiveNumber,
	KindInteger,
	KindPositiveInteger,
	KindBoolean,
}

// UnknownKindError occurs when a kind is not one of the supported kinds.
type UnknownKindError struct {
	Kind string
}

// Error implements the error interface.
func (e UnknownKindError) Error() string {
	ss := make([]string, len(kinds))
	for i, k := range kinds {
		ss[i] = string(k)
	}
	return fmt.Sprintf("unknown kind %q, must be one of: %s", e.Kind, strings.Join(ss, ", "))
}

// ParseKind returns the Kind named s or an UnknownKindError.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", UnknownKindError{Kind: s}
}

// String implements the pflag.Value interface.
func (k *Kind) String() string {
	return string(*k)
}

// Set implements the pflag.Value interface.
func (k *Kind) Set(s string) error {
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Type implements the pflag.Value interface.
func (k *Kind) Type() string {
	return "kind"
}

// InvalidDefaultError occurs when a default given on the command line
// can not be converted to the fallback type of its kind.
type InvalidDefaultError struct {
	Kind  Kind
	Value string
	Cause error
}

// Error implements the error interface.
func (e InvalidDefaultError) Error() string {
	return fmt.Sprintf("invalid default %q for kind %s: %s", e.Value, e.Kind, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDefaultError) Unwrap() error {
	return e.Cause
}

// Resolve reads name from env according to k and renders the validated
// value as a string. If def is non-nil it is converted to the fallback
// type of k first.
func (k Kind) Resolve(env *safeenv.Env, name string, def *string) (string, error) {
	switch k {
	case KindString:
		return env.AsString(name, fallbacks(def)...)
	case KindNumber:
		fb, err := parseFallback(k, def, parseFloat)
		if err != nil {
			return "", err
		}
		f, err := env.AsNumber(name, fb...)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case KindPositiveNumber:
		fb, err := parseFallback(k, def, parseFloat)
		if err != nil {
			return "", err
		}
		f, err := env.AsPositiveNumber(name, fb...)
		if err != nil {
			return "", err
		}
		return f.String(), nil
	case KindInteger:
		fb, err := parseFallback(k, def, parseInt)
		if err != nil {
			return "", err
		}
		n, err := env.AsInteger(name, fb...)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	case KindPositiveInteger:
		fb, err := parseFallback(k, def, parseInt)
		if err != nil {
			return "", err
		}
		n, err := env.AsPositiveInteger(name, fb...)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	case KindBoolean:
		fb, err := parseFallback(k, def, parseBool)
		if err != nil {
			return "", err
		}
		b, err := env.AsBoolean(name, fb...)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	}
	return "", UnknownKindError{Kind: string(k)}
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

var errNotBoolean = errors.New("expected one of true, false, yes, no, 1 or 0")

// parseBool accepts the same vocabulary as safeenv.Env.AsBoolean.
func parseBool(s string) (bool, error) {
	b, ok := safeenv.ParseBoolean(s)
	if !ok {
		return false, errNotBoolean
	}
	return b, nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func fallbacks(def *string) []string {
	if def == nil {
		return nil
	}
	return []string{*def}
}

func parseFallback[T any](k Kind, def *string, parse func(string) (T, error)) ([]T, error) {
	if def == nil {
		return nil, nil
	}
	v, err := parse(*def)
	if err != nil {
		return nil, InvalidDefaultError{Kind: k, Value: *def, Cause: err}
	}
	return []T{v}, nil
}
