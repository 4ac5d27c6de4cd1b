// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package safeenv

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	expectNumber          = "number"
	expectPositiveNumber  = "positive number"
	expectInteger         = "integer"
	expectPositiveInteger = "positive integer"
	expectBoolean         = "boolean"
)

var integerPattern = regexp.MustCompile(`^(0|-?[1-9][0-9]*)$`)

var booleanTable = map[string]bool{
	"true":  true,
	"yes":   true,
	"1":     true,
	"false": false,
	"no":    false,
	"0":     false,
}

// PositiveNumber is a float64 which is known to be greater than zero.
// It can only be obtained from an Env or NewPositiveNumber.
type PositiveNumber struct {
	f float64
}

// NewPositiveNumber validates f and wraps it as a PositiveNumber.
func NewPositiveNumber(f float64) (PositiveNumber, error) {
	if math.IsNaN(f) {
		return PositiveNumber{}, InvalidVariableError{Value: formatFloat(f), Expected: expectNumber}
	}
	if f <= 0 {
		return PositiveNumber{}, InvalidVariableError{Value: formatFloat(f), Expected: expectPositiveNumber}
	}
	return PositiveNumber{f: f}, nil
}

// Float64 returns the underlying value.
func (n PositiveNumber) Float64() float64 {
	return n.f
}

// String implements the fmt.Stringer interface.
func (n PositiveNumber) String() string {
	return formatFloat(n.f)
}

// Integer is an int64 which was read from a valid integer literal.
type Integer struct {
	n int64
}

// NewInteger wraps n as an Integer. Every int64 is a valid Integer.
func NewInteger(n int64) Integer {
	return Integer{n: n}
}

// Int64 returns the underlying value.
func (i Integer) Int64() int64 {
	return i.n
}

// Int returns the underlying value as an int.
func (i Integer) Int() int {
	return int(i.n)
}

// String implements the fmt.Stringer interface.
func (i Integer) String() string {
	return strconv.FormatInt(i.n, 10)
}

// PositiveInteger is an int64 which is known to be greater than zero.
// It can only be obtained from an Env or NewPositiveInteger.
type PositiveInteger struct {
	n int64
}

// NewPositiveInteger validates n and wraps it as a PositiveInteger.
func NewPositiveInteger(n int64) (PositiveInteger, error) {
	if n <= 0 {
		return PositiveInteger{}, InvalidVariableError{Value: strconv.FormatInt(n, 10), Expected: expectPositiveInteger}
	}
	return PositiveInteger{n: n}, nil
}

// Int64 returns the underlying value.
func (i PositiveInteger) Int64() int64 {
	return i.n
}

// Int returns the underlying value as an int.
func (i PositiveInteger) Int() int {
	return int(i.n)
}

// String implements the fmt.Stringer interface.
func (i PositiveInteger) String() string {
	return strconv.FormatInt(i.n, 10)
}

func parseNumber(s string) (float64, error) {
	// ParseFloat also understands Go's hexadecimal float syntax.
	if strings.ContainsAny(s, "xX_") {
		return math.NaN(), strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), err
	}
	return f, nil
}

func parseInteger(s string) (int64, error) {
	if !integerPattern.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}

// ParseBoolean looks s up, ignoring case, in the boolean vocabulary
// used by Env.AsBoolean: true, yes and 1 are true, false, no and 0 are
// false. The second result reports whether s is part of the vocabulary.
func ParseBoolean(s string) (bool, bool) {
	b, ok := booleanTable[strings.ToLower(s)]
	return b, ok
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
