// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package safeenv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPositiveNumber(t *testing.T) {
	testCases := []struct {
		name           string
		input          float64
		expectExpected string
	}{
		{name: "accepts positive", input: 0.5},
		{name: "accepts infinity", input: math.Inf(1)},
		{name: "rejects zero", input: 0, expectExpected: expectPositiveNumber},
		{name: "rejects negative", input: -3, expectExpected: expectPositiveNumber},
		{name: "rejects NaN", input: math.NaN(), expectExpected: expectNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := NewPositiveNumber(tc.input)
			if tc.expectExpected != "" {
				var ierr InvalidVariableError
				require.ErrorAs(t, err, &ierr)
				require.Equal(t, tc.expectExpected, ierr.Expected)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.input, n.Float64())
		})
	}
}

func TestNewPositiveInteger(t *testing.T) {
	n, err := NewPositiveInteger(7)
	require.NoError(t, err)
	require.Equal(t, int64(7), n.Int64())
	require.Equal(t, "7", n.String())

	_, err = NewPositiveInteger(0)
	require.ErrorIs(t, err, ErrInvalidVariable)
	require.EqualError(t, err, "value is not valid (0), expected 'positive integer'")

	_, err = NewPositiveInteger(-7)
	require.ErrorIs(t, err, ErrInvalidVariable)
}

func TestNewPositiveNumber_Error(t *testing.T) {
	_, err := NewPositiveNumber(-1.5)
	require.EqualError(t, err, "value is not valid (-1.5), expected 'positive number'")
}

func TestNewInteger(t *testing.T) {
	i := NewInteger(-12)
	require.Equal(t, int64(-12), i.Int64())
	require.Equal(t, -12, i.Int())
	require.Equal(t, "-12", i.String())
}

func TestPositiveNumber_String(t *testing.T) {
	n, err := NewPositiveNumber(42.5)
	require.NoError(t, err)
	require.Equal(t, "42.5", n.String())

	n, err = NewPositiveNumber(1e21)
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000", n.String())
}

func TestParseInteger(t *testing.T) {
	valid := map[string]int64{
		"0":    0,
		"1":    1,
		"-1":   -1,
		"1234": 1234,
	}
	for s, expected := range valid {
		n, err := parseInteger(s)
		require.NoError(t, err, s)
		require.Equal(t, expected, n, s)
	}

	invalid := []string{"", "-", "-0", "00", "01", "+1", "1.0", "1e3", "1_000", "0x10", " 1", "1 "}
	for _, s := range invalid {
		_, err := parseInteger(s)
		require.Error(t, err, s)
	}
}

func TestParseBoolean(t *testing.T) {
	for _, s := range []string{"true", "TrUe", "yes", "YES", "1"} {
		b, ok := ParseBoolean(s)
		require.True(t, ok, s)
		require.True(t, b, s)
	}
	for _, s := range []string{"false", "FaLsE", "no", "NO", "0"} {
		b, ok := ParseBoolean(s)
		require.True(t, ok, s)
		require.False(t, b, s)
	}
	for _, s := range []string{"", "y", "n", "on", "off", "t", "f", "2", " true"} {
		_, ok := ParseBoolean(s)
		require.False(t, ok, s)
	}
}
