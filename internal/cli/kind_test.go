// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"testing"

	"github.com/z5labs/safeenv"
	"github.com/z5labs/safeenv/source"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range kinds {
		parsed, err := ParseKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := ParseKind("float")
	require.EqualError(t, err, `unknown kind "float", must be one of: string, number, positive-number, integer, positive-integer, boolean`)
}

func TestKind_Set(t *testing.T) {
	var k Kind
	require.NoError(t, k.Set("positive-number"))
	require.Equal(t, KindPositiveNumber, k)
	require.Equal(t, "positive-number", k.String())
	require.Equal(t, "kind", k.Type())

	require.Error(t, k.Set("nope"))
	require.Equal(t, KindPositiveNumber, k)
}

func TestKind_Resolve(t *testing.T) {
	env := safeenv.New(source.Map{
		"S":   "text",
		"N":   "-1.25",
		"PN":  "3.5",
		"I":   "-7",
		"PI":  "7",
		"B":   "No",
		"BAD": "x",
	})

	ptr := func(s string) *string { return &s }

	testCases := []struct {
		name        string
		kind        Kind
		varName     string
		def         *string
		expectedVal string
		expectErr   error
	}{
		{name: "string", kind: KindString, varName: "S", expectedVal: "text"},
		{name: "number", kind: KindNumber, varName: "N", expectedVal: "-1.25"},
		{name: "positive number", kind: KindPositiveNumber, varName: "PN", expectedVal: "3.5"},
		{name: "integer", kind: KindInteger, varName: "I", expectedVal: "-7"},
		{name: "positive integer", kind: KindPositiveInteger, varName: "PI", expectedVal: "7"},
		{name: "boolean", kind: KindBoolean, varName: "B", expectedVal: "false"},
		{name: "integer default", kind: KindInteger, varName: "MISSING", def: ptr("-3"), expectedVal: "-3"},
		{name: "invalid value", kind: KindInteger, varName: "BAD", expectErr: safeenv.ErrInvalidVariable},
		{name: "missing value", kind: KindNumber, varName: "MISSING", expectErr: safeenv.ErrMissingVariable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.kind.Resolve(env, tc.varName, tc.def)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedVal, v)
		})
	}

	t.Run("invalid default", func(t *testing.T) {
		_, err := KindInteger.Resolve(env, "MISSING", ptr("1.5"))

		var derr InvalidDefaultError
		require.ErrorAs(t, err, &derr)
		require.Equal(t, KindInteger, derr.Kind)
		require.Equal(t, "1.5", derr.Value)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Kind("float").Resolve(env, "N", nil)

		var kerr UnknownKindError
		require.ErrorAs(t, err, &kerr)
	})
}
