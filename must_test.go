// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package safeenv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	t.Run("returns value without error", func(t *testing.T) {
		require.Equal(t, 42, Must(42, nil))
	})

	t.Run("panics with the error", func(t *testing.T) {
		err := errors.New("failed")
		require.PanicsWithError(t, "failed", func() {
			Must(0, err)
		})
	})
}
