// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package safeenv

// Must panics if err is not nil, otherwise it returns v.
// It is meant for wrapping Env calls during program startup.
//
//	port := safeenv.Must(env.AsPositiveInteger("PORT", 8080))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
