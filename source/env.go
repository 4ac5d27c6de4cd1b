// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"os"
	"strings"
)

// FromEnv returns a snapshot of the environment variables
// available to the current process. Changes made to the
// environment afterwards are not reflected.
func FromEnv() Map {
	return FromEnviron(os.Environ)
}

// FromEnviron builds a Map from "key=value" pairs. Entries
// without a '=' are skipped and only the first '=' separates
// the key from the value.
func FromEnviron(environ func() []string) Map {
	env := environ()
	m := make(Map, len(env))
	for _, pair := range env {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return m
}
