// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import "github.com/z5labs/safeenv"

// Layers is a safeenv.Source composed of other sources.
type Layers []safeenv.Source

// Layered returns a Source which looks names up in all of the given sources.
// Subsequent sources override previous sources.
func Layered(srcs ...safeenv.Source) Layers {
	return Layers(srcs)
}

// Lookup implements the safeenv.Source interface.
func (l Layers) Lookup(name string) (string, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		v, ok := l[i].Lookup(name)
		if ok {
			return v, true
		}
	}
	return "", false
}
