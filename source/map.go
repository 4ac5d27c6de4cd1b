// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source provides implementations of safeenv.Source.
package source

// Map is an ordinary map[string]string but implements the safeenv.Source interface.
type Map map[string]string

// Lookup implements the safeenv.Source interface.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Func is a functional implementation of the safeenv.Source interface.
type Func func(string) (string, bool)

// Lookup implements the safeenv.Source interface.
func (f Func) Lookup(name string) (string, bool) {
	return f(name)
}
