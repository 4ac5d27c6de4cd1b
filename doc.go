// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package safeenv turns untyped environment variables into validated, typed values.
//
// An Env wraps a Source, usually the process environment, and exposes one
// method per supported type:
//
//   - AsString
//   - AsNumber and AsPositiveNumber
//   - AsInteger and AsPositiveInteger
//   - AsBoolean
//
// Every method takes the variable name and an optional fallback which is
// used when the variable is not set. Fallbacks skip parsing but are still
// range checked, so AsPositiveInteger("WORKERS", 0) always fails.
//
// # Basic Usage
//
//	env := safeenv.New(source.FromEnv())
//
//	port, err := env.AsPositiveInteger("PORT", 8080)
//	if err != nil {
//	    return err
//	}
//
//	debug, err := env.AsBoolean("DEBUG", false)
//
// # Empty Values
//
// Except for AsString, an empty value is treated the same as an unset
// variable, i.e. the fallback is used or a MissingVariableError is returned.
//
// # Error Handling
//
// Methods return one of three error types:
//   - MissingVariableError when there is no value and no fallback
//   - InvalidVariableError when the value fails to parse or is out of range
//   - InvalidNameError when the variable name is blank or padded with whitespace
//
// Each can be matched with errors.As, or with errors.Is against
// ErrMissingVariable, ErrInvalidVariable and ErrInvalidName respectively.
package safeenv
