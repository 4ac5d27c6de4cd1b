// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"fmt"
	"io"

	"github.com/z5labs/safeenv/internal/try"

	"gopkg.in/yaml.v3"
)

// InvalidYamlError occurs if the underlying io.Reader contains invalid YAML.
type InvalidYamlError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.Cause
}

// FromYaml is the YAML equivalent of FromJson.
func FromYaml(r io.Reader) (_ Map, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		return nil, InvalidYamlError{Cause: err}
	}
	return flatten(doc)
}
