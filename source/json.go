// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/z5labs/safeenv/internal/try"
)

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

var errTrailingData = errors.New("unexpected data after top-level value")

// FromJson reads a JSON object from r and flattens it into a Map.
// Nested objects are addressed by joining their keys with '.', so
// {"db": {"port": 5432}} is available as "db.port". If r is an
// io.Closer, it is closed once read.
func FromJson(r io.Reader) (_ Map, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Numbers are kept as json.Number so integers beyond 2^53 survive.
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var doc map[string]any
	err = dec.Decode(&doc)
	if err != nil {
		return nil, InvalidJsonError{Cause: err}
	}
	_, err = dec.Token()
	if err != io.EOF {
		return nil, InvalidJsonError{Cause: errTrailingData}
	}
	return flatten(doc)
}
