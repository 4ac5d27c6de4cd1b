// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// UnsupportedValueError occurs when a document contains a value
// which can not be represented as a single string e.g. an array.
type UnsupportedValueError struct {
	Key   string
	Value any
}

// Error implements the error interface.
func (e UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value type %T for key: %s", e.Value, e.Key)
}

// flatten walks a decoded document and joins nested keys with '.'.
func flatten(doc map[string]any) (Map, error) {
	m := make(Map)
	err := walk(m, nil, doc)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func walk(dst Map, chain []string, v any) error {
	switch x := v.(type) {
	case map[string]any:
		for k, sub := range x {
			err := walk(dst, append(chain, k), sub)
			if err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		for k, sub := range x {
			key, err := stringify(strings.Join(chain, "."), k)
			if err != nil {
				return err
			}
			err = walk(dst, append(chain, key), sub)
			if err != nil {
				return err
			}
		}
		return nil
	case nil:
		return nil
	}

	key := strings.Join(chain, ".")
	s, err := stringify(key, v)
	if err != nil {
		return err
	}
	dst[key] = s
	return nil
}

func stringify(key string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case []any, map[string]any, map[any]any:
		return "", UnsupportedValueError{Key: key, Value: v}
	}

	var s string
	err := mapstructure.WeakDecode(v, &s)
	if err != nil {
		return "", UnsupportedValueError{Key: key, Value: v}
	}
	return s, nil
}
