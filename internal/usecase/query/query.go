// Package query selects a single value from a decode result with JSONPath.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

var (
	ErrEmptyExpr = errors.New("empty jsonpath expression")
	ErrNoValue   = errors.New("no value found")
)

// Select renders v as JSON and evaluates expr against it.
// Strings come back unquoted; objects and multi-element arrays as compact JSON.
func Select(v any, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", ErrEmptyExpr
	}

	doc, err := toDocument(v)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", expr, err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", expr, err)
	}
	if isEmptyValue(val) {
		return "", fmt.Errorf("query %q: %w", expr, ErrNoValue)
	}

	s, err := toString(val)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", expr, err)
	}
	return s, nil
}

func toDocument(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath returns a slice for wildcard/index access; single-element arrays are unwrapped.
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
