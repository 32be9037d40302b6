package protocol

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Coercion helpers over loosely-typed JSON values. DecodeBytes unmarshals
// with UseNumber, so numeric values arrive as json.Number; maps built by hand
// may carry native Go integers and floats instead.

func coerceString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}

func coerceInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func coerceBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// stringField coerces an entity field to string, failing with the field name
// and raw value attached.
func stringField(field string, v any) (string, error) {
	s, ok := coerceString(v)
	if !ok {
		return "", &InvalidFieldError{Field: field, Want: "string", Raw: v}
	}
	return s, nil
}

func optStringField(field string, v any) (*string, error) {
	s, err := stringField(field, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func boolField(field string, v any) (*bool, error) {
	b, ok := coerceBool(v)
	if !ok {
		return nil, &InvalidFieldError{Field: field, Want: "bool", Raw: v}
	}
	return &b, nil
}

func mapField(field string, v any) (map[string]any, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, &InvalidFieldError{Field: field, Want: "object", Raw: v}
	}
	return m, nil
}

// wrapField prefixes nested decode failures with the enclosing field name so
// the caller sees the full path to the offending value.
func wrapField(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}

// decodeNested coerces value to an object and runs an entity validator over
// it, attaching the enclosing field name to any failure.
func decodeNested[T any](field string, value any, decode func(map[string]any) (*T, error)) (*T, error) {
	m, err := mapField(field, value)
	if err != nil {
		return nil, err
	}
	out, err := decode(m)
	if err != nil {
		return nil, wrapField(field, err)
	}
	return out, nil
}
