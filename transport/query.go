package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Query holds request query parameters.
//
// Encoding rules: bool → "1"/"0"; TrueFalse → "true"/"false"; integers and
// strings verbatim; integer and string slices comma-joined; nil values, nil
// pointers and empty slices are omitted. A query that ends up empty adds no
// "?" at all.
type Query map[string]any

// TrueFalse is a boolean the service expects spelled out as "true"/"false"
// rather than the usual 1/0.
type TrueFalse bool

// Encode returns the URL-encoded query string, keys sorted.
func (q Query) Encode() (string, error) {
	vals := url.Values{}
	for key, v := range q {
		s, ok, err := encodeValue(v)
		if err != nil {
			return "", fmt.Errorf("query parameter %q: %w", key, err)
		}
		if ok {
			vals.Set(key, s)
		}
	}
	return vals.Encode(), nil
}

func encodeValue(v any) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false, nil
		}
		v = rv.Elem().Interface()
	}

	switch val := v.(type) {
	case TrueFalse:
		return strconv.FormatBool(bool(val)), true, nil
	case bool:
		if val {
			return "1", true, nil
		}
		return "0", true, nil
	case string:
		return val, true, nil
	case int:
		return strconv.Itoa(val), true, nil
	case int64:
		return strconv.FormatInt(val, 10), true, nil
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ","), len(val) > 0, nil
	case []string:
		return strings.Join(val, ","), len(val) > 0, nil
	case fmt.Stringer:
		return val.String(), true, nil
	default:
		return "", false, fmt.Errorf("unsupported type %T", v)
	}
}
