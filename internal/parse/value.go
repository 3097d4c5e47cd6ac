package parse

import (
	"fmt"
	"strconv"
)

// Helpers for digging through the undocumented Bovada JSON. Every accessor
// treats a missing key, a wrong type and an explicit null the same way:
// no value. Nothing here ever panics on bad shapes.

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

func asList(v any) ([]any, bool) {
	list, ok := v.([]any)
	return list, ok
}

// stringField returns the string under key, or "" when absent or not a string.
func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// field walks a nested key path, returning nil as soon as a step is not an
// object or the key is missing.
func field(obj map[string]any, keys ...string) any {
	var cur any = obj
	for _, key := range keys {
		m, ok := asObject(cur)
		if !ok {
			return nil
		}
		v, ok := m[key]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstValue returns the value of the first key that is present and non-null.
func firstValue(obj map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstObject returns the value of the first key that holds an object.
func firstObject(obj map[string]any, keys ...string) (map[string]any, bool) {
	for _, key := range keys {
		if m, ok := asObject(obj[key]); ok {
			return m, true
		}
	}
	return nil, false
}

// formatValue renders a decoded JSON scalar the way the upstream wrote it:
// 172.5 stays "172.5", an integer score decoded as float64 prints without
// the trailing ".0", strings pass through as-is.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
