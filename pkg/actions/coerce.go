package actions

import (
	"fmt"
	"strconv"
	"strings"
)

// Coercions are deliberately lenient on shapes LLMs reliably confuse
// (stringified booleans and numbers, an empty map where an empty list was
// meant) and strict everywhere else.

func coerceString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func coerceBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

func coerceStringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case string:
		// A bare string is a one-element list.
		return []string{t}, true
	case map[string]any:
		// {} where [] was meant.
		if len(t) == 0 {
			return []string{}, true
		}
	}
	return nil, false
}

func coerceMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case []any:
		if len(t) == 0 {
			return map[string]any{}, true
		}
	}
	return nil, false
}

func coerceMapList(v any) ([]map[string]any, bool) {
	switch t := v.(type) {
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, m)
		}
		return out, true
	case map[string]any:
		if len(t) == 0 {
			return []map[string]any{}, true
		}
	}
	return nil, false
}

func coerceEnum(v any, allowed []string) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a, true
		}
	}
	return "", false
}

// coerceWait normalizes the wait parameter: true/false pass through, a
// non-negative number means seconds, numeric strings are parsed.
func coerceWait(v any) (any, bool) {
	if b, ok := coerceBool(v); ok {
		return b, true
	}
	if f, ok := coerceNumber(v); ok && f >= 0 {
		return f, true
	}
	return nil, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64, int, int64:
		return "number"
	case string:
		return "string"
	case []any, []string:
		return "list"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
