// Package batch turns loosely-typed import payloads (JSON arrays or XML
// documents) into strongly-typed records before they reach the
// reconciliation engine. All field coercion rules live here.
package batch

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// String coerces a raw payload value to a trimmed string. Blank and
// whitespace-only strings become absent; numbers are stringified (JSON
// numbers arrive as float64); everything else is absent.
func String(v any) *string {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		return &s
	case float64:
		var s string
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			s = strconv.FormatInt(int64(t), 10)
		} else {
			s = strconv.FormatFloat(t, 'f', -1, 64)
		}
		return &s
	case int:
		s := strconv.Itoa(t)
		return &s
	default:
		return nil
	}
}

// Bool coerces boolean-like values. {1,true,yes,y} / {0,false,no,n} are
// accepted case-insensitively; anything else is "not specified", which is
// distinct from false.
func Bool(v any) *bool {
	switch t := v.(type) {
	case bool:
		b := t
		return &b
	case float64:
		switch t {
		case 1:
			b := true
			return &b
		case 0:
			b := false
			return &b
		}
		return nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "true", "yes", "y":
			b := true
			return &b
		case "0", "false", "no", "n":
			b := false
			return &b
		}
		return nil
	default:
		return nil
	}
}

// FloorNumber coerces a floor value to an integer, or absent when it does
// not parse.
func FloorNumber(v any) *int {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		n := int(t)
		return &n
	case int:
		n := t
		return &n
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			n := int(f)
			return &n
		}
		return nil
	default:
		return nil
	}
}

// Coordinate coerces a plan coordinate to a float, or absent when it does
// not parse.
func Coordinate(v any) *float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		f := t
		return &f
	case int:
		f := float64(t)
		return &f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

// canonKey folds a field name so that snake_case, camelCase and PascalCase
// spellings of the same field collide: lowercase, underscores stripped.
func canonKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.ReplaceAll(k, "_", "")
}

// field returns the first raw value among the canonical aliases.
func field(m map[string]any, aliases ...string) any {
	if len(m) == 0 {
		return nil
	}
	folded := make(map[string]any, len(m))
	for k, v := range m {
		ck := canonKey(k)
		if _, seen := folded[ck]; !seen {
			folded[ck] = v
		}
	}
	for _, a := range aliases {
		if v, ok := folded[canonKey(a)]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Name extracts a taxonomy name from a roles/departments batch entry: a bare
// string is used directly, an object prefers an explicit name field and
// falls back to its first value (key-sorted for determinism).
func Name(entry any) *string {
	switch t := entry.(type) {
	case map[string]any:
		if v := field(t, "name"); v != nil {
			return String(v)
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s := String(t[k]); s != nil {
				return s
			}
		}
		return nil
	default:
		return String(entry)
	}
}
