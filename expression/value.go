package expression

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Runtime values are nil, bool, float64, string, or []any. The coercion
// helpers below follow dynamic-language rules: 0, "", null, and false are
// falsy; arithmetic on non-numbers goes through number coercion and may yield
// NaN instead of failing.

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		// Arrays and objects are always truthy.
		return true
	}
}

func toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case float64:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case []any:
		if len(t) == 0 {
			return 0
		}
		if len(t) == 1 {
			return toNumber(t[0])
		}
		return math.NaN()
	default:
		return math.NaN()
	}
}

func valueToString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(t)
	case string:
		return t
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = valueToString(e)
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// formatNumber renders a float the way a dynamic language prints it: no
// trailing zeros, integers without a decimal point.
func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// looseEq implements loose (==) equality: null equals only null, booleans
// compare as numbers, and a string compared with a number is converted first.
func looseEq(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ab, ok := a.(bool); ok {
		return looseEq(boolToNumber(ab), b)
	}
	if bb, ok := b.(bool); ok {
		return looseEq(a, boolToNumber(bb))
	}

	switch at := a.(type) {
	case float64:
		switch bt := b.(type) {
		case float64:
			return at == bt
		case string:
			return at == toNumber(bt)
		}
	case string:
		switch bt := b.(type) {
		case string:
			return at == bt
		case float64:
			return toNumber(at) == bt
		}
	}
	return false
}

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
