package expression

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// The rewrite pipeline turns a SpEL-flavored expression into something the
// closed grammar in eval.go can reduce. Substitutions run in a fixed order
// and each one must leave intact the syntax later steps key on: invoicing
// items go before the elvis rewrite, map lookups before plain variable
// substitution, and so on. Reordering these breaks real configurations.
var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	orKeywordRe  = regexp.MustCompile(`\bor\b`)
	andKeywordRe = regexp.MustCompile(`\band\b`)
	projectionRe = regexp.MustCompile(`\?\.!\[[^\]]*\]`)

	itemDerefRe    = regexp.MustCompile(`#invoicingItems\['([^']+)'\]\?\.(\w+)\?\.value`)
	itemResidualRe = regexp.MustCompile(`#invoicingItems\['[^']+'\](?:\?\.\w+)*`)

	elvisRe     = regexp.MustCompile(`\?\s*:`)
	mapLookupRe = regexp.MustCompile(`\{([^}]+)\}\[([^\]]+)\]`)
	mapKeyRe    = regexp.MustCompile(`#input\.orderMetadata(?:\?)?\.(\w+)`)

	inputMethodRe   = regexp.MustCompile(`#input\.(\w+)\(\)`)
	operationNameRe = regexp.MustCompile(`#input\.operation\.name\(\)`)

	safeMetaLowerRe = regexp.MustCompile(`#input\.orderMetadata\?\.(\w+)\?\.toLowerCase\(\)`)
	safeMetaUpperRe = regexp.MustCompile(`#input\.orderMetadata\?\.(\w+)\?\.toUpperCase\(\)`)
	metaToStringRe  = regexp.MustCompile(`#input\.orderMetadata\.(\w+)\.toString\(\)`)
	rootToStringRe  = regexp.MustCompile(`#input\.(\w+)\.toString\(\)`)
	metaLowerRe     = regexp.MustCompile(`#input\.orderMetadata\.(\w+)\.toLowerCase\(\)`)
	metaUpperRe     = regexp.MustCompile(`#input\.orderMetadata\.(\w+)\.toUpperCase\(\)`)

	safeMetaRe  = regexp.MustCompile(`#input\.orderMetadata\?\.(\w+)`)
	metaRe      = regexp.MustCompile(`#input\.orderMetadata\.(\w+)`)
	operationRe = regexp.MustCompile(`#input\.operation\.(\w+)`)
	rootRe      = regexp.MustCompile(`#input\.(\w+)`)
	variableRe  = regexp.MustCompile(`#(\w+Value|isVatOptimisedOrder)`)
)

// maxMapLookups bounds the map-literal rewrite loop so a substitution that
// keeps reintroducing the pattern cannot spin forever.
const maxMapLookups = 64

// Evaluate reduces an expression against a context and returns a primitive
// result (nil, bool, float64, or string). It never fails: any rewrite or
// evaluation problem degrades to 0, and a non-finite numeric result becomes
// nil so payloads stay JSON-serializable. Deterministic for fixed inputs.
func Evaluate(expr string, ctx *Context) (result any) {
	defer func() {
		if recover() != nil {
			result = float64(0)
		}
	}()

	if expr == "" {
		return nil
	}

	s := strings.TrimSpace(whitespaceRe.ReplaceAllString(expr, " "))

	s = orKeywordRe.ReplaceAllString(s, "||")
	s = andKeywordRe.ReplaceAllString(s, "&&")

	// Collection projection is unsupported; it collapses to an empty array.
	s = projectionRe.ReplaceAllString(s, "[]")

	s = substituteItems(s, ctx)
	s = elvisRe.ReplaceAllString(s, " || ")
	s = substituteMapLookups(s, ctx)
	s = substituteMethods(s, ctx)
	s = substituteDerefs(s, ctx)

	s = replaceSubmatch(variableRe, s, func(m []string) string {
		return renderValue(ctx.variable(m[1]))
	})

	// Leftover undefined tokens are artifacts of missing substitutions.
	s = strings.ReplaceAll(s, "undefined", "null")

	v, err := evalReduced(s)
	if err != nil {
		return float64(0)
	}
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}

// substituteItems resolves invoicingItems['NAME']?.prop?.value references to
// their numeric value, then sweeps any partial item reference left over to 0
// so an absent property can never surface as an error.
func substituteItems(s string, ctx *Context) string {
	s = replaceSubmatch(itemDerefRe, s, func(m []string) string {
		if v, ok := ctx.itemValue(m[1], m[2]); ok {
			return formatNumber(v)
		}
		return "0"
	})
	return itemResidualRe.ReplaceAllString(s, "0")
}

// substituteMapLookups rewrites { 'A': x, 'B': y }[keyExpr] spans one at a
// time: the key expression is reduced first, each entry value is reduced
// independently, and the matching entry's value replaces the whole span. No
// match means 0.
func substituteMapLookups(s string, ctx *Context) string {
	for i := 0; i < maxMapLookups; i++ {
		loc := mapLookupRe.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		body := s[loc[2]:loc[3]]
		keyExpr := strings.TrimSpace(s[loc[4]:loc[5]])
		s = s[:loc[0]] + resolveMapLookup(body, keyExpr, ctx) + s[loc[1]:]
	}
	return s
}

func resolveMapLookup(body, keyExpr string, ctx *Context) string {
	key := reduceMapKey(keyExpr, ctx)

	var replacement any
	found := false
	for _, entry := range splitTopLevel(body) {
		colon := strings.Index(entry, ":")
		if colon <= 0 {
			continue
		}
		entryKey := stripQuotes(strings.TrimSpace(entry[:colon]))
		if entryKey != key {
			continue
		}

		valueExpr := strings.TrimSpace(entry[colon+1:])
		v, err := evalReduced(valueExpr)
		if err != nil {
			// Unreduceable values are kept as raw strings.
			v = stripQuotes(valueExpr)
		}
		replacement = v
		found = true
		break
	}

	if !found || replacement == nil {
		return "0"
	}
	if str, ok := replacement.(string); ok {
		return `"` + str + `"`
	}
	return valueToString(replacement)
}

// reduceMapKey substitutes orderMetadata references (safe-navigated or not)
// inside the key expression and reduces it to a literal lookup key. A key
// that will not reduce falls back to its quote-stripped raw text.
func reduceMapKey(keyExpr string, ctx *Context) string {
	processed := replaceSubmatch(mapKeyRe, keyExpr, func(m []string) string {
		return renderValue(toPrimitive(fieldOf(ctx.orderMetadata(), m[1])))
	})

	v, err := evalReduced(processed)
	if err != nil {
		return stripQuotes(keyExpr)
	}
	if str, ok := v.(string); ok {
		return str
	}
	return valueToString(v)
}

// splitTopLevel splits map-literal entries on commas that are not nested
// inside parentheses or braces.
func splitTopLevel(body string) []string {
	var entries []string
	depth := 0
	var current strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '(' || c == '{':
			depth++
		case c == ')' || c == '}':
			depth--
		case c == ',' && depth == 0:
			if e := strings.TrimSpace(current.String()); e != "" {
				entries = append(entries, e)
			}
			current.Reset()
			continue
		}
		current.WriteByte(c)
	}
	if e := strings.TrimSpace(current.String()); e != "" {
		entries = append(entries, e)
	}
	return entries
}

func substituteMethods(s string, ctx *Context) string {
	// Zero-arg method shorthands on the input root are unsupported and
	// resolve to false. The one exception, operation.name(), is not touched
	// here because the pattern cannot cross the extra dot.
	s = inputMethodRe.ReplaceAllString(s, "false")

	s = operationNameRe.ReplaceAllStringFunc(s, func(string) string {
		if name, ok := ctx.operation()["name"].(string); ok && name != "" {
			return `"` + name + `"`
		}
		return `"CREATE"`
	})

	// Safe-navigated case methods yield null for absent fields; the
	// non-safe variants yield an empty string instead. Both behaviors are
	// relied on by existing configurations.
	s = replaceSubmatch(safeMetaLowerRe, s, func(m []string) string {
		return caseMethod(ctx.orderMetadata(), m[1], strings.ToLower, "null")
	})
	s = replaceSubmatch(safeMetaUpperRe, s, func(m []string) string {
		return caseMethod(ctx.orderMetadata(), m[1], strings.ToUpper, "null")
	})
	s = replaceSubmatch(metaToStringRe, s, func(m []string) string {
		return caseMethod(ctx.orderMetadata(), m[1], nil, `""`)
	})
	s = replaceSubmatch(rootToStringRe, s, func(m []string) string {
		return caseMethod(ctx.Input, m[1], nil, `""`)
	})
	s = replaceSubmatch(metaLowerRe, s, func(m []string) string {
		return caseMethod(ctx.orderMetadata(), m[1], strings.ToLower, `""`)
	})
	s = replaceSubmatch(metaUpperRe, s, func(m []string) string {
		return caseMethod(ctx.orderMetadata(), m[1], strings.ToUpper, `""`)
	})
	return s
}

func caseMethod(source map[string]any, field string, transform func(string) string, absent string) string {
	v := toPrimitive(fieldOf(source, field))
	if v == nil {
		return absent
	}
	str := valueToString(v)
	if transform != nil {
		str = transform(str)
	}
	return `"` + str + `"`
}

func substituteDerefs(s string, ctx *Context) string {
	s = replaceSubmatch(safeMetaRe, s, func(m []string) string {
		return renderValue(toPrimitive(fieldOf(ctx.orderMetadata(), m[1])))
	})
	s = replaceSubmatch(metaRe, s, func(m []string) string {
		return renderValue(toPrimitive(fieldOf(ctx.orderMetadata(), m[1])))
	})
	s = replaceSubmatch(operationRe, s, func(m []string) string {
		return renderValue(fieldOf(ctx.operation(), m[1]))
	})
	s = replaceSubmatch(rootRe, s, func(m []string) string {
		return renderValue(ctx.inputField(m[1]))
	})
	return s
}

// renderValue renders a context value as expression source text: null for
// absent values, quoted strings, numbers and booleans verbatim.
func renderValue(v any) string {
	switch t := normalize(v).(type) {
	case nil:
		return "null"
	case string:
		return `"` + t + `"`
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(t)
	default:
		return valueToString(t)
	}
}

// toPrimitive unwraps object values the way the simulation context stores
// them: a map with a "value" key yields that value, other composites become
// their serialized form.
func toPrimitive(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if inner, ok := t["value"]; ok {
			return inner
		}
		b, err := json.Marshal(t)
		if err != nil {
			return nil
		}
		return string(b)
	case []any:
		return valueToString(t)
	default:
		return v
	}
}

func fieldOf(m map[string]any, field string) any {
	if m == nil {
		return nil
	}
	return m[field]
}

// normalize widens integer values to float64 so contexts assembled in Go
// code behave the same as ones decoded from JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

func stripQuotes(s string) string {
	s = strings.ReplaceAll(s, "'", "")
	return strings.ReplaceAll(s, `"`, "")
}

func replaceSubmatch(re *regexp.Regexp, s string, fn func(m []string) string) string {
	return re.ReplaceAllStringFunc(s, func(match string) string {
		return fn(re.FindStringSubmatch(match))
	})
}
