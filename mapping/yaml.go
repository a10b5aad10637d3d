package mapping

import (
	"strings"
)

// The emitted dialect is position-exact: hand-edited mapping files are diffed
// against generated ones, so every space, quote style and blank line below is
// part of the contract. A generic YAML encoder cannot reproduce it, which is
// why this file builds the text directly.

const fileHeader = `# A configuration file defining the mapping of order data into the SAP order payload format (JSON).
# Order payload is sent to SAP for invoicing and accounting purposes.
#
# Expressions use SpEL (Spring Expression Language) syntax.
# Note: '>' converts newlines to spaces, making multi-line expressions more readable.
`

const typeDocumentation = `# Mapped 1:1 to the order payload JSON structure
# Possible types are:
# - string: string value mapped as-is and cannot be null.
# - optional_string: string value that can be null, in which case it will be sent as an empty string.
# - double: numeric value mapped with format "0.00" and cannot be null.
# - local_date_time: date-time value mapped with a specific format (e.g. "yyyy/MM/dd") and cannot be null.
# - optional_local_date_time: date-time value as above that can be null, in which case it will be sent as an empty string.
# - array: array of objects, with nested itemsMappings defining the structure of each object.
`

const conditionDocumentation = `
# Mapped to 'items.condition' array of the order payload, containing conditionType and conditionValue.
# - conditionType: the key identifying the condition.
# - conditionValue: the value of the condition, mapped as a double with format "0.00".
`

// EncodeOptions toggles the fixed comment blocks.
type EncodeOptions struct {
	IncludeHeader   bool
	IncludeComments bool
}

// DefaultEncodeOptions emits both comment blocks.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{IncludeHeader: true, IncludeComments: true}
}

// Encode serializes the configuration with the default options.
func Encode(c *Configuration) string {
	return EncodeWithOptions(c, DefaultEncodeOptions())
}

// EncodeWithOptions serializes the configuration to the mapping-file dialect.
func EncodeWithOptions(c *Configuration, opts EncodeOptions) string {
	var parts []string

	if opts.IncludeHeader {
		parts = append(parts, fileHeader)
	}
	if opts.IncludeComments {
		parts = append(parts, typeDocumentation)
	}

	parts = append(parts, encodeFieldMappings(c.FieldMappings))

	if opts.IncludeComments {
		parts = append(parts, conditionDocumentation)
	}

	parts = append(parts, encodeConditionMappings(c.ConditionMappings))

	return strings.Join(parts, "\n")
}

func encodeFieldMappings(fields []FieldMapping) string {
	if len(fields) == 0 {
		return "fieldMappings: {}"
	}

	var b strings.Builder
	b.WriteString("fieldMappings:\n")

	for _, f := range fields {
		b.WriteString("  " + f.Name + ":\n")
		b.WriteString("    type: " + string(f.Type) + "\n")

		if f.Format != "" {
			b.WriteString("    format: " + f.Format + "\n")
		}

		if len(f.ExpressionsByCountry) > 0 {
			b.WriteString("    expressionsByCountry:\n")
			for _, e := range f.ExpressionsByCountry {
				b.WriteString(encodeExpressionByCountry(e, 6))
			}
		}

		if len(f.ItemsMappings) > 0 {
			b.WriteString("    itemsMappings:\n")
			for _, item := range f.ItemsMappings {
				b.WriteString("      " + item.Name + ":\n")
				b.WriteString("        type: " + string(item.Type) + "\n")

				if item.Format != "" {
					b.WriteString("        format: " + item.Format + "\n")
				}

				if len(item.ExpressionsByCountry) > 0 {
					b.WriteString("        expressionsByCountry:\n")
					for _, e := range item.ExpressionsByCountry {
						b.WriteString(encodeExpressionByCountry(e, 10))
					}
				}
			}
		}
	}

	return b.String()
}

func encodeConditionMappings(conditions []ConditionMapping) string {
	if len(conditions) == 0 {
		return "conditionMappings:\n  []"
	}

	var b strings.Builder
	b.WriteString("conditionMappings:\n")

	for _, cond := range conditions {
		b.WriteString("  - conditionType: " + cond.ConditionType + "\n")

		if len(cond.ExpressionsByCountry) > 0 {
			b.WriteString("    expressionsByCountry:\n")
			for _, e := range cond.ExpressionsByCountry {
				b.WriteString(encodeExpressionByCountry(e, 6))
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

func encodeExpressionByCountry(e ExpressionByCountry, baseIndent int) string {
	indent := strings.Repeat(" ", baseIndent)

	var b strings.Builder
	b.WriteString(indent + "- countries: " + encodeCountries(e.Countries) + "\n")
	b.WriteString(encodeExpression(e.Expression, baseIndent+2))
	return b.String()
}

// encodeCountries renders the inline flow form: `[ 'ES', 'PL' ]`, or a bare
// `[]` for the empty set.
func encodeCountries(countries []string) string {
	if len(countries) == 0 {
		return "[]"
	}
	quoted := make([]string, len(countries))
	for i, c := range countries {
		quoted[i] = "'" + c + "'"
	}
	return "[ " + strings.Join(quoted, ", ") + " ]"
}

// encodeExpression picks one of three styles, in this precedence: a
// double-quoted single-line literal is passed through as-is; a short
// single-line expression without `{` or `?` becomes a plain scalar; anything
// else is emitted as a folded block with each non-empty line re-trimmed.
func encodeExpression(expression string, indent int) string {
	indentStr := strings.Repeat(" ", indent)

	if expression == "" {
		return indentStr + "expression: \"\"\n"
	}

	trimmed := strings.TrimSpace(expression)

	if strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) &&
		!strings.Contains(trimmed, "\n") {
		return indentStr + "expression: " + trimmed + "\n"
	}

	if !strings.Contains(trimmed, "\n") && len(trimmed) < 60 &&
		!strings.Contains(trimmed, "{") && !strings.Contains(trimmed, "?") {
		return indentStr + "expression: " + trimmed + "\n"
	}

	var b strings.Builder
	b.WriteString(indentStr + "expression: >\n")
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			b.WriteString(indentStr + "  " + line + "\n")
		}
	}
	return b.String()
}
