// Package payload turns a mapping configuration plus a simulation context
// into the payload the mapping would produce, one expression at a time.
package payload

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/makito233/fin-erp-yml-config/expression"
	"github.com/makito233/fin-erp-yml-config/mapping"
)

// Error attributes an evaluation failure to the field or condition it
// happened in. Failures never abort the rest of the generation run.
type Error struct {
	Mapping string `json:"mapping"`
	Message string `json:"message"`
}

// ConditionItem is one entry of the payload's items array.
type ConditionItem struct {
	ConditionType  string `json:"conditionType"`
	ConditionValue any    `json:"conditionValue"`
}

// Result holds the generated payload and any per-entry errors.
type Result struct {
	Payload map[string]any `json:"payload"`
	Errors  []Error        `json:"errors"`
}

// Generate evaluates every field and condition mapping against the context
// for the given country. A field whose expressionsByCountry has no entry for
// the country is omitted, not defaulted. Condition results are formatted to
// two decimals when numeric and collected under the payload's "items" key,
// which is always present.
func Generate(cfg *mapping.Configuration, ctx *expression.Context, country string) *Result {
	result := &Result{
		Payload: map[string]any{},
		Errors:  []Error{},
	}

	for _, field := range cfg.FieldMappings {
		generateField(result, field, ctx, country)
	}

	items := []ConditionItem{}
	for _, cond := range cfg.ConditionMappings {
		if item, ok := generateCondition(result, cond, ctx, country); ok {
			items = append(items, item)
		}
	}
	result.Payload["items"] = items

	return result
}

func generateField(result *Result, field mapping.FieldMapping, ctx *expression.Context, country string) {
	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, Error{
				Mapping: field.Name,
				Message: fmt.Sprintf("Error in field %q: %v", field.Name, r),
			})
		}
	}()

	expr := expressionForCountry(field.ExpressionsByCountry, country)
	if expr == "" {
		return
	}
	result.Payload[field.Name] = expression.Evaluate(expr, ctx)
}

func generateCondition(result *Result, cond mapping.ConditionMapping, ctx *expression.Context, country string) (item ConditionItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			result.Errors = append(result.Errors, Error{
				Mapping: cond.ConditionType,
				Message: fmt.Sprintf("Error in condition %q: %v", cond.ConditionType, r),
			})
		}
	}()

	expr := expressionForCountry(cond.ExpressionsByCountry, country)
	if expr == "" {
		return ConditionItem{}, false
	}

	value := expression.Evaluate(expr, ctx)
	if f, isNumber := value.(float64); isNumber {
		value = formatConditionValue(f)
	}
	return ConditionItem{ConditionType: cond.ConditionType, ConditionValue: value}, true
}

// expressionForCountry picks the first entry in declaration order whose
// countries list contains the country. Empty means no applicable expression.
func expressionForCountry(exprs []mapping.ExpressionByCountry, country string) string {
	for _, e := range exprs {
		for _, c := range e.Countries {
			if c == country {
				return e.Expression
			}
		}
	}
	return ""
}

// formatConditionValue renders a numeric condition result with exactly two
// decimals, rounding half away from zero.
func formatConditionValue(f float64) string {
	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		return "0.00"
	}

	var rounded apd.Decimal
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfUp
	if _, err := ctx.Quantize(&rounded, &d, -2); err != nil {
		return "0.00"
	}
	return rounded.Text('f')
}
