package mapping

import (
	"fmt"
	"strings"
)

// Validate runs the advisory structural checks and returns path-qualified
// messages. An empty result means the configuration is structurally sound.
// Callers decide whether findings block anything; nothing here does.
func Validate(c *Configuration) []string {
	var errs []string

	seen := map[string]bool{}
	for _, field := range c.FieldMappings {
		if seen[field.Name] {
			errs = append(errs, fmt.Sprintf("Duplicate field name %q", field.Name))
		}
		seen[field.Name] = true

		if field.Type == "" {
			errs = append(errs, fmt.Sprintf("Field %q is missing type", field.Name))
		}

		for i, expr := range field.ExpressionsByCountry {
			errs = validateExpression(expr, errs, fmt.Sprintf("fieldMappings.%s[%d]", field.Name, i))
		}

		for _, item := range field.ItemsMappings {
			if item.Type == "" {
				errs = append(errs, fmt.Sprintf("Field %q is missing type", field.Name+".itemsMappings."+item.Name))
			}
			for i, expr := range item.ExpressionsByCountry {
				errs = validateExpression(expr, errs,
					fmt.Sprintf("fieldMappings.%s.itemsMappings.%s[%d]", field.Name, item.Name, i))
			}
		}
	}

	for i, cond := range c.ConditionMappings {
		if cond.ConditionType == "" {
			errs = append(errs, fmt.Sprintf("Condition mapping [%d] is missing conditionType", i))
		}
		for j, expr := range cond.ExpressionsByCountry {
			errs = validateExpression(expr, errs, fmt.Sprintf("conditionMappings[%d][%d]", i, j))
		}
	}

	return errs
}

func validateExpression(e ExpressionByCountry, errs []string, path string) []string {
	if e.Countries == nil {
		errs = append(errs, path+": countries must be an array")
	}
	if e.Expression == "" {
		errs = append(errs, path+": expression must be a non-empty string")
		return errs
	}

	if strings.Count(e.Expression, "{") != strings.Count(e.Expression, "}") {
		errs = append(errs, path+": Unbalanced braces in SpEL expression")
	}
	if strings.Count(e.Expression, "[") != strings.Count(e.Expression, "]") {
		errs = append(errs, path+": Unbalanced brackets in SpEL expression")
	}
	if strings.Count(e.Expression, "(") != strings.Count(e.Expression, ")") {
		errs = append(errs, path+": Unbalanced parentheses in SpEL expression")
	}
	return errs
}
