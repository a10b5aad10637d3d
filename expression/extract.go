package expression

import (
	"regexp"
	"sort"
	"strings"

	"github.com/makito233/fin-erp-yml-config/mapping"
)

// Extracted is the set of distinct context variables referenced by a
// configuration's expressions. Each slice is sorted and deduplicated.
type Extracted struct {
	InputFields    []string `json:"inputFields"`
	InvoicingItems []string `json:"invoicingItems"`
	Variables      []string `json:"variables"`
}

var (
	extractOrderMetadataRe = regexp.MustCompile(`#input\.orderMetadata\.(\w+(?:\.\w+)*)`)
	extractInputRe         = regexp.MustCompile(`#input\.(\w+(?:\.\w+)*)`)
	extractItemsRe         = regexp.MustCompile(`#invoicingItems\['([^']+)'\]`)
	extractVariableRe      = regexp.MustCompile(`#(\w+(?:Value|Code))`)
	extractArrayItemRe     = regexp.MustCompile(`#item\.(\w+)`)
)

// Extract scans every expression reachable from the configuration's field
// mappings (one level of itemsMappings included) and condition mappings, and
// returns the referenced input fields, invoicing items, and standalone
// variables. Extraction is best-effort pattern matching over the raw
// expression text; malformed expressions are never rejected.
func Extract(c *mapping.Configuration) *Extracted {
	inputFields := map[string]bool{}
	invoicingItems := map[string]bool{}
	variables := map[string]bool{}

	scan := func(exprs []mapping.ExpressionByCountry) {
		for _, e := range exprs {
			scanExpression(e.Expression, inputFields, invoicingItems, variables)
		}
	}

	for _, field := range c.FieldMappings {
		scan(field.ExpressionsByCountry)
		for _, item := range field.ItemsMappings {
			scan(item.ExpressionsByCountry)
		}
	}
	for _, cond := range c.ConditionMappings {
		scan(cond.ExpressionsByCountry)
	}

	return &Extracted{
		InputFields:    sortedKeys(inputFields),
		InvoicingItems: sortedKeys(invoicingItems),
		Variables:      sortedKeys(variables),
	}
}

func scanExpression(expr string, inputFields, invoicingItems, variables map[string]bool) {
	if expr == "" {
		return
	}

	for _, m := range extractOrderMetadataRe.FindAllStringSubmatch(expr, -1) {
		inputFields["input.orderMetadata."+m[1]] = true
	}

	// Root input paths, excluding anything under orderMetadata. The prefix
	// check also skips paths whose first segment merely begins with
	// "orderMetadata", matching the extraction behavior users rely on.
	for _, m := range extractInputRe.FindAllStringSubmatch(expr, -1) {
		if strings.HasPrefix(m[1], "orderMetadata") {
			continue
		}
		inputFields["input."+m[1]] = true
	}

	for _, m := range extractItemsRe.FindAllStringSubmatch(expr, -1) {
		invoicingItems[m[1]] = true
	}

	// Standalone variables end in Value or Code and are not followed by a
	// further dereference.
	for _, loc := range extractVariableRe.FindAllStringSubmatchIndex(expr, -1) {
		end := loc[1]
		if end < len(expr) && (expr[end] == '.' || expr[end] == '[') {
			continue
		}
		variables[expr[loc[2]:loc[3]]] = true
	}

	if strings.Contains(expr, "#isVatOptimisedOrder") {
		variables["isVatOptimisedOrder"] = true
	}

	for _, m := range extractArrayItemRe.FindAllStringSubmatch(expr, -1) {
		inputFields["item."+m[1]] = true
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
