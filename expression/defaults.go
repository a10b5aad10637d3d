package expression

import "strings"

// defaultTimestamp is the placeholder for any field whose name contains
// "Time". A fixed instant keeps generated contexts reproducible.
const defaultTimestamp = "2024-01-15T10:30:00Z"

// itemOverrides gives a few well-known invoicing items illustrative non-zero
// amounts instead of the all-zero default.
var itemOverrides = map[string]ItemAmounts{
	"PRODUCTS_TO_PARTNER":   {"grossAmount": {Value: 20.00}, "netAmount": {Value: 18.00}, "amount": {Value: 0}},
	"TIP_TO_CUSTOMER":       {"grossAmount": {Value: 2.00}, "netAmount": {Value: 2.00}, "amount": {Value: 0}},
	"DELIVERY_FEE_BY_GLOVO": {"grossAmount": {Value: 3.50}, "netAmount": {Value: 3.00}, "amount": {Value: 0}},
}

var variableDefaults = map[string]any{
	"financialSourceCountryCodeValue": "ES",
	"currencyCodeValue":               "EUR",
	"cityCodeValue":                   "BCN",
	"isVatOptimisedOrder":             false,
}

// BuildDefaults materializes a fully populated context for the extracted
// variables: every input field path gets a placeholder value, every invoicing
// item a zeroed (or overridden) amounts record, and every standalone variable
// a recognized default or empty string. Deterministic for a fixed input.
func BuildDefaults(extracted *Extracted) *Context {
	ctx := NewContext()

	for _, field := range extracted.InputFields {
		path := strings.Split(field, ".")
		current := ctx.Input

		// The first segment ("input" or "item") is a namespace marker, not a
		// map level; nesting starts at the second segment.
		for i := 1; i < len(path)-1; i++ {
			next, ok := current[path[i]].(map[string]any)
			if !ok {
				next = map[string]any{}
				current[path[i]] = next
			}
			current = next
		}

		last := path[len(path)-1]
		parent := ""
		if len(path) >= 2 {
			parent = path[len(path)-2]
		}
		current[last] = defaultFieldValue(last, parent)
	}

	for _, name := range extracted.InvoicingItems {
		if override, ok := itemOverrides[name]; ok {
			amounts := ItemAmounts{}
			for k, v := range override {
				amounts[k] = v
			}
			ctx.InvoicingItems[name] = amounts
			continue
		}
		ctx.InvoicingItems[name] = ItemAmounts{
			"grossAmount": {Value: 0},
			"netAmount":   {Value: 0},
			"amount":      {Value: 0},
		}
	}

	for _, name := range extracted.Variables {
		if v, ok := variableDefaults[name]; ok {
			ctx.Variables[name] = v
		} else {
			ctx.Variables[name] = ""
		}
	}

	return ctx
}

func defaultFieldValue(name, parent string) any {
	switch {
	case name == "orderId":
		return "67890"
	case name == "orderCode":
		return "ORDER-12345"
	case name == "storeAddressId":
		return "123"
	case name == "handlingStrategy":
		return "GEN2"
	case name == "name" && parent == "operation":
		return "CREATE"
	case strings.Contains(name, "Time"):
		return defaultTimestamp
	case name == "vertical":
		return "FOOD"
	case name == "subvertical":
		return "RESTAURANT"
	case name == "partnerFamily":
		return "general"
	case name == "partnerCancellationStrategy", name == "customerCancellationStrategy":
		return "STANDARD"
	case name == "payments":
		return []any{map[string]any{"amount": 25.50, "paymentMethod": "CARD"}}
	default:
		return ""
	}
}
