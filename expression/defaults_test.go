package expression

import "testing"

func TestBuildDefaultsInputFields(t *testing.T) {
	extracted := &Extracted{
		InputFields: []string{
			"input.orderMetadata.orderCode",
			"input.orderMetadata.creationTime",
			"input.orderMetadata.handlingStrategy",
			"input.operation.name",
			"input.payments",
			"input.customField",
			"item.name",
		},
	}

	ctx := BuildDefaults(extracted)

	meta, ok := ctx.Input["orderMetadata"].(map[string]any)
	if !ok {
		t.Fatal("orderMetadata not materialized")
	}
	if meta["orderCode"] != "ORDER-12345" {
		t.Errorf("orderCode: got %v", meta["orderCode"])
	}
	if meta["handlingStrategy"] != "GEN2" {
		t.Errorf("handlingStrategy: got %v", meta["handlingStrategy"])
	}
	if meta["creationTime"] != defaultTimestamp {
		t.Errorf("creationTime: got %v", meta["creationTime"])
	}

	op, ok := ctx.Input["operation"].(map[string]any)
	if !ok {
		t.Fatal("operation not materialized")
	}
	if op["name"] != "CREATE" {
		t.Errorf("operation.name: got %v", op["name"])
	}

	payments, ok := ctx.Input["payments"].([]any)
	if !ok || len(payments) != 1 {
		t.Fatalf("payments: got %v", ctx.Input["payments"])
	}
	payment := payments[0].(map[string]any)
	if payment["amount"] != 25.50 || payment["paymentMethod"] != "CARD" {
		t.Errorf("payment: got %v", payment)
	}

	// Unrecognized fields default to an empty string.
	if v, ok := ctx.Input["customField"]; !ok || v != "" {
		t.Errorf("customField: got %v", v)
	}

	// Array item paths land at the input root under their leaf name.
	if v, ok := ctx.Input["name"]; !ok || v != "" {
		t.Errorf("item leaf: got %v", v)
	}
}

func TestBuildDefaultsInvoicingItems(t *testing.T) {
	extracted := &Extracted{
		InvoicingItems: []string{"PRODUCTS_TO_PARTNER", "TIP_TO_CUSTOMER", "DELIVERY_FEE_BY_GLOVO", "SOME_OTHER_ITEM"},
	}

	ctx := BuildDefaults(extracted)

	tests := []struct {
		item  string
		gross float64
		net   float64
	}{
		{"PRODUCTS_TO_PARTNER", 20.00, 18.00},
		{"TIP_TO_CUSTOMER", 2.00, 2.00},
		{"DELIVERY_FEE_BY_GLOVO", 3.50, 3.00},
		{"SOME_OTHER_ITEM", 0, 0},
	}
	for _, tt := range tests {
		amounts, ok := ctx.InvoicingItems[tt.item]
		if !ok {
			t.Errorf("%s missing", tt.item)
			continue
		}
		if amounts["grossAmount"].Value != tt.gross {
			t.Errorf("%s grossAmount: got %v, want %v", tt.item, amounts["grossAmount"].Value, tt.gross)
		}
		if amounts["netAmount"].Value != tt.net {
			t.Errorf("%s netAmount: got %v, want %v", tt.item, amounts["netAmount"].Value, tt.net)
		}
		if _, ok := amounts["amount"]; !ok {
			t.Errorf("%s missing amount record", tt.item)
		}
	}
}

func TestBuildDefaultsVariables(t *testing.T) {
	extracted := &Extracted{
		Variables: []string{"financialSourceCountryCodeValue", "currencyCodeValue", "cityCodeValue", "isVatOptimisedOrder", "mysteryValue"},
	}

	ctx := BuildDefaults(extracted)

	want := map[string]any{
		"financialSourceCountryCodeValue": "ES",
		"currencyCodeValue":               "EUR",
		"cityCodeValue":                   "BCN",
		"isVatOptimisedOrder":             false,
		"mysteryValue":                    "",
	}
	for name, w := range want {
		if got := ctx.Variables[name]; got != w {
			t.Errorf("%s: got %#v, want %#v", name, got, w)
		}
	}
}

// Every path the extractor reports gets a defined value in the default
// context, so extraction followed by defaults never leaves a hole.
func TestBuildDefaultsCoversExtraction(t *testing.T) {
	extracted := Extract(extractConfig())
	ctx := BuildDefaults(extracted)

	for _, item := range extracted.InvoicingItems {
		if _, ok := ctx.InvoicingItems[item]; !ok {
			t.Errorf("invoicing item %s has no default", item)
		}
	}
	for _, v := range extracted.Variables {
		if _, ok := ctx.Variables[v]; !ok {
			t.Errorf("variable %s has no default", v)
		}
	}
	for _, field := range extracted.InputFields {
		if !pathDefined(ctx.Input, field) {
			t.Errorf("input field %s has no default", field)
		}
	}
}

func pathDefined(root map[string]any, field string) bool {
	path := splitPath(field)
	current := root
	for i := 0; i < len(path)-1; i++ {
		next, ok := current[path[i]].(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	_, ok := current[path[len(path)-1]]
	return ok
}

func splitPath(field string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(field); i++ {
		if i == len(field) || field[i] == '.' {
			parts = append(parts, field[start:i])
			start = i + 1
		}
	}
	// Drop the namespace marker, nesting starts at the second segment.
	return parts[1:]
}

func TestBuildDefaultsDeterministic(t *testing.T) {
	extracted := Extract(extractConfig())

	a := BuildDefaults(extracted)
	b := BuildDefaults(extracted)

	if len(a.Input) != len(b.Input) || len(a.Variables) != len(b.Variables) {
		t.Fatal("defaults differ between runs")
	}
	meta1, _ := a.Input["orderMetadata"].(map[string]any)
	meta2, _ := b.Input["orderMetadata"].(map[string]any)
	for k, v := range meta1 {
		if meta2[k] != v {
			t.Errorf("%s differs: %v vs %v", k, v, meta2[k])
		}
	}
}
