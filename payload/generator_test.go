package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makito233/fin-erp-yml-config/expression"
	"github.com/makito233/fin-erp-yml-config/mapping"
)

func testContext() *expression.Context {
	return &expression.Context{
		Input: map[string]any{
			"orderMetadata": map[string]any{
				"orderCode": "ORDER-12345",
			},
		},
		InvoicingItems: map[string]expression.ItemAmounts{
			"DELIVERY_FEE_BY_GLOVO": {"grossAmount": {Value: 3.5}},
		},
		Variables: map[string]any{
			"financialSourceCountryCodeValue": "ES",
		},
	}
}

func fieldCfg(name, expr string, countries ...string) mapping.FieldMapping {
	return mapping.FieldMapping{
		Name: name,
		Type: mapping.TypeString,
		ExpressionsByCountry: []mapping.ExpressionByCountry{
			{Countries: countries, Expression: expr},
		},
	}
}

func TestGenerateFieldMapping(t *testing.T) {
	cfg := &mapping.Configuration{
		FieldMappings: []mapping.FieldMapping{
			fieldCfg("orderCode", "#input.orderMetadata.orderCode", "ES"),
		},
	}

	result := Generate(cfg, testContext(), "ES")

	require.Empty(t, result.Errors)
	assert.Equal(t, "ORDER-12345", result.Payload["orderCode"])
}

func TestGenerateCountrySelection(t *testing.T) {
	cfg := &mapping.Configuration{
		FieldMappings: []mapping.FieldMapping{
			{
				Name: "label",
				Type: mapping.TypeString,
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"PL"}, Expression: "'polish'"},
					{Countries: []string{"ES", "PT"}, Expression: "'iberian'"},
					// Also matches ES, but the first match wins.
					{Countries: []string{"ES"}, Expression: "'never'"},
				},
			},
			fieldCfg("onlyFrance", "'french'", "FR"),
		},
	}

	result := Generate(cfg, testContext(), "ES")

	require.Empty(t, result.Errors)
	assert.Equal(t, "iberian", result.Payload["label"])

	// No matching country means the field is omitted, not defaulted.
	_, present := result.Payload["onlyFrance"]
	assert.False(t, present)
}

func TestGenerateConditionFormatting(t *testing.T) {
	cfg := &mapping.Configuration{
		ConditionMappings: []mapping.ConditionMapping{
			{
				ConditionType: "SUM",
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "1 + 2"},
				},
			},
			{
				ConditionType: "DELIVERY",
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#invoicingItems['DELIVERY_FEE_BY_GLOVO']?.grossAmount?.value ?: 0"},
				},
			},
			{
				ConditionType: "LABEL",
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#input.orderMetadata.orderCode"},
				},
			},
		},
	}

	result := Generate(cfg, testContext(), "ES")
	require.Empty(t, result.Errors)

	items, ok := result.Payload["items"].([]ConditionItem)
	require.True(t, ok)
	require.Len(t, items, 3)

	// Numeric results are formatted to two decimals; strings pass through.
	assert.Equal(t, ConditionItem{ConditionType: "SUM", ConditionValue: "3.00"}, items[0])
	assert.Equal(t, ConditionItem{ConditionType: "DELIVERY", ConditionValue: "3.50"}, items[1])
	assert.Equal(t, ConditionItem{ConditionType: "LABEL", ConditionValue: "ORDER-12345"}, items[2])
}

func TestGenerateConditionSkippedWithoutCountryMatch(t *testing.T) {
	cfg := &mapping.Configuration{
		ConditionMappings: []mapping.ConditionMapping{
			{
				ConditionType: "SUM",
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"PL"}, Expression: "1 + 2"},
				},
			},
		},
	}

	result := Generate(cfg, testContext(), "ES")
	items := result.Payload["items"].([]ConditionItem)
	assert.Empty(t, items)
}

func TestGenerateItemsAlwaysPresent(t *testing.T) {
	result := Generate(&mapping.Configuration{}, testContext(), "ES")

	items, ok := result.Payload["items"].([]ConditionItem)
	require.True(t, ok)
	assert.Empty(t, items)
	assert.Empty(t, result.Errors)
}

func TestGenerateBrokenExpressionDegradesToZero(t *testing.T) {
	cfg := &mapping.Configuration{
		FieldMappings: []mapping.FieldMapping{
			fieldCfg("broken", "#garbage(", "ES"),
			fieldCfg("fine", "'still works'", "ES"),
		},
	}

	result := Generate(cfg, testContext(), "ES")

	// Evaluation never fails outward; the broken field degrades to 0 and
	// processing continues.
	assert.Equal(t, float64(0), result.Payload["broken"])
	assert.Equal(t, "still works", result.Payload["fine"])
	assert.Empty(t, result.Errors)
}

func TestFormatConditionValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{3, "3.00"},
		{3.5, "3.50"},
		{2.345, "2.35"},
		{-2.675, "-2.68"},
		{1234.5678, "1234.57"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatConditionValue(tt.in), "formatConditionValue(%v)", tt.in)
	}
}
