package expression

import (
	"reflect"
	"testing"

	"github.com/makito233/fin-erp-yml-config/mapping"
)

func extractConfig() *mapping.Configuration {
	return &mapping.Configuration{
		FieldMappings: []mapping.FieldMapping{
			{
				Name: "orderCode",
				Type: mapping.TypeString,
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#input.orderMetadata.orderCode"},
					{Countries: []string{"PL"}, Expression: "#input.orderMetadata.orderId + '-' + #cityCodeValue"},
				},
			},
			{
				Name: "operationName",
				Type: mapping.TypeString,
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#input.operation.name()"},
				},
			},
			{
				Name: "lines",
				Type: mapping.TypeArray,
				ItemsMappings: []mapping.FieldMapping{
					{
						Name: "label",
						Type: mapping.TypeString,
						ExpressionsByCountry: []mapping.ExpressionByCountry{
							{Countries: []string{"ES"}, Expression: "#item.name + #isVatOptimisedOrder"},
						},
					},
				},
			},
		},
		ConditionMappings: []mapping.ConditionMapping{
			{
				ConditionType: "TIP",
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#invoicingItems['TIP_TO_CUSTOMER']?.grossAmount?.value ?: 0"},
				},
			},
		},
	}
}

func TestExtract(t *testing.T) {
	got := Extract(extractConfig())

	wantInputFields := []string{
		"input.operation.name",
		"input.orderMetadata.orderCode",
		"input.orderMetadata.orderId",
		"item.name",
	}
	if !reflect.DeepEqual(got.InputFields, wantInputFields) {
		t.Errorf("InputFields: got %v, want %v", got.InputFields, wantInputFields)
	}

	wantItems := []string{"TIP_TO_CUSTOMER"}
	if !reflect.DeepEqual(got.InvoicingItems, wantItems) {
		t.Errorf("InvoicingItems: got %v, want %v", got.InvoicingItems, wantItems)
	}

	wantVariables := []string{"cityCodeValue", "isVatOptimisedOrder"}
	if !reflect.DeepEqual(got.Variables, wantVariables) {
		t.Errorf("Variables: got %v, want %v", got.Variables, wantVariables)
	}
}

func TestExtractDeduplicates(t *testing.T) {
	cfg := &mapping.Configuration{
		FieldMappings: []mapping.FieldMapping{
			{
				Name: "a",
				Type: mapping.TypeString,
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#currencyCodeValue + #currencyCodeValue"},
					{Countries: []string{"PL"}, Expression: "#currencyCodeValue"},
				},
			},
		},
	}

	got := Extract(cfg)
	if !reflect.DeepEqual(got.Variables, []string{"currencyCodeValue"}) {
		t.Errorf("Variables: got %v", got.Variables)
	}
}

func TestExtractVariableSuffixRules(t *testing.T) {
	cfg := &mapping.Configuration{
		FieldMappings: []mapping.FieldMapping{
			{
				Name: "a",
				Type: mapping.TypeString,
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					// A Value/Code reference followed by a dereference or
					// index is not a standalone variable.
					{Countries: []string{"ES"}, Expression: "#financialSourceCountryCodeValue + #somethingValue.nested + #otherCodeValue['x']"},
				},
			},
		},
	}

	got := Extract(cfg)
	if !reflect.DeepEqual(got.Variables, []string{"financialSourceCountryCodeValue"}) {
		t.Errorf("Variables: got %v", got.Variables)
	}
}

func TestExtractEmptyConfig(t *testing.T) {
	got := Extract(&mapping.Configuration{})
	if len(got.InputFields) != 0 || len(got.InvoicingItems) != 0 || len(got.Variables) != 0 {
		t.Errorf("expected empty extraction, got %+v", got)
	}
}

func TestExtractIgnoresMalformedExpressions(t *testing.T) {
	cfg := &mapping.Configuration{
		FieldMappings: []mapping.FieldMapping{
			{
				Name: "a",
				Type: mapping.TypeString,
				ExpressionsByCountry: []mapping.ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "((#input.orderMetadata.orderId"},
				},
			},
		},
	}

	got := Extract(cfg)
	if !reflect.DeepEqual(got.InputFields, []string{"input.orderMetadata.orderId"}) {
		t.Errorf("InputFields: got %v", got.InputFields)
	}
}
