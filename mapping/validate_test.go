package mapping

import (
	"strings"
	"testing"
)

func validConfig() *Configuration {
	return &Configuration{
		FieldMappings: []FieldMapping{
			{
				Name: "orderId",
				Type: TypeString,
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#input.orderMetadata.orderId"},
				},
			},
		},
		ConditionMappings: []ConditionMapping{
			{
				ConditionType: "TOTAL_AMOUNT",
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "1 + 2"},
				},
			},
		},
	}
}

func TestValidateCleanConfig(t *testing.T) {
	if errs := Validate(validConfig()); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Configuration)
		want   string
	}{
		{
			name: "missing type",
			mutate: func(c *Configuration) {
				c.FieldMappings[0].Type = ""
			},
			want: `Field "orderId" is missing type`,
		},
		{
			name: "duplicate field name",
			mutate: func(c *Configuration) {
				c.FieldMappings = append(c.FieldMappings, c.FieldMappings[0])
			},
			want: `Duplicate field name "orderId"`,
		},
		{
			name: "nil countries",
			mutate: func(c *Configuration) {
				c.FieldMappings[0].ExpressionsByCountry[0].Countries = nil
			},
			want: "fieldMappings.orderId[0]: countries must be an array",
		},
		{
			name: "empty expression",
			mutate: func(c *Configuration) {
				c.FieldMappings[0].ExpressionsByCountry[0].Expression = ""
			},
			want: "fieldMappings.orderId[0]: expression must be a non-empty string",
		},
		{
			name: "unbalanced braces",
			mutate: func(c *Configuration) {
				c.FieldMappings[0].ExpressionsByCountry[0].Expression = "{ 'A': 1 ['A']"
			},
			want: "Unbalanced braces in SpEL expression",
		},
		{
			name: "unbalanced brackets",
			mutate: func(c *Configuration) {
				c.FieldMappings[0].ExpressionsByCountry[0].Expression = "#invoicingItems['X'?.value"
			},
			want: "Unbalanced brackets in SpEL expression",
		},
		{
			name: "unbalanced parentheses",
			mutate: func(c *Configuration) {
				c.FieldMappings[0].ExpressionsByCountry[0].Expression = "(1 + 2"
			},
			want: "Unbalanced parentheses in SpEL expression",
		},
		{
			name: "missing conditionType",
			mutate: func(c *Configuration) {
				c.ConditionMappings[0].ConditionType = ""
			},
			want: "Condition mapping [0] is missing conditionType",
		},
		{
			name: "nested item missing type",
			mutate: func(c *Configuration) {
				c.FieldMappings[0].ItemsMappings = []FieldMapping{{Name: "amount"}}
			},
			want: "is missing type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			errs := Validate(cfg)
			if len(errs) == 0 {
				t.Fatal("expected validation findings, got none")
			}
			found := false
			for _, e := range errs {
				if strings.Contains(e, tt.want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("findings %v do not contain %q", errs, tt.want)
			}
		})
	}
}

func TestValidateNestedExpressionPath(t *testing.T) {
	cfg := validConfig()
	cfg.FieldMappings[0].ItemsMappings = []FieldMapping{
		{
			Name: "amount",
			Type: TypeDouble,
			ExpressionsByCountry: []ExpressionByCountry{
				{Countries: []string{"ES"}, Expression: ""},
			},
		},
	}

	errs := Validate(cfg)
	want := "fieldMappings.orderId.itemsMappings.amount[0]: expression must be a non-empty string"
	found := false
	for _, e := range errs {
		if e == want {
			found = true
		}
	}
	if !found {
		t.Errorf("findings %v do not contain %q", errs, want)
	}
}
