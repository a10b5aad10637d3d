package mapping

import (
	"strings"
	"testing"
)

func sampleConfig() *Configuration {
	return &Configuration{
		FieldMappings: []FieldMapping{
			{
				Name: "orderId",
				Type: TypeString,
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{"ES", "PT"}, Expression: "#input.orderMetadata.orderId"},
				},
			},
			{
				Name:   "creationTime",
				Type:   TypeLocalDateTime,
				Format: "yyyy/MM/dd HH:mm:ss",
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#input.orderMetadata.creationTime"},
				},
			},
		},
		ConditionMappings: []ConditionMapping{
			{
				ConditionType: "TOTAL_AMOUNT",
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#invoicingItems['PRODUCTS_TO_PARTNER']?.grossAmount?.value ?: 0"},
				},
			},
		},
	}
}

func TestEncodeFieldMappings(t *testing.T) {
	got := encodeFieldMappings(sampleConfig().FieldMappings)

	want := "fieldMappings:\n" +
		"  orderId:\n" +
		"    type: string\n" +
		"    expressionsByCountry:\n" +
		"      - countries: [ 'ES', 'PT' ]\n" +
		"        expression: #input.orderMetadata.orderId\n" +
		"  creationTime:\n" +
		"    type: local_date_time\n" +
		"    format: yyyy/MM/dd HH:mm:ss\n" +
		"    expressionsByCountry:\n" +
		"      - countries: [ 'ES' ]\n" +
		"        expression: #input.orderMetadata.creationTime\n"

	if got != want {
		t.Errorf("encodeFieldMappings mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeConditionMappings(t *testing.T) {
	got := encodeConditionMappings(sampleConfig().ConditionMappings)

	want := "conditionMappings:\n" +
		"  - conditionType: TOTAL_AMOUNT\n" +
		"    expressionsByCountry:\n" +
		"      - countries: [ 'ES' ]\n" +
		"        expression: >\n" +
		"          #invoicingItems['PRODUCTS_TO_PARTNER']?.grossAmount?.value ?: 0\n" +
		"\n"

	if got != want {
		t.Errorf("encodeConditionMappings mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeIncludesCommentBlocks(t *testing.T) {
	out := Encode(sampleConfig())

	if !strings.HasPrefix(out, fileHeader) {
		t.Error("output does not start with the file header")
	}
	if !strings.Contains(out, typeDocumentation) {
		t.Error("output does not contain the type documentation block")
	}
	if !strings.Contains(out, conditionDocumentation) {
		t.Error("output does not contain the condition documentation block")
	}
}

func TestEncodeEmptyConfiguration(t *testing.T) {
	cfg := &Configuration{}
	out := EncodeWithOptions(cfg, EncodeOptions{})

	want := "fieldMappings: {}\nconditionMappings:\n  []"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestEncodeExpressionStyles(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{
			name:       "empty",
			expression: "",
			want:       "      expression: \"\"\n",
		},
		{
			name:       "quoted literal passes through",
			expression: `"TB1"`,
			want:       "      expression: \"TB1\"\n",
		},
		{
			name:       "short plain scalar",
			expression: "#input.orderMetadata.orderId",
			want:       "      expression: #input.orderMetadata.orderId\n",
		},
		{
			name:       "safe navigation forces folded style",
			expression: "#input.orderMetadata?.orderId",
			want:       "      expression: >\n        #input.orderMetadata?.orderId\n",
		},
		{
			name:       "map literal forces folded style",
			expression: "{ 'A': 1 }['A']",
			want:       "      expression: >\n        { 'A': 1 }['A']\n",
		},
		{
			name:       "long expression forces folded style",
			expression: "#input.orderMetadata.subvertical + #input.orderMetadata.vertical",
			want:       "      expression: >\n        #input.orderMetadata.subvertical + #input.orderMetadata.vertical\n",
		},
		{
			name:       "multiline folded drops blank lines and re-trims",
			expression: "#cityCodeValue == 'BCN'\n\n  and true",
			want:       "      expression: >\n        #cityCodeValue == 'BCN'\n        and true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeExpression(tt.expression, 6); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestEncodeCountries(t *testing.T) {
	if got := encodeCountries(nil); got != "[]" {
		t.Errorf("empty countries: got %q, want []", got)
	}
	if got := encodeCountries([]string{"ES", "PL"}); got != "[ 'ES', 'PL' ]" {
		t.Errorf("got %q", got)
	}
}

// Folded expressions survive an encode/parse/encode cycle byte for byte.
// Plain-scalar expressions starting with # do not (the reparse reads them as
// comments), which mirrors the historical file format.
func TestEncodeParseRoundTrip(t *testing.T) {
	cfg := &Configuration{
		FieldMappings: []FieldMapping{
			{
				Name: "storeId",
				Type: TypeString,
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{"ES"}, Expression: "#input.orderMetadata?.storeAddressId ?: '0'"},
				},
			},
			{
				Name: "emptyCountries",
				Type: TypeOptionalString,
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{}, Expression: "#currencyCodeValue ?: 'EUR'"},
				},
			},
		},
		ConditionMappings: []ConditionMapping{
			{
				ConditionType: "TIP",
				ExpressionsByCountry: []ExpressionByCountry{
					{Countries: []string{"ES", "PL"}, Expression: "#invoicingItems['TIP_TO_CUSTOMER']?.grossAmount?.value ?: 0"},
				},
			},
		},
	}

	first := Encode(cfg)

	parsed, err := Parse([]byte(first))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	second := Encode(parsed)
	if first != second {
		t.Errorf("round trip not stable\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}
