package mapping

// FieldType describes how a mapped value is rendered into the order payload.
type FieldType string

const (
	TypeString                FieldType = "string"
	TypeOptionalString        FieldType = "optional_string"
	TypeDouble                FieldType = "double"
	TypeLocalDateTime         FieldType = "local_date_time"
	TypeOptionalLocalDateTime FieldType = "optional_local_date_time"
	TypeArray                 FieldType = "array"
)

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	switch t {
	case TypeString, TypeOptionalString, TypeDouble,
		TypeLocalDateTime, TypeOptionalLocalDateTime, TypeArray:
		return true
	}
	return false
}

// IsDateTime reports whether t carries a date format.
func (t FieldType) IsDateTime() bool {
	return t == TypeLocalDateTime || t == TypeOptionalLocalDateTime
}

// ExpressionByCountry binds one expression to the set of countries it applies
// to. Country order is preserved for display but carries no meaning; an empty
// set matches no country.
type ExpressionByCountry struct {
	Countries  []string `json:"countries" yaml:"countries"`
	Expression string   `json:"expression" yaml:"expression"`
}

// FieldMapping produces one field of the order payload. Field mappings are
// name-keyed in the YAML file; the model keeps them as an ordered slice so
// serialization is insertion-stable. ItemsMappings is populated only for
// array-typed fields and nests exactly one level.
type FieldMapping struct {
	Name                 string                `json:"name"`
	Type                 FieldType             `json:"type"`
	Format               string                `json:"format,omitempty"`
	ExpressionsByCountry []ExpressionByCountry `json:"expressionsByCountry,omitempty"`
	ItemsMappings        []FieldMapping        `json:"itemsMappings,omitempty"`
}

// SetType changes the field type, clearing state the new type cannot carry:
// the format when leaving a date-time type, and the nested item mappings when
// leaving array.
func (f *FieldMapping) SetType(t FieldType) {
	if !t.IsDateTime() {
		f.Format = ""
	}
	if t != TypeArray {
		f.ItemsMappings = nil
	}
	f.Type = t
}

// ConditionMapping produces one entry of the payload's items condition array.
// Declaration order is semantically significant.
type ConditionMapping struct {
	ConditionType        string                `json:"conditionType" yaml:"conditionType"`
	ExpressionsByCountry []ExpressionByCountry `json:"expressionsByCountry,omitempty" yaml:"expressionsByCountry"`
}

// Configuration is the root of the mapping model.
type Configuration struct {
	FieldMappings     []FieldMapping     `json:"fieldMappings"`
	ConditionMappings []ConditionMapping `json:"conditionMappings"`
}

// Field returns the field mapping with the given name, or nil.
func (c *Configuration) Field(name string) *FieldMapping {
	for i := range c.FieldMappings {
		if c.FieldMappings[i].Name == name {
			return &c.FieldMappings[i]
		}
	}
	return nil
}
