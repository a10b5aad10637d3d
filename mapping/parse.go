package mapping

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse reads a mapping file into a Configuration. Field mapping order is
// taken from document order, which a plain map unmarshal would lose, so the
// decoder walks yaml nodes directly. Parse either returns a complete
// configuration or an error; it never returns a partial result.
func Parse(data []byte) (*Configuration, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed YAML: %w", err)
	}

	cfg := &Configuration{
		FieldMappings:     []FieldMapping{},
		ConditionMappings: []ConditionMapping{},
	}

	if len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("malformed YAML: document root must be a mapping, got %s", nodeKind(root))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "fieldMappings":
			fields, err := parseFieldMappings(value, true)
			if err != nil {
				return nil, err
			}
			cfg.FieldMappings = fields
		case "conditionMappings":
			conditions, err := parseConditionMappings(value)
			if err != nil {
				return nil, err
			}
			cfg.ConditionMappings = conditions
		}
	}

	return cfg, nil
}

func parseFieldMappings(node *yaml.Node, allowNested bool) ([]FieldMapping, error) {
	fields := []FieldMapping{}
	if node.Kind == yaml.ScalarNode && node.Value == "" {
		return fields, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fieldMappings must be a mapping, got %s at line %d", nodeKind(node), node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name, body := node.Content[i], node.Content[i+1]
		field, err := parseFieldMapping(name.Value, body, allowNested)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func parseFieldMapping(name string, node *yaml.Node, allowNested bool) (FieldMapping, error) {
	field := FieldMapping{Name: name}
	if node.Kind != yaml.MappingNode {
		return field, fmt.Errorf("field %q must be a mapping, got %s at line %d", name, nodeKind(node), node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "type":
			field.Type = FieldType(value.Value)
		case "format":
			field.Format = value.Value
		case "expressionsByCountry":
			entries, err := parseExpressions(value, "field "+name)
			if err != nil {
				return field, err
			}
			field.ExpressionsByCountry = entries
		case "itemsMappings":
			if !allowNested {
				return field, fmt.Errorf("field %q: itemsMappings cannot nest beyond one level", name)
			}
			items, err := parseFieldMappings(value, false)
			if err != nil {
				return field, err
			}
			field.ItemsMappings = items
		}
	}
	return field, nil
}

func parseConditionMappings(node *yaml.Node) ([]ConditionMapping, error) {
	conditions := []ConditionMapping{}
	if node.Kind == yaml.ScalarNode && node.Value == "" {
		return conditions, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("conditionMappings must be a sequence, got %s at line %d", nodeKind(node), node.Line)
	}

	for _, entry := range node.Content {
		var cond ConditionMapping
		if err := entry.Decode(&cond); err != nil {
			return nil, fmt.Errorf("malformed condition mapping at line %d: %w", entry.Line, err)
		}
		cond.ConditionType = strings.TrimSpace(cond.ConditionType)
		for i := range cond.ExpressionsByCountry {
			cond.ExpressionsByCountry[i].Expression = strings.TrimSpace(cond.ExpressionsByCountry[i].Expression)
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

func parseExpressions(node *yaml.Node, where string) ([]ExpressionByCountry, error) {
	var entries []ExpressionByCountry
	if err := node.Decode(&entries); err != nil {
		return nil, fmt.Errorf("malformed expressionsByCountry in %s at line %d: %w", where, node.Line, err)
	}
	// Folded scalars come back with a trailing newline; expressions are
	// whitespace-insensitive so normalize on the way in.
	for i := range entries {
		entries[i].Expression = strings.TrimSpace(entries[i].Expression)
	}
	return entries, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
