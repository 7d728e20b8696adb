package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Schema is an OpenAPI 3.1 Schema Object (a JSON Schema 2020-12 subset).
type Schema struct {
	Ref         string        `yaml:"$ref"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Type        SchemaType    `yaml:"type"`
	Format      string        `yaml:"format"`
	Enum        []any         `yaml:"enum"`
	Const       any           `yaml:"const"`
	Default     any           `yaml:"default"`
	Properties  *Map[*Schema] `yaml:"properties"`
	Required    []string      `yaml:"required"`
	Items       SchemaItems   `yaml:"items"`
	AllOf       []*Schema     `yaml:"allOf"`
	OneOf       []*Schema     `yaml:"oneOf"`
	AnyOf       []*Schema     `yaml:"anyOf"`
	Not         *Schema       `yaml:"not"`

	Minimum          *float64 `yaml:"minimum"`
	Maximum          *float64 `yaml:"maximum"`
	ExclusiveMinimum Bound    `yaml:"exclusiveMinimum"`
	ExclusiveMaximum Bound    `yaml:"exclusiveMaximum"`
	MinLength        *int     `yaml:"minLength"`
	MaxLength        *int     `yaml:"maxLength"`
	Pattern          string   `yaml:"pattern"`

	Nullable   bool `yaml:"nullable"`
	Deprecated bool `yaml:"deprecated"`
	ReadOnly   bool `yaml:"readOnly"`
	WriteOnly  bool `yaml:"writeOnly"`
}

// IsRequired reports whether name appears in the schema's required list.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, candidate := range s.Required {
		if candidate == name {
			return true
		}
	}
	return false
}

// Lower returns the inclusive and exclusive lower bounds. A 3.0 style
// boolean exclusiveMinimum turns minimum into the exclusive bound.
func (s *Schema) Lower() (minimum, exclusive *float64) {
	return bounds(s.Minimum, s.ExclusiveMinimum)
}

// Upper mirrors Lower for maximum/exclusiveMaximum.
func (s *Schema) Upper() (maximum, exclusive *float64) {
	return bounds(s.Maximum, s.ExclusiveMaximum)
}

func bounds(limit *float64, b Bound) (*float64, *float64) {
	if b.Value != nil {
		return limit, b.Value
	}
	if b.Exclusive && limit != nil {
		return nil, limit
	}
	return limit, nil
}

// SchemaType holds the "type" keyword, which may be a single name or a list.
type SchemaType struct {
	Names []string
	list  bool
}

// Type returns a scalar type keyword.
func Type(name string) SchemaType {
	return SchemaType{Names: []string{name}}
}

// Types returns a list type keyword. A list is kept as a list even when it
// has a single entry.
func Types(names ...string) SchemaType {
	return SchemaType{Names: append([]string(nil), names...), list: true}
}

// Single returns the type name when the keyword is a scalar string.
func (t SchemaType) Single() (string, bool) {
	if t.list || len(t.Names) != 1 || t.Names[0] == "" {
		return "", false
	}
	return t.Names[0], true
}

// IsList reports whether the keyword was declared as an array.
func (t SchemaType) IsList() bool {
	return t.list
}

// UnmarshalYAML accepts a string or a sequence of strings.
func (t *SchemaType) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if isNull(node) {
			return nil
		}
		t.Names = []string{node.Value}
		t.list = false
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return fmt.Errorf("openapi: schema type: %w", err)
		}
		t.Names = names
		t.list = true
		return nil
	default:
		return fmt.Errorf("openapi: schema type at line %d must be a string or list, got %s", node.Line, kindName(node.Kind))
	}
}

// SchemaItems holds the "items" keyword. OpenAPI 3.1 allows a schema or a
// boolean; a list form is still accepted from older tooling.
type SchemaItems struct {
	Schemas []*Schema
	list    bool
}

// ItemsOf wraps a single items schema.
func ItemsOf(schema *Schema) SchemaItems {
	return SchemaItems{Schemas: []*Schema{schema}}
}

// ItemsList wraps a list form items keyword.
func ItemsList(schemas ...*Schema) SchemaItems {
	return SchemaItems{Schemas: append([]*Schema(nil), schemas...), list: true}
}

// First returns the single items schema, or the first of a list.
func (i SchemaItems) First() *Schema {
	if len(i.Schemas) == 0 {
		return nil
	}
	return i.Schemas[0]
}

// IsList reports whether items was declared as an array.
func (i SchemaItems) IsList() bool {
	return i.list
}

// UnmarshalYAML accepts a schema, a list of schemas or a boolean.
func (i *SchemaItems) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		var schema Schema
		if err := node.Decode(&schema); err != nil {
			return err
		}
		i.Schemas = []*Schema{&schema}
		i.list = false
	case yaml.SequenceNode:
		var schemas []*Schema
		if err := node.Decode(&schemas); err != nil {
			return err
		}
		i.Schemas = schemas
		i.list = true
	case yaml.ScalarNode:
		// true/false/null carry no schema to normalize.
		i.Schemas = nil
	default:
		return fmt.Errorf("openapi: items at line %d has unsupported %s form", node.Line, kindName(node.Kind))
	}
	return nil
}

// Bound holds exclusiveMinimum/exclusiveMaximum, which is a number in 3.1 and
// a boolean modifier in 3.0.
type Bound struct {
	Value     *float64
	Exclusive bool
}

// ExclusiveAt returns a 3.1 numeric bound.
func ExclusiveAt(v float64) Bound {
	return Bound{Value: &v}
}

// UnmarshalYAML accepts a number or a boolean.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("openapi: exclusive bound at line %d must be a scalar", node.Line)
	}
	switch node.Tag {
	case "!!null":
		return nil
	case "!!bool":
		return node.Decode(&b.Exclusive)
	default:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("openapi: exclusive bound: %w", err)
		}
		b.Value = &v
		return nil
	}
}
