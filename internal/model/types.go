package model

import (
	"fmt"
	"strings"
)

// SchemaType tags a RouteParameterSchema variant.
type SchemaType string

const (
	SchemaTypeArray   SchemaType = "array"
	SchemaTypeObject  SchemaType = "object"
	SchemaTypeFile    SchemaType = "file"
	SchemaTypeString  SchemaType = "string"
	SchemaTypeNumber  SchemaType = "number"
	SchemaTypeInteger SchemaType = "integer"
	SchemaTypeBoolean SchemaType = "boolean"
	SchemaTypeNull    SchemaType = "null"
	SchemaTypeNever   SchemaType = "never"
)

// ContentType is the closed set of body encodings a route may declare.
type ContentType string

const (
	ContentTypeJSON       ContentType = "application/json"
	ContentTypeURLEncoded ContentType = "application/x-www-form-urlencoded"
	ContentTypeMultipart  ContentType = "multipart/form-data"
)

// RouteMethod is an HTTP method in lower case.
type RouteMethod string

const (
	MethodGet     RouteMethod = "get"
	MethodPost    RouteMethod = "post"
	MethodPut     RouteMethod = "put"
	MethodPatch   RouteMethod = "patch"
	MethodDelete  RouteMethod = "delete"
	MethodHead    RouteMethod = "head"
	MethodOptions RouteMethod = "options"
	MethodTrace   RouteMethod = "trace"
)

// DefaultMethods is the visiting order used when no method set is configured.
var DefaultMethods = []RouteMethod{
	MethodGet, MethodPost, MethodPut, MethodPatch,
	MethodDelete, MethodHead, MethodOptions, MethodTrace,
}

// ParseMethod normalizes a method name.
func ParseMethod(raw string) (RouteMethod, error) {
	method := RouteMethod(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range DefaultMethods {
		if method == known {
			return method, nil
		}
	}
	return "", fmt.Errorf("model: unsupported method %q", raw)
}

// RouteParameterSchema is a closed tagged variant. Type selects the variant
// and only the fields belonging to it may be set; build values through the
// constructors below. Object and array are the only recursive variants.
type RouteParameterSchema struct {
	Type        SchemaType `json:"type"`
	Description string     `json:"description,omitempty"`

	// array
	Items *RouteParameterSchema `json:"items,omitempty"`
	// object
	Properties RouteParameters `json:"properties,omitempty"`

	// string, number, integer
	Format  string `json:"format,omitempty"`
	Default any    `json:"default,omitempty"`

	// string
	Enum      []any  `json:"enum,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// number, integer
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *float64 `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `json:"exclusiveMaximum,omitempty"`
}

// StringConstraints carries the optional string variant fields.
type StringConstraints struct {
	Format    string
	Enum      []any
	MinLength *int
	MaxLength *int
	Pattern   string
	Default   any
}

// NumericConstraints carries the optional number/integer variant fields.
type NumericConstraints struct {
	Format           string
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	Default          any
}

// ArraySchema builds the array variant.
func ArraySchema(items RouteParameterSchema) RouteParameterSchema {
	return RouteParameterSchema{Type: SchemaTypeArray, Items: &items}
}

// ObjectSchema builds the object variant. Empty property sets are dropped.
func ObjectSchema(properties RouteParameters) RouteParameterSchema {
	if len(properties) == 0 {
		properties = nil
	}
	return RouteParameterSchema{Type: SchemaTypeObject, Properties: properties}
}

// FileSchema builds the binary upload variant.
func FileSchema() RouteParameterSchema {
	return RouteParameterSchema{Type: SchemaTypeFile}
}

// StringSchema builds the string variant.
func StringSchema(c StringConstraints) RouteParameterSchema {
	return RouteParameterSchema{
		Type:      SchemaTypeString,
		Format:    c.Format,
		Enum:      c.Enum,
		MinLength: c.MinLength,
		MaxLength: c.MaxLength,
		Pattern:   c.Pattern,
		Default:   c.Default,
	}
}

// NumericSchema builds the number or integer variant. Any other type is
// reported as never.
func NumericSchema(typ SchemaType, c NumericConstraints) RouteParameterSchema {
	if typ != SchemaTypeNumber && typ != SchemaTypeInteger {
		return NeverSchema()
	}
	return RouteParameterSchema{
		Type:             typ,
		Format:           c.Format,
		Minimum:          c.Minimum,
		Maximum:          c.Maximum,
		ExclusiveMinimum: c.ExclusiveMinimum,
		ExclusiveMaximum: c.ExclusiveMaximum,
		Default:          c.Default,
	}
}

// BooleanSchema builds the boolean variant.
func BooleanSchema(def any) RouteParameterSchema {
	return RouteParameterSchema{Type: SchemaTypeBoolean, Default: def}
}

// NullSchema builds the null variant.
func NullSchema() RouteParameterSchema {
	return RouteParameterSchema{Type: SchemaTypeNull}
}

// NeverSchema builds the unsupported-input fallback.
func NeverSchema() RouteParameterSchema {
	return RouteParameterSchema{Type: SchemaTypeNever}
}

// OtherSchema passes through a scalar type the variant set does not name.
func OtherSchema(typ string) RouteParameterSchema {
	return RouteParameterSchema{Type: SchemaType(typ)}
}

// WithDescription returns a copy carrying description.
func (s RouteParameterSchema) WithDescription(description string) RouteParameterSchema {
	s.Description = description
	return s
}

// IsNever reports whether s is the never variant.
func (s RouteParameterSchema) IsNever() bool {
	return s.Type == SchemaTypeNever
}

// Validate checks that only fields of the active variant are populated,
// recursing into items and properties.
func (s RouteParameterSchema) Validate() error {
	if s.Type == "" {
		return fmt.Errorf("model: schema variant is missing its type")
	}
	var stray []string
	check := func(name string, set, allowed bool) {
		if set && !allowed {
			stray = append(stray, name)
		}
	}
	isString := s.Type == SchemaTypeString
	isNumeric := s.Type == SchemaTypeNumber || s.Type == SchemaTypeInteger
	check("items", s.Items != nil, s.Type == SchemaTypeArray)
	check("properties", s.Properties != nil, s.Type == SchemaTypeObject)
	check("format", s.Format != "", isString || isNumeric)
	check("default", s.Default != nil, isString || isNumeric || s.Type == SchemaTypeBoolean)
	check("enum", s.Enum != nil, isString)
	check("minLength", s.MinLength != nil, isString)
	check("maxLength", s.MaxLength != nil, isString)
	check("pattern", s.Pattern != "", isString)
	check("minimum", s.Minimum != nil, isNumeric)
	check("maximum", s.Maximum != nil, isNumeric)
	check("exclusiveMinimum", s.ExclusiveMinimum != nil, isNumeric)
	check("exclusiveMaximum", s.ExclusiveMaximum != nil, isNumeric)
	if len(stray) > 0 {
		return fmt.Errorf("model: %s schema sets %s", s.Type, strings.Join(stray, ", "))
	}

	if s.Type == SchemaTypeArray {
		if s.Items == nil {
			return fmt.Errorf("model: array schema is missing items")
		}
		if err := s.Items.Validate(); err != nil {
			return fmt.Errorf("items: %w", err)
		}
	}
	for name, prop := range s.Properties {
		if err := prop.RouteParameterSchema.Validate(); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
	}
	return nil
}

// RouteParameter is a named value with its schema flattened alongside.
// Required false is omitted from the encoded form.
type RouteParameter struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	RouteParameterSchema
}

// RouteParameters maps parameter or property names to their definitions.
type RouteParameters map[string]RouteParameter

// RouteResponse describes one response status.
type RouteResponse struct {
	ContentType ContentType           `json:"contentType,omitempty"`
	Description string                `json:"description,omitempty"`
	Body        *RouteParameterSchema `json:"body,omitempty"`
	Headers     RouteParameters       `json:"headers,omitempty"`
}

// AuthScheme is a resolved security scheme reference.
type AuthScheme struct {
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	Scheme       string   `json:"scheme,omitempty"`
	BearerFormat string   `json:"bearerFormat,omitempty"`
	In           string   `json:"in,omitempty"`
	Parameter    string   `json:"parameter,omitempty"`
	Description  string   `json:"description,omitempty"`
	Scopes       []string `json:"scopes,omitempty"`
}

// AuthRequirement lists schemes that must all be satisfied together.
type AuthRequirement struct {
	Schemes []AuthScheme `json:"schemes"`
}

// Authorization describes alternative requirements; any one satisfies the
// route. Optional marks that an anonymous request is also accepted.
type Authorization struct {
	Requirements []AuthRequirement `json:"requirements"`
	Optional     bool              `json:"optional,omitempty"`
}

// Route is one normalized HTTP operation.
type Route struct {
	ID            string                `json:"id,omitempty"`
	DomainURLs    []string              `json:"domainURLs,omitempty"`
	Path          string                `json:"path"`
	Title         string                `json:"title"`
	Description   string                `json:"description,omitempty"`
	Tags          [][]string            `json:"tags"`
	Method        RouteMethod           `json:"method"`
	Deprecated    bool                  `json:"deprecated,omitempty"`
	Authorization *Authorization        `json:"authorization,omitempty"`
	PathParams    RouteParameters       `json:"pathParams,omitempty"`
	QueryParams   RouteParameters       `json:"queryParams,omitempty"`
	ContentType   ContentType           `json:"contentType,omitempty"`
	Body          *RouteParameterSchema `json:"body,omitempty"`
	Responses     map[int]RouteResponse `json:"responses"`
}

// APIReferenceCore is the complete normalized document.
type APIReferenceCore struct {
	Title         string         `json:"title,omitempty"`
	Version       string         `json:"version,omitempty"`
	DomainURLs    []string       `json:"domainURLs,omitempty"`
	Authorization *Authorization `json:"authorization,omitempty"`
	Routes        []Route        `json:"routes"`
}
