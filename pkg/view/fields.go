package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-apiref/pkg/model"
)

// Field is one row of a flattened parameter or property tree.
type Field struct {
	Name        string
	Depth       int
	Required    bool
	Title       string
	Description string
	Schema      model.RouteParameterSchema
}

// Fields flattens params sorted by name. Nested object properties, including
// those reached through array items, follow their parent one level deeper.
func Fields(params model.RouteParameters) []Field {
	return appendFields(nil, params, 0)
}

// SchemaFields flattens the properties reachable from schema, or returns nil
// for scalar schemas.
func SchemaFields(schema *model.RouteParameterSchema) []Field {
	if schema == nil {
		return nil
	}
	return appendNested(nil, *schema, 0)
}

func appendFields(out []Field, params model.RouteParameters, depth int) []Field {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		param := params[name]
		out = append(out, Field{
			Name:        name,
			Depth:       depth,
			Required:    param.Required,
			Title:       param.Title,
			Description: param.Description,
			Schema:      param.RouteParameterSchema,
		})
		out = appendNested(out, param.RouteParameterSchema, depth+1)
	}
	return out
}

func appendNested(out []Field, schema model.RouteParameterSchema, depth int) []Field {
	switch schema.Type {
	case model.SchemaTypeObject:
		return appendFields(out, schema.Properties, depth)
	case model.SchemaTypeArray:
		if schema.Items != nil {
			return appendNested(out, *schema.Items, depth)
		}
	}
	return out
}

// TypeLabel renders a short type description such as "array<string (uuid)>".
func TypeLabel(schema model.RouteParameterSchema) string {
	switch schema.Type {
	case model.SchemaTypeArray:
		if schema.Items == nil {
			return "array"
		}
		return "array<" + TypeLabel(*schema.Items) + ">"
	case model.SchemaTypeString, model.SchemaTypeNumber, model.SchemaTypeInteger:
		if schema.Format != "" {
			return fmt.Sprintf("%s (%s)", schema.Type, schema.Format)
		}
	}
	return string(schema.Type)
}

// Constraints lists the validation keywords carried by schema in a stable
// order.
func Constraints(schema model.RouteParameterSchema) []string {
	var parts []string
	if len(schema.Enum) > 0 {
		values := make([]string, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			values = append(values, fmt.Sprint(value))
		}
		parts = append(parts, "one of: "+strings.Join(values, ", "))
	}
	if schema.MinLength != nil {
		parts = append(parts, "min length "+strconv.Itoa(*schema.MinLength))
	}
	if schema.MaxLength != nil {
		parts = append(parts, "max length "+strconv.Itoa(*schema.MaxLength))
	}
	if schema.Pattern != "" {
		parts = append(parts, "pattern "+schema.Pattern)
	}
	if schema.Minimum != nil {
		parts = append(parts, ">= "+formatNumber(*schema.Minimum))
	}
	if schema.ExclusiveMinimum != nil {
		parts = append(parts, "> "+formatNumber(*schema.ExclusiveMinimum))
	}
	if schema.Maximum != nil {
		parts = append(parts, "<= "+formatNumber(*schema.Maximum))
	}
	if schema.ExclusiveMaximum != nil {
		parts = append(parts, "< "+formatNumber(*schema.ExclusiveMaximum))
	}
	if schema.Default != nil {
		parts = append(parts, "default "+fmt.Sprint(schema.Default))
	}
	return parts
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Response pairs a status code with its response.
type Response struct {
	Status int
	model.RouteResponse
}

// Responses returns the route responses ordered by status code.
func (r Route) Responses() []Response {
	raw := r.raw().Responses
	out := make([]Response, 0, len(raw))
	for code, resp := range raw {
		out = append(out, Response{Status: code, RouteResponse: resp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}

// AuthLines describes each alternative requirement on one line, joining the
// schemes that must hold together with " + ".
func AuthLines(auth *model.Authorization) []string {
	if auth == nil {
		return nil
	}
	lines := make([]string, 0, len(auth.Requirements))
	for _, req := range auth.Requirements {
		schemes := make([]string, 0, len(req.Schemes))
		for _, scheme := range req.Schemes {
			schemes = append(schemes, SchemeLabel(scheme))
		}
		lines = append(lines, strings.Join(schemes, " + "))
	}
	return lines
}

// SchemeLabel renders a scheme name with its type, location and scopes.
func SchemeLabel(scheme model.AuthScheme) string {
	label := scheme.Name
	var detail []string
	switch {
	case scheme.Scheme != "":
		detail = append(detail, scheme.Type+" "+scheme.Scheme)
	case scheme.Type != "":
		detail = append(detail, scheme.Type)
	}
	if scheme.In != "" && scheme.Parameter != "" {
		detail = append(detail, scheme.Parameter+" in "+scheme.In)
	}
	if len(scheme.Scopes) > 0 {
		detail = append(detail, "scopes: "+strings.Join(scheme.Scopes, ", "))
	}
	if len(detail) > 0 {
		label += " (" + strings.Join(detail, "; ") + ")"
	}
	return label
}
