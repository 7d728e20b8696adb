package model

import (
	"log/slog"

	"github.com/goliatone/go-apiref/internal/resolve"
	"github.com/goliatone/go-apiref/pkg/openapi"
)

const formatBinary = "binary"

// transform holds the per-document state of one Build call.
type transform struct {
	spec     *openapi.Spec
	resolver *resolve.Resolver
	logger   *slog.Logger
}

func newTransform(spec *openapi.Spec, opts Options) *transform {
	t := &transform{spec: spec, logger: opts.Logger}
	t.resolver = resolve.New(spec,
		resolve.WithMaxDepth(opts.MaxRefDepth),
		resolve.WithObserver(func(m resolve.Miss) {
			t.logger.Debug("unresolved reference",
				slog.String("ref", m.Ref),
				slog.String("kind", string(m.Kind)),
				slog.String("reason", string(m.Reason)))
		}),
	)
	return t
}

// schema resolves raw and converts it into the closed variant. References
// entered on chain are released again before returning, so siblings may
// reuse the same component.
func (t *transform) schema(raw *openapi.Schema, chain *resolve.Chain) RouteParameterSchema {
	if chain == nil {
		chain = resolve.NewChain()
	}
	mark := chain.Mark()
	defer chain.Reset(mark)

	resolved, ok := t.resolver.Schema(raw, chain)
	if !ok {
		return NeverSchema()
	}
	return t.resolved(resolved, chain)
}

// resolved converts an already dereferenced schema.
func (t *transform) resolved(s *openapi.Schema, chain *resolve.Chain) RouteParameterSchema {
	typ, ok := s.Type.Single()
	if !ok {
		if len(s.Type.Names) > 0 || len(s.OneOf)+len(s.AnyOf)+len(s.AllOf) > 0 {
			t.logger.Debug("schema has no single type", slog.Any("type", s.Type.Names))
		}
		return NeverSchema().WithDescription(s.Description)
	}

	var out RouteParameterSchema
	switch typ {
	case string(SchemaTypeArray):
		out = ArraySchema(t.schema(s.Items.First(), chain))
	case string(SchemaTypeObject):
		out = ObjectSchema(t.properties(s, chain))
	case string(SchemaTypeString):
		if s.Format == formatBinary {
			out = FileSchema()
			break
		}
		out = StringSchema(StringConstraints{
			Format:    s.Format,
			Enum:      cloneValues(s.Enum),
			MinLength: cloneInt(s.MinLength),
			MaxLength: cloneInt(s.MaxLength),
			Pattern:   s.Pattern,
			Default:   cloneValue(s.Default),
		})
	case string(SchemaTypeNumber), string(SchemaTypeInteger):
		minimum, exclusiveMin := s.Lower()
		maximum, exclusiveMax := s.Upper()
		out = NumericSchema(SchemaType(typ), NumericConstraints{
			Format:           s.Format,
			Minimum:          cloneFloat(minimum),
			Maximum:          cloneFloat(maximum),
			ExclusiveMinimum: cloneFloat(exclusiveMin),
			ExclusiveMaximum: cloneFloat(exclusiveMax),
			Default:          cloneValue(s.Default),
		})
	case string(SchemaTypeBoolean):
		out = BooleanSchema(cloneValue(s.Default))
	case string(SchemaTypeNull):
		out = NullSchema()
	default:
		out = OtherSchema(typ)
	}
	return out.WithDescription(s.Description)
}

// properties converts declared object properties. Required comes from the
// parent's required list.
func (t *transform) properties(parent *openapi.Schema, chain *resolve.Chain) RouteParameters {
	if parent.Properties.Len() == 0 {
		return nil
	}
	out := make(RouteParameters, parent.Properties.Len())
	for name, raw := range parent.Properties.All() {
		param := t.schemaParameter(raw, chain)
		param.Required = parent.IsRequired(name)
		out[name] = param
	}
	return out
}

// schemaParameter builds a RouteParameter from a schema. Title comes from the
// resolved schema; description prefers the referencing node.
func (t *transform) schemaParameter(raw *openapi.Schema, chain *resolve.Chain) RouteParameter {
	if chain == nil {
		chain = resolve.NewChain()
	}
	mark := chain.Mark()
	defer chain.Reset(mark)

	var description string
	if raw != nil {
		description = raw.Description
	}
	resolved, ok := t.resolver.Schema(raw, chain)
	if !ok {
		return flatten(NeverSchema(), "", description, false)
	}
	if description == "" {
		description = resolved.Description
	}
	return flatten(t.resolved(resolved, chain), resolved.Title, description, false)
}

// flatten folds schema into a RouteParameter. The parameter keeps a single
// description, matching the flattened encoding.
func flatten(schema RouteParameterSchema, title, description string, required bool) RouteParameter {
	if description == "" {
		description = schema.Description
	}
	schema.Description = ""
	return RouteParameter{
		Title:                title,
		Description:          description,
		Required:             required,
		RouteParameterSchema: schema,
	}
}
