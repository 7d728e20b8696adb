package model

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-apiref/internal/resolve"
	"github.com/goliatone/go-apiref/pkg/openapi"
)

const (
	locationPath  = "path"
	locationQuery = "query"
)

type parameterKey struct {
	name string
	in   string
}

// parameters splits the effective parameters of op into path and query
// groups. Header and cookie parameters are not part of the route model.
func (t *transform) parameters(item *openapi.PathItem, op *openapi.Operation) (RouteParameters, RouteParameters) {
	var pathParams, queryParams RouteParameters
	for _, param := range t.mergeParameters(item.Parameters, op.Parameters) {
		switch strings.ToLower(param.In) {
		case locationPath:
			if pathParams == nil {
				pathParams = make(RouteParameters)
			}
			pathParams[param.Name] = t.parameter(param)
		case locationQuery:
			if queryParams == nil {
				queryParams = make(RouteParameters)
			}
			queryParams[param.Name] = t.parameter(param)
		default:
			t.logger.Debug("skipping parameter",
				slog.String("name", param.Name),
				slog.String("in", param.In))
		}
	}
	return pathParams, queryParams
}

// mergeParameters resolves path level and operation level parameters. An
// operation parameter replaces a path level one with the same name and
// location. Unresolvable entries are dropped.
func (t *transform) mergeParameters(shared, own []*openapi.Parameter) []*openapi.Parameter {
	merged := make([]*openapi.Parameter, 0, len(shared)+len(own))
	index := make(map[parameterKey]int, len(shared)+len(own))
	add := func(raw *openapi.Parameter) {
		param, ok := t.resolver.Parameter(raw, nil)
		if !ok {
			return
		}
		key := parameterKey{name: param.Name, in: strings.ToLower(param.In)}
		if pos, seen := index[key]; seen {
			merged[pos] = param
			return
		}
		index[key] = len(merged)
		merged = append(merged, param)
	}
	for _, raw := range shared {
		add(raw)
	}
	for _, raw := range own {
		add(raw)
	}
	return merged
}

// parameter converts a resolved Parameter Object. Required comes from the
// declaration itself; description falls back to the schema's.
func (t *transform) parameter(param *openapi.Parameter) RouteParameter {
	raw := param.Schema
	if raw == nil {
		raw = firstSchema(param.Content)
	}

	chain := resolve.NewChain()
	resolved, ok := t.resolver.Schema(raw, chain)
	if !ok {
		return flatten(NeverSchema(), "", param.Description, param.Required)
	}
	description := param.Description
	if description == "" {
		description = resolved.Description
	}
	return flatten(t.resolved(resolved, chain), resolved.Title, description, param.Required)
}

// header converts a response header the same way as a parameter.
func (t *transform) header(raw *openapi.Header) (RouteParameter, bool) {
	header, ok := t.resolver.Header(raw, nil)
	if !ok {
		return RouteParameter{}, false
	}

	chain := resolve.NewChain()
	resolved, ok := t.resolver.Schema(header.Schema, chain)
	if !ok {
		return flatten(NeverSchema(), "", header.Description, header.Required), true
	}
	description := header.Description
	if description == "" {
		description = resolved.Description
	}
	return flatten(t.resolved(resolved, chain), resolved.Title, description, header.Required), true
}

// headers converts response headers. Content-Type is described by the
// response itself and is skipped.
func (t *transform) headers(headers *openapi.Map[*openapi.Header]) RouteParameters {
	if headers.Len() == 0 {
		return nil
	}
	out := make(RouteParameters, headers.Len())
	for name, raw := range headers.All() {
		if strings.EqualFold(name, "content-type") {
			continue
		}
		param, ok := t.header(raw)
		if !ok {
			continue
		}
		out[name] = param
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func firstSchema(content *openapi.Map[*openapi.MediaType]) *openapi.Schema {
	_, media, ok := content.First()
	if !ok || media == nil {
		return nil
	}
	return media.Schema
}
