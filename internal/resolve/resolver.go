// Package resolve follows local "#/components/<kind>/<name>" references with a
// cycle guard. Unresolvable references yield "not found" and never an error.
package resolve

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-apiref/pkg/openapi"
)

// DefaultMaxDepth caps how many references one chain may follow.
const DefaultMaxDepth = 64

// Kind names a components section that references may point into.
type Kind string

const (
	KindSchema         Kind = "schemas"
	KindParameter      Kind = "parameters"
	KindRequestBody    Kind = "requestBodies"
	KindResponse       Kind = "responses"
	KindHeader         Kind = "headers"
	KindSecurityScheme Kind = "securitySchemes"
	KindPathItem       Kind = "pathItems"
)

// Reason explains why a reference did not resolve.
type Reason string

const (
	ReasonMissing Reason = "missing"
	ReasonCycle   Reason = "cycle"
	ReasonDepth   Reason = "depth"
	ReasonForeign Reason = "foreign"
)

// Miss describes one unresolved reference.
type Miss struct {
	Ref    string
	Kind   Kind
	Reason Reason
}

// Resolver follows local component references inside a single Spec. It never
// mutates the Spec and is safe for concurrent use; per-call state lives in the
// Chain.
type Resolver struct {
	spec     *openapi.Spec
	maxDepth int
	observe  func(Miss)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth overrides DefaultMaxDepth. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithObserver registers a hook called for every unresolved reference.
func WithObserver(fn func(Miss)) Option {
	return func(r *Resolver) {
		r.observe = fn
	}
}

// New binds a Resolver to spec.
func New(spec *openapi.Spec, opts ...Option) *Resolver {
	r := &Resolver{spec: spec, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Schema resolves a schema or schema reference. Keys entered while following
// the chain stay on chain; callers sharing a chain across a subtree Reset it.
func (r *Resolver) Schema(schema *openapi.Schema, chain *Chain) (*openapi.Schema, bool) {
	return follow(r, KindSchema, schema, chain,
		func(s *openapi.Schema) string { return s.Ref },
		func(c *openapi.Components) *openapi.Map[*openapi.Schema] { return c.Schemas })
}

// Parameter resolves a parameter or parameter reference.
func (r *Resolver) Parameter(param *openapi.Parameter, chain *Chain) (*openapi.Parameter, bool) {
	return follow(r, KindParameter, param, chain,
		func(p *openapi.Parameter) string { return p.Ref },
		func(c *openapi.Components) *openapi.Map[*openapi.Parameter] { return c.Parameters })
}

// RequestBody resolves a request body or request body reference.
func (r *Resolver) RequestBody(body *openapi.RequestBody, chain *Chain) (*openapi.RequestBody, bool) {
	return follow(r, KindRequestBody, body, chain,
		func(b *openapi.RequestBody) string { return b.Ref },
		func(c *openapi.Components) *openapi.Map[*openapi.RequestBody] { return c.RequestBodies })
}

// Response resolves a response or response reference.
func (r *Resolver) Response(resp *openapi.Response, chain *Chain) (*openapi.Response, bool) {
	return follow(r, KindResponse, resp, chain,
		func(v *openapi.Response) string { return v.Ref },
		func(c *openapi.Components) *openapi.Map[*openapi.Response] { return c.Responses })
}

// Header resolves a header or header reference.
func (r *Resolver) Header(header *openapi.Header, chain *Chain) (*openapi.Header, bool) {
	return follow(r, KindHeader, header, chain,
		func(h *openapi.Header) string { return h.Ref },
		func(c *openapi.Components) *openapi.Map[*openapi.Header] { return c.Headers })
}

// SecurityScheme resolves a security scheme or security scheme reference.
func (r *Resolver) SecurityScheme(scheme *openapi.SecurityScheme, chain *Chain) (*openapi.SecurityScheme, bool) {
	return follow(r, KindSecurityScheme, scheme, chain,
		func(s *openapi.SecurityScheme) string { return s.Ref },
		func(c *openapi.Components) *openapi.Map[*openapi.SecurityScheme] { return c.SecuritySchemes })
}

// SecuritySchemeByName looks up a scheme named in a security requirement.
func (r *Resolver) SecuritySchemeByName(name string) (*openapi.SecurityScheme, bool) {
	return r.SecurityScheme(&openapi.SecurityScheme{Ref: Ref(KindSecurityScheme, name)}, nil)
}

// PathItem resolves a path item or a reference into components.pathItems.
func (r *Resolver) PathItem(item *openapi.PathItem, chain *Chain) (*openapi.PathItem, bool) {
	return follow(r, KindPathItem, item, chain,
		func(p *openapi.PathItem) string { return p.Ref },
		func(c *openapi.Components) *openapi.Map[*openapi.PathItem] { return c.PathItems })
}

// Ref builds the local reference string for name in kind, escaping it as a
// JSON pointer token.
func Ref(kind Kind, name string) string {
	name = strings.ReplaceAll(name, "~", "~0")
	name = strings.ReplaceAll(name, "/", "~1")
	return "#/components/" + string(kind) + "/" + name
}

// Name extracts the component name from a local reference of kind.
func Name(kind Kind, ref string) (string, bool) {
	prefix := "#/components/" + string(kind) + "/"
	token, ok := strings.CutPrefix(strings.TrimSpace(ref), prefix)
	if !ok || token == "" || strings.Contains(token, "/") {
		return "", false
	}
	if decoded, err := url.PathUnescape(token); err == nil {
		token = decoded
	}
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token, true
}

func follow[T comparable](r *Resolver, kind Kind, node T, chain *Chain, refOf func(T) string, table func(*openapi.Components) *openapi.Map[T]) (T, bool) {
	var zero T
	if r == nil || node == zero {
		return zero, false
	}
	if chain == nil {
		chain = NewChain()
	}
	for {
		ref := strings.TrimSpace(refOf(node))
		if ref == "" {
			return node, true
		}
		name, ok := Name(kind, ref)
		if !ok {
			r.miss(ref, kind, ReasonForeign)
			return zero, false
		}
		key := string(kind) + "/" + name
		if chain.Contains(key) {
			r.miss(ref, kind, ReasonCycle)
			return zero, false
		}
		if chain.Depth() >= r.maxDepth {
			r.miss(ref, kind, ReasonDepth)
			return zero, false
		}
		target, ok := lookupIn(r.spec, table, name)
		if !ok || target == zero {
			r.miss(ref, kind, ReasonMissing)
			return zero, false
		}
		chain.Enter(key)
		node = target
	}
}

func lookupIn[T any](spec *openapi.Spec, table func(*openapi.Components) *openapi.Map[T], name string) (T, bool) {
	var zero T
	if spec == nil || spec.Components == nil {
		return zero, false
	}
	return table(spec.Components).Get(name)
}

func (r *Resolver) miss(ref string, kind Kind, reason Reason) {
	if r.observe != nil {
		r.observe(Miss{Ref: ref, Kind: kind, Reason: reason})
	}
}
