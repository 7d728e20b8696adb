// Package view is the read side handed to renderers. A Reference wraps one
// APIReferenceCore and is passed explicitly to whatever renders it; there is
// no package level state.
package view

import (
	"errors"
	"iter"

	"github.com/goliatone/go-apiref/pkg/model"
)

// ErrNilCore reports a Reference built without a core.
var ErrNilCore = errors.New("view: core is nil")

// Reference exposes read projections over a normalized API reference.
type Reference struct {
	core   *model.APIReferenceCore
	byPath map[string][]int
	paths  []string
}

// New indexes core. The core must not be modified afterwards.
func New(core *model.APIReferenceCore) (*Reference, error) {
	if core == nil {
		return nil, ErrNilCore
	}
	ref := &Reference{core: core, byPath: make(map[string][]int)}
	for i, route := range core.Routes {
		if _, seen := ref.byPath[route.Path]; !seen {
			ref.paths = append(ref.paths, route.Path)
		}
		ref.byPath[route.Path] = append(ref.byPath[route.Path], i)
	}
	return ref, nil
}

// MustNew panics when New fails.
func MustNew(core *model.APIReferenceCore) *Reference {
	ref, err := New(core)
	if err != nil {
		panic(err)
	}
	return ref
}

// Core returns the wrapped value.
func (r *Reference) Core() *model.APIReferenceCore { return r.core }

// Title returns the document title.
func (r *Reference) Title() string { return r.core.Title }

// Version returns the document version.
func (r *Reference) Version() string { return r.core.Version }

// DomainURLs returns the document level server URLs.
func (r *Reference) DomainURLs() []string {
	return append([]string(nil), r.core.DomainURLs...)
}

// Len returns the number of routes.
func (r *Reference) Len() int { return len(r.core.Routes) }

// Paths returns distinct paths in route order.
func (r *Reference) Paths() []string {
	return append([]string(nil), r.paths...)
}

// Routes iterates routes keyed by path, in route order.
func (r *Reference) Routes() iter.Seq2[string, Route] {
	return func(yield func(string, Route) bool) {
		for i := range r.core.Routes {
			route := r.route(i)
			if !yield(route.Path(), route) {
				return
			}
		}
	}
}

// At returns the route at index i.
func (r *Reference) At(i int) (Route, bool) {
	if i < 0 || i >= len(r.core.Routes) {
		return Route{}, false
	}
	return r.route(i), true
}

// ByPath returns every route declared on path.
func (r *Reference) ByPath(path string) []Route {
	indexes := r.byPath[path]
	if len(indexes) == 0 {
		return nil
	}
	out := make([]Route, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, r.route(i))
	}
	return out
}

// Find returns the route for method and path.
func (r *Reference) Find(method model.RouteMethod, path string) (Route, bool) {
	for _, route := range r.ByPath(path) {
		if route.Method() == method {
			return route, true
		}
	}
	return Route{}, false
}

func (r *Reference) route(i int) Route {
	return Route{ref: r, index: i}
}

// Route is a read projection of one normalized route.
type Route struct {
	ref   *Reference
	index int
}

func (r Route) raw() *model.Route { return &r.ref.core.Routes[r.index] }

// Index returns the position of the route in the reference.
func (r Route) Index() int { return r.index }

// ID returns the operation id, which may be empty.
func (r Route) ID() string { return r.raw().ID }

// Title returns the summary, or the path when no summary was declared.
func (r Route) Title() string { return r.raw().Title }

// Path returns the templated path.
func (r Route) Path() string { return r.raw().Path }

// Description returns the verbatim description.
func (r Route) Description() string { return r.raw().Description }

// Method returns the HTTP method.
func (r Route) Method() model.RouteMethod { return r.raw().Method }

// Deprecated reports whether the operation is deprecated.
func (r Route) Deprecated() bool { return r.raw().Deprecated }

// Tags returns the tag paths.
func (r Route) Tags() [][]string { return r.raw().Tags }

// Model returns a copy of the underlying route.
func (r Route) Model() model.Route { return *r.raw() }

// DomainURLs returns the route servers, falling back to the document's.
func (r Route) DomainURLs() []string {
	if urls := r.raw().DomainURLs; len(urls) > 0 {
		return append([]string(nil), urls...)
	}
	return r.ref.DomainURLs()
}

// Authorization returns the effective requirements: the route override when
// declared, otherwise the document's. Nil means no authorization.
func (r Route) Authorization() *model.Authorization {
	if auth := r.raw().Authorization; auth != nil {
		if len(auth.Requirements) == 0 {
			return nil
		}
		return auth
	}
	return r.ref.core.Authorization
}
