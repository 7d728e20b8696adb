package model

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-apiref/pkg/openapi"
)

// TagSeparator splits a raw tag into a hierarchy.
const TagSeparator = " > "

// Builder converts OpenAPI documents into APIReferenceCore values. A Builder
// holds no per-document state and may be shared across goroutines.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if len(options.Methods) > 0 {
		opts.Methods = dedupeMethods(options.Methods)
	}
	if options.Logger != nil {
		opts.Logger = options.Logger
	}
	if options.MaxRefDepth > 0 {
		opts.MaxRefDepth = options.MaxRefDepth
	}
	return &Builder{opts: opts}
}

// Methods returns the configured visiting order.
func (b *Builder) Methods() []RouteMethod {
	return append([]RouteMethod(nil), b.opts.Methods...)
}

// Build walks paths in declaration order and each configured method in
// order, producing one Route per declared operation. The spec is never
// modified. A document without routes yields *EmptyResultError.
func (b *Builder) Build(spec *openapi.Spec) (APIReferenceCore, error) {
	if spec == nil {
		return APIReferenceCore{}, ErrNilSpec
	}
	t := newTransform(spec, b.opts)

	core := APIReferenceCore{
		Title:      spec.Info.Title,
		Version:    spec.Info.Version,
		DomainURLs: serverURLs(spec.Servers),
	}
	if len(spec.Security) > 0 {
		core.Authorization = t.authorization(spec.Security)
	}

	declared := 0
	if spec.Paths != nil {
		declared = spec.Paths.Len()
		core.Routes = t.routes(spec.Paths, b.opts.Methods)
	}

	if len(core.Routes) == 0 {
		return APIReferenceCore{}, &EmptyResultError{
			DeclaredPaths: declared,
			Methods:       b.Methods(),
		}
	}
	compact(&core)
	return core, nil
}

// routes scopes the transform logger to each route while it is built, so
// every record names the path and method it came from.
func (t *transform) routes(paths *openapi.Paths, methods []RouteMethod) []Route {
	var routes []Route
	base := t.logger
	defer func() { t.logger = base }()
	for path, raw := range paths.All() {
		item, ok := t.resolver.PathItem(raw, nil)
		if !ok {
			t.logger.Debug("skipping path", slog.String("path", path))
			continue
		}
		for _, method := range methods {
			op := item.Operation(string(method))
			if op == nil {
				continue
			}
			t.logger = base.With(slog.String("path", path), slog.String("method", string(method)))
			routes = append(routes, t.route(path, method, item, op))
			t.logger = base
		}
	}
	return routes
}

func (t *transform) route(path string, method RouteMethod, item *openapi.PathItem, op *openapi.Operation) Route {
	title := op.Summary
	if title == "" {
		title = path
	}
	route := Route{
		ID:          op.OperationID,
		DomainURLs:  serverURLs(op.Servers),
		Path:        path,
		Title:       title,
		Description: op.Description,
		Tags:        SplitTags(op.Tags),
		Method:      method,
		Deprecated:  op.Deprecated,
		Responses:   t.responses(op.Responses),
	}
	if route.DomainURLs == nil {
		route.DomainURLs = serverURLs(item.Servers)
	}
	if op.Security != nil {
		route.Authorization = t.authorization(op.Security.Requirements)
	}
	route.PathParams, route.QueryParams = t.parameters(item, op)
	route.ContentType, route.Body = t.requestBody(op.RequestBody)
	return route
}

// SplitTags turns raw tags into tag paths. "Users > Admin" becomes
// ["Users", "Admin"]; empty tags are dropped.
func SplitTags(tags []string) [][]string {
	out := make([][]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		out = append(out, strings.Split(tag, TagSeparator))
	}
	return out
}

func serverURLs(servers []openapi.Server) []string {
	var urls []string
	for _, server := range servers {
		if server.URL == "" {
			continue
		}
		urls = append(urls, server.URL)
	}
	return urls
}

func dedupeMethods(methods []RouteMethod) []RouteMethod {
	seen := make(map[RouteMethod]struct{}, len(methods))
	out := make([]RouteMethod, 0, len(methods))
	for _, method := range methods {
		method = RouteMethod(strings.ToLower(string(method)))
		if _, ok := seen[method]; ok {
			continue
		}
		seen[method] = struct{}{}
		out = append(out, method)
	}
	return out
}
