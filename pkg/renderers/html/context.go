package html

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-apiref/pkg/model"
	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/view"
)

type pageContext struct {
	Title        string
	Version      string
	DomainURLs   []string
	Auth         []string
	AuthOptional bool
	Sections     []section
	Labels       map[string]string
	Theme        rendererTheme
	InlineCSS    string
}

type section struct {
	Name   string
	Path   string
	Depth  int
	Anchor string
	Routes []routeContext
}

type routeContext struct {
	Anchor       string
	ID           string
	Method       string
	Path         string
	Title        string
	Description  string
	Deprecated   bool
	DomainURLs   []string
	Auth         []string
	AuthNone     bool
	AuthOptional bool
	PathParams   []fieldRow
	QueryParams  []fieldRow
	ContentType  string
	Body         *bodyContext
	Responses    []responseContext
}

type bodyContext struct {
	Type        string
	Description string
	Rows        []fieldRow
}

type responseContext struct {
	Status      int
	Description string
	ContentType string
	Body        *bodyContext
	Headers     []fieldRow
}

type fieldRow struct {
	Name        string
	Depth       int
	Type        string
	Required    bool
	Description string
	Constraints string
}

func newPageContext(ref *view.Reference, opts render.RenderOptions, inlineCSS string) pageContext {
	page := pageContext{
		Title:      opts.DocumentTitle(ref.Title()),
		Version:    ref.Version(),
		DomainURLs: ref.DomainURLs(),
		Labels:     render.Labels(opts),
		Theme:      buildThemeContext(opts.Theme),
		InlineCSS:  inlineCSS,
	}
	if auth := ref.Core().Authorization; auth != nil {
		page.Auth = view.AuthLines(auth)
		page.AuthOptional = auth.Optional
	}

	groups, untagged := ref.Groups()
	for _, group := range groups {
		group.Walk(func(g *view.Group, depth int) {
			page.Sections = append(page.Sections, newSection(g.Name, g.Path, depth, g.Routes))
		})
	}
	if len(untagged) > 0 {
		page.Sections = append(page.Sections, newSection(page.Labels["untagged"], nil, 0, untagged))
	}
	return page
}

func newSection(name string, path []string, depth int, routes []view.Route) section {
	anchor := "untagged"
	if len(path) > 0 {
		anchor = "tag-" + slug(strings.Join(path, "-"))
	}
	out := section{
		Name:   name,
		Path:   strings.Join(path, " > "),
		Depth:  depth,
		Anchor: anchor,
	}
	for _, route := range routes {
		out.Routes = append(out.Routes, newRouteContext(route, anchor))
	}
	return out
}

func newRouteContext(route view.Route, sectionAnchor string) routeContext {
	raw := route.Model()
	out := routeContext{
		Anchor:      fmt.Sprintf("%s-%s-%d", sectionAnchor, route.Method(), route.Index()),
		ID:          route.ID(),
		Method:      string(route.Method()),
		Path:        route.Path(),
		Title:       route.Title(),
		Description: richText(route.Description()),
		Deprecated:  route.Deprecated(),
		DomainURLs:  raw.DomainURLs,
		PathParams:  rows(view.Fields(raw.PathParams)),
		QueryParams: rows(view.Fields(raw.QueryParams)),
		ContentType: string(raw.ContentType),
		Body:        bodyOf(raw.Body),
	}
	if raw.Authorization != nil {
		out.Auth = view.AuthLines(raw.Authorization)
		out.AuthNone = len(raw.Authorization.Requirements) == 0
		out.AuthOptional = raw.Authorization.Optional
	}

	for _, resp := range route.Responses() {
		out.Responses = append(out.Responses, responseContext{
			Status:      resp.Status,
			Description: richText(resp.Description),
			ContentType: string(resp.ContentType),
			Body:        bodyOf(resp.Body),
			Headers:     rows(view.Fields(resp.Headers)),
		})
	}
	return out
}

func bodyOf(schema *model.RouteParameterSchema) *bodyContext {
	if schema == nil {
		return nil
	}
	return &bodyContext{
		Type:        view.TypeLabel(*schema),
		Description: richText(schema.Description),
		Rows:        rows(view.SchemaFields(schema)),
	}
}

func rows(fields []view.Field) []fieldRow {
	if len(fields) == 0 {
		return nil
	}
	out := make([]fieldRow, 0, len(fields))
	for _, field := range fields {
		description := field.Description
		if description == "" {
			description = field.Title
		}
		out = append(out, fieldRow{
			Name:        field.Name,
			Depth:       field.Depth,
			Type:        view.TypeLabel(field.Schema),
			Required:    field.Required,
			Description: richText(description),
			Constraints: strings.Join(view.Constraints(field.Schema), "; "),
		})
	}
	return out
}

func slug(raw string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
