// Package apiref turns OpenAPI 3.1 documents into a normalized API reference
// and renders it as JSON, HTML or an interactive terminal browser.
//
// The root package re-exports the common entry points; the pipeline itself
// lives in pkg/orchestrator.
package apiref

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-apiref/pkg/model"
	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
	"github.com/goliatone/go-apiref/pkg/orchestrator"
	"github.com/goliatone/go-apiref/pkg/render"
)

// RenderOptions describes per-request presentation settings.
type RenderOptions = render.RenderOptions

// RouteSubset aliases render.RouteSubset for callers rendering part of a
// reference.
type RouteSubset = render.RouteSubset

// APIReferenceCore is the normalized document.
type APIReferenceCore = model.APIReferenceCore

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Build loads and normalizes the document at source.
func Build(ctx context.Context, source pkgopenapi.Source, options ...orchestrator.Option) (APIReferenceCore, error) {
	return orchestrator.New(options...).Transform(ctx, orchestrator.Request{Source: source})
}

// BuildFromBytes normalizes an in-memory JSON or YAML document.
func BuildFromBytes(ctx context.Context, raw []byte, options ...orchestrator.Option) (APIReferenceCore, error) {
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromBytes("memory"), raw)
	if err != nil {
		return APIReferenceCore{}, err
	}
	return orchestrator.New(options...).Transform(ctx, orchestrator.Request{Document: &doc})
}

// Generate loads the OpenAPI source and renders it with the named renderer.
// An empty name selects the orchestrator default.
func Generate(ctx context.Context, source pkgopenapi.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateHTML renders the document at source as a single HTML page.
func GenerateHTML(ctx context.Context, source pkgopenapi.Source, options ...orchestrator.Option) ([]byte, error) {
	return Generate(ctx, source, "html", options...)
}

// GenerateFromDocument renders a pre-loaded document, bypassing the loader
// stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc pkgopenapi.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests builds a selector over manifests. An empty defaultTheme
// selects the first manifest.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (orchestrator.Option, error) {
	selector, err := orchestrator.NewManifestSelector(defaultTheme, defaultVariant, manifests...)
	if err != nil {
		return nil, err
	}
	return orchestrator.WithThemeSelector(selector), nil
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
