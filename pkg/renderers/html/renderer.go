// Package html renders the API reference as a standalone HTML page using
// pongo2 templates. Descriptions are sanitized with bluemonday and a go-theme
// selection contributes CSS variables, a stylesheet and template overrides.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-apiref/pkg/render"
	rendertemplate "github.com/goliatone/go-apiref/pkg/render/template"
	"github.com/goliatone/go-apiref/pkg/render/template/pongo"
	"github.com/goliatone/go-apiref/pkg/view"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// reference.html or the template named by the theme partial.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStyles controls whether the embedded stylesheet is inlined into
// the page. It is on by default.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	inlineStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), inlineStyles: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, inlineStyles: cfg.inlineStyles}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces one HTML page for the whole reference.
func (r *Renderer) Render(ctx context.Context, ref *view.Reference, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, render.ErrNilReference
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	var css string
	if r.inlineStyles {
		css = defaultStylesheet()
	}
	page := newPageContext(ref, opts, css)

	result, err := r.templates.RenderTemplate(templateName(opts.Theme), map[string]any{
		"page": page,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
