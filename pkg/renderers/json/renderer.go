// Package json renders the normalized reference as JSON, the canonical
// serialization of APIReferenceCore.
package json

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/view"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent sets the indentation used for each level. An empty indent
// produces compact output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New returns a renderer that indents with two spaces by default.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "json" }

// ContentType reports the output media type.
func (r *Renderer) ContentType() string { return "application/json" }

// Render encodes the reference. A title override replaces the encoded title;
// the reference itself is not modified.
func (r *Renderer) Render(ctx context.Context, ref *view.Reference, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, render.ErrNilReference
	}

	core := *ref.Core()
	core.Title = opts.DocumentTitle(core.Title)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(core); err != nil {
		return nil, fmt.Errorf("json: encode reference: %w", err)
	}
	return buf.Bytes(), nil
}
