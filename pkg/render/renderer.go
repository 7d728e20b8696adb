package render

import (
	"context"

	"github.com/goliatone/go-apiref/pkg/view"
)

// Renderer converts a normalized API reference into a byte representation
// (JSON, HTML, terminal output).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, ref *view.Reference, options RenderOptions) ([]byte, error)
}
