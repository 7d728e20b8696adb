package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-apiref/pkg/model"
)

// Transformer mutates an APIReferenceCore after it is built. Implementations
// can retitle routes, hide them or perform arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, core *model.APIReferenceCore) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, core *model.APIReferenceCore) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, core *model.APIReferenceCore) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, core)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, core *model.APIReferenceCore) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, core); err != nil {
				return err
			}
		}
		return nil
	})
}

// PresetTransformer applies declarative overrides loaded from a YAML or JSON
// document. Routes are addressed by operation id or by "METHOD /path":
//
//	title: Public API
//	routes:
//	  listPets:
//	    title: List every pet
//	  "DELETE /pets/{id}":
//	    hidden: true
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title   string                `yaml:"title"`
	Version string                `yaml:"version"`
	Routes  map[string]routePatch `yaml:"routes"`
}

type routePatch struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Deprecated  *bool    `yaml:"deprecated"`
	Hidden      bool     `yaml:"hidden"`
	Tags        []string `yaml:"tags"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches. A patch that matches no route is an error.
func (t *PresetTransformer) Transform(ctx context.Context, core *model.APIReferenceCore) error {
	if core == nil {
		return errors.New("preset transformer: reference is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.document.Title != "" {
		core.Title = t.document.Title
	}
	if t.document.Version != "" {
		core.Version = t.document.Version
	}
	if len(t.document.Routes) == 0 {
		return nil
	}

	matched := make(map[string]bool, len(t.document.Routes))
	hidden := make(map[int]bool)
	for i := range core.Routes {
		route := &core.Routes[i]
		for _, key := range routeKeys(*route) {
			patch, ok := t.document.Routes[key]
			if !ok {
				continue
			}
			matched[key] = true
			if patch.Hidden {
				hidden[i] = true
			}
			applyRoutePatch(route, patch)
		}
	}
	for key := range t.document.Routes {
		if !matched[key] {
			return fmt.Errorf("preset transformer: route %q not found", key)
		}
	}

	if len(hidden) > 0 {
		kept := core.Routes[:0]
		for i, route := range core.Routes {
			if !hidden[i] {
				kept = append(kept, route)
			}
		}
		core.Routes = kept
	}
	return nil
}

func routeKeys(route model.Route) []string {
	keys := []string{strings.ToUpper(string(route.Method)) + " " + route.Path}
	if route.ID != "" {
		keys = append(keys, route.ID)
	}
	return keys
}

func applyRoutePatch(route *model.Route, patch routePatch) {
	if patch.Title != "" {
		route.Title = patch.Title
	}
	if patch.Description != "" {
		route.Description = patch.Description
	}
	if patch.Deprecated != nil {
		route.Deprecated = *patch.Deprecated
	}
	if len(patch.Tags) > 0 {
		route.Tags = model.SplitTags(patch.Tags)
	}
}
