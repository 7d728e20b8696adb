package reference

import (
	"net/http"

	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
	"github.com/goliatone/go-apiref/pkg/orchestrator"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	FormatParam     string
	TagsParam       string
	MethodsParam    string
	PathsParam      string
	VariantParam    string
	DefaultRenderer string
	Renderers       []string
	Title           string
	Guard           GuardFunc

	Source       pkgopenapi.Source
	Document     *pkgopenapi.Document
	Orchestrator *orchestrator.Orchestrator
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/docs",
		FormatParam:     "format",
		TagsParam:       "tags",
		MethodsParam:    "methods",
		PathsParam:      "paths",
		VariantParam:    "variant",
		DefaultRenderer: "html",
		Renderers:       []string{"html", "json"},
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	defaults := DefaultOptions()
	if opts.RoutePath == "" {
		opts.RoutePath = defaults.RoutePath
	}
	if opts.FormatParam == "" {
		opts.FormatParam = defaults.FormatParam
	}
	if opts.TagsParam == "" {
		opts.TagsParam = defaults.TagsParam
	}
	if opts.MethodsParam == "" {
		opts.MethodsParam = defaults.MethodsParam
	}
	if opts.PathsParam == "" {
		opts.PathsParam = defaults.PathsParam
	}
	if opts.VariantParam == "" {
		opts.VariantParam = defaults.VariantParam
	}
	if opts.DefaultRenderer == "" {
		opts.DefaultRenderer = defaults.DefaultRenderer
	}
	if len(opts.Renderers) == 0 {
		opts.Renderers = defaults.Renderers
	}
	opts.Renderers = append([]string{}, opts.Renderers...)
	if opts.Orchestrator == nil {
		opts.Orchestrator = orchestrator.New()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithFormatParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormatParam = name
	}
}

func WithDefaultRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultRenderer = name
	}
}

// WithRenderers limits the renderers a request may select.
func WithRenderers(names ...string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderers = append([]string{}, names...)
	}
}

func WithTitle(title string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Title = title
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithSource serves the document at src. It is loaded on every request so
// edits show up without a restart.
func WithSource(src pkgopenapi.Source) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Source = src
	}
}

// WithDocument serves a pre-loaded document.
func WithDocument(doc pkgopenapi.Document) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Document = &doc
	}
}

func WithOrchestrator(orch *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Orchestrator = orch
	}
}
