package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-apiref/internal/logging"
	internalLoader "github.com/goliatone/go-apiref/internal/openapi/loader"
	internalParser "github.com/goliatone/go-apiref/internal/openapi/parser"
	"github.com/goliatone/go-apiref/pkg/model"
	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/renderers/html"
	jsonrenderer "github.com/goliatone/go-apiref/pkg/renderers/json"
	"github.com/goliatone/go-apiref/pkg/view"
)

const (
	defaultRendererName = "json"
	defaultConcurrency  = 4
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithBuilder injects a custom reference builder.
func WithBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that runs after the reference is
// built and before route subsets are applied.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLogger routes pipeline records to logger. Default parser and builder
// instances share it.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithConcurrency bounds the number of requests BuildAll runs at once.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		o.concurrency = n
	}
}

// WithThemeSelector resolves theme and variant names into renderer theme
// configuration.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks sets partials used when a theme does not override them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = cloneStrings(fallbacks)
	}
}

// Orchestrator coordinates the full pipeline from OpenAPI document to rendered
// output. It applies defaults (JSON and HTML renderers, built-in loader and
// parser) while remaining open to dependency injection.
type Orchestrator struct {
	loader          pkgopenapi.Loader
	parser          pkgopenapi.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	logger          *slog.Logger
	concurrency     int
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		concurrency:     defaultConcurrency,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one document to build and render.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when Document
	// is supplied.
	Source pkgopenapi.Source

	// Document lets callers bypass the loader when they already hold the
	// payload.
	Document *pkgopenapi.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are passed to the theme selector. Ignored when
	// no selector is configured or RenderOptions.Theme is already set.
	ThemeName    string
	ThemeVariant string

	// Subset restricts the routes handed to the renderer.
	Subset render.RouteSubset

	// RenderOptions carries per-request presentation settings.
	RenderOptions render.RenderOptions
}

// Result is the rendered output of one Request.
type Result struct {
	Renderer    string
	ContentType string
	Output      []byte
	Routes      int
}

// Transform loads, parses and builds the document named by req, then runs
// the configured transformer and the request subset. The returned core may
// hold zero routes when the subset excludes everything.
func (o *Orchestrator) Transform(ctx context.Context, req Request) (model.APIReferenceCore, error) {
	if err := o.ready(ctx); err != nil {
		return model.APIReferenceCore{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return model.APIReferenceCore{}, err
	}

	spec, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return model.APIReferenceCore{}, fmt.Errorf("orchestrator: parse document: %w", err)
	}

	core, err := o.builder.Build(spec)
	if err != nil {
		return model.APIReferenceCore{}, fmt.Errorf("orchestrator: build reference: %w", err)
	}

	if err := o.applyTransformer(ctx, &core); err != nil {
		return model.APIReferenceCore{}, err
	}
	if !req.Subset.Empty() {
		before := len(core.Routes)
		render.ApplySubset(&core, req.Subset)
		o.logger.Debug("applied route subset",
			slog.String("source", doc.Location()),
			slog.Int("before", before),
			slog.Int("after", len(core.Routes)))
	}
	return core, nil
}

// Generate executes the whole pipeline and returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Render executes the whole pipeline and reports the renderer used alongside
// the output.
func (o *Orchestrator) Render(ctx context.Context, req Request) (Result, error) {
	core, err := o.Transform(ctx, req)
	if err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return Result{}, err
		}
		opts.Theme = cfg
	}

	ref, err := view.New(&core)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: view: %w", err)
	}

	output, err := renderer.Render(ctx, ref, opts)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("rendered reference",
		slog.String("renderer", renderer.Name()),
		slog.Int("routes", len(core.Routes)),
		slog.Int("bytes", len(output)))

	return Result{
		Renderer:    renderer.Name(),
		ContentType: renderer.ContentType(),
		Output:      output,
		Routes:      len(core.Routes),
	}, nil
}

// BuildAll renders every request concurrently, bounded by WithConcurrency.
// Results keep the order of reqs. The first failure cancels the remaining
// work and is returned.
func (o *Orchestrator) BuildAll(ctx context.Context, reqs []Request) ([]Result, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}

	results := make([]Result, len(reqs))
	group, groupCtx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		group.SetLimit(o.concurrency)
	}
	for i, req := range reqs {
		group.Go(func() error {
			result, err := o.Render(groupCtx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	renderer, err := o.registry.Resolve(name, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, core *model.APIReferenceCore) error {
	if o.transformer == nil || core == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, core); err != nil {
		return fmt.Errorf("orchestrator: transform reference: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	o.logger = logging.OrDiscard(o.logger)

	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions(
			pkgopenapi.WithParserLogger(o.logger),
		))
	}
	if o.builder == nil {
		o.builder = model.NewBuilder(model.WithLogger(o.logger))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(jsonrenderer.New())
		renderer, err := html.New()
		if err == nil {
			err = o.registry.Register(renderer)
		}
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = defaultThemeFallbacks()
	}
}
