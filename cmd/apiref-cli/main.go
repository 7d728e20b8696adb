package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-apiref/internal/logging"
	internalLoader "github.com/goliatone/go-apiref/internal/openapi/loader"
	internalParser "github.com/goliatone/go-apiref/internal/openapi/parser"
	"github.com/goliatone/go-apiref/pkg/model"
	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
	"github.com/goliatone/go-apiref/pkg/orchestrator"
	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/renderers/html"
	jsonrenderer "github.com/goliatone/go-apiref/pkg/renderers/json"
	"github.com/goliatone/go-apiref/pkg/renderers/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("apiref-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "YAML configuration file")
	source := flags.String("source", "", "OpenAPI document path")
	renderer := flags.String("renderer", "json", "renderer to use (json, html, tui)")
	output := flags.String("output", "", "output file (stdout if empty)")
	title := flags.String("title", "", "override the document title")
	validate := flags.Bool("validate", false, "validate the document before building")
	allowEmpty := flags.Bool("allow-empty-paths", false, "accept documents without paths")
	methods := flags.String("methods", "", "comma separated methods visited on each path")
	onlyMethods := flags.String("only-methods", "", "comma separated methods to keep")
	tags := flags.String("tags", "", "comma separated tags to keep")
	paths := flags.String("paths", "", "comma separated path prefixes to keep")
	logLevel := flags.String("log-level", "", "log level (debug, info, warn, error)")
	preset := flags.String("preset", "", "YAML or JSON route preset file")
	themeManifest := flags.String("theme-manifest", "", "go-theme manifest file")
	themeName := flags.String("theme", "", "theme name")
	themeVariant := flags.String("theme-variant", "", "theme variant")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "apiref: %v\n", err)
		return 1
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	override := func(name string, dst *string, value string) {
		if set[name] || *dst == "" {
			*dst = value
		}
	}
	override("source", &cfg.Source, *source)
	override("renderer", &cfg.Renderer, *renderer)
	override("output", &cfg.Output, *output)
	override("title", &cfg.Title, *title)
	override("log-level", &cfg.LogLevel, *logLevel)
	override("preset", &cfg.Preset, *preset)
	override("theme-manifest", &cfg.Theme.Manifest, *themeManifest)
	override("theme", &cfg.Theme.Name, *themeName)
	override("theme-variant", &cfg.Theme.Variant, *themeVariant)
	if set["validate"] {
		cfg.Validate = *validate
	}
	if set["allow-empty-paths"] {
		cfg.AllowEmptyPaths = *allowEmpty
	}
	if set["methods"] {
		cfg.Methods = render.ParseTokenList(*methods)
	}
	if set["only-methods"] {
		cfg.Subset.Methods = render.ParseTokenList(*onlyMethods)
	}
	if set["tags"] {
		cfg.Subset.Tags = render.ParseTokenList(*tags)
	}
	if set["paths"] {
		cfg.Subset.Paths = render.ParseTokenList(*paths)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "apiref: %v\n", err)
		return 2
	}
	logger := logging.NewText(stderr, level)

	if strings.TrimSpace(cfg.Source) == "" {
		fmt.Fprintln(stderr, "apiref: -source is required")
		flags.Usage()
		return 2
	}

	registry, err := newRegistry(stderr)
	if err != nil {
		logger.Error("configure", slog.Any("error", err))
		return 1
	}
	if !registry.Has(cfg.Renderer) {
		fmt.Fprintf(stderr, "apiref: unknown renderer %q (available: %s)\n", cfg.Renderer, registry.Describe())
		flags.Usage()
		return 2
	}

	options, err := buildOptions(cfg, registry, logger)
	if err != nil {
		logger.Error("configure", slog.Any("error", err))
		return 1
	}

	result, err := orchestrator.New(options...).Render(ctx, orchestrator.Request{
		Source:        pkgopenapi.SourceFromFile(cfg.Source),
		Renderer:      cfg.Renderer,
		ThemeName:     cfg.Theme.Name,
		ThemeVariant:  cfg.Theme.Variant,
		Subset:        cfg.Subset.routeSubset(),
		RenderOptions: render.RenderOptions{Title: cfg.Title},
	})
	if err != nil {
		var empty *model.EmptyResultError
		switch {
		case errors.As(err, &empty):
			logger.Error("no routes", slog.String("source", cfg.Source), slog.Int("declared_paths", empty.DeclaredPaths))
		case errors.Is(err, tui.ErrAborted):
			logger.Info("aborted")
			return 130
		default:
			logger.Error("generate", slog.String("source", cfg.Source), slog.Any("error", err))
		}
		return 1
	}

	if cfg.Output == "" {
		if _, err := stdout.Write(result.Output); err != nil {
			logger.Error("write output", slog.Any("error", err))
			return 1
		}
		if len(result.Output) > 0 && result.Output[len(result.Output)-1] != '\n' {
			fmt.Fprintln(stdout)
		}
		return 0
	}
	if err := os.WriteFile(cfg.Output, result.Output, 0o644); err != nil {
		logger.Error("write output", slog.String("path", cfg.Output), slog.Any("error", err))
		return 1
	}
	logger.Info("reference written",
		slog.String("path", cfg.Output),
		slog.String("renderer", result.Renderer),
		slog.Int("routes", result.Routes))
	return 0
}

// newRegistry registers every renderer the CLI offers. The tui renderer
// prompts on stderr so stdout stays free for output.
func newRegistry(stderr io.Writer) (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	tuiRenderer, err := tui.New(tui.WithOutput(stderr))
	if err != nil {
		return nil, err
	}
	return render.NewRegistryWith(jsonrenderer.New(), htmlRenderer, tuiRenderer)
}

func buildOptions(cfg config, registry *render.Registry, logger *slog.Logger) ([]orchestrator.Option, error) {
	var methods []model.RouteMethod
	for _, raw := range cfg.Methods {
		method, err := model.ParseMethod(raw)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}


	loaderOptions := []pkgopenapi.LoaderOption{}
	if cfg.MaxBytes > 0 {
		loaderOptions = append(loaderOptions, pkgopenapi.WithMaxBytes(cfg.MaxBytes))
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithRegistry(registry),
		orchestrator.WithLoader(internalLoader.New(pkgopenapi.NewLoaderOptions(loaderOptions...))),
		orchestrator.WithParser(internalParser.New(pkgopenapi.NewParserOptions(
			pkgopenapi.WithValidation(cfg.Validate),
			pkgopenapi.WithEmptyPaths(cfg.AllowEmptyPaths),
			pkgopenapi.WithParserLogger(logger),
		))),
		orchestrator.WithBuilder(model.NewBuilder(
			model.WithMethods(methods...),
			model.WithLogger(logger),
		)),
	}

	if cfg.Preset != "" {
		data, err := os.ReadFile(cfg.Preset)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		transformer, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(transformer))
	}

	if cfg.Theme.Manifest != "" {
		manifest, err := loadManifest(cfg.Theme.Manifest)
		if err != nil {
			return nil, err
		}
		selector, err := orchestrator.NewManifestSelector(manifest.Name, "", manifest)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithThemeSelector(selector))
	}
	return options, nil
}
