package model

import (
	"log/slog"

	"github.com/goliatone/go-apiref/internal/model"
	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
)

// Builder converts OpenAPI documents into an APIReferenceCore.
type Builder interface {
	Build(spec *pkgopenapi.Spec) (APIReferenceCore, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	methods     []RouteMethod
	logger      *slog.Logger
	maxRefDepth int
}

// WithMethods restricts and orders the methods visited on each path.
func WithMethods(methods ...RouteMethod) BuilderOption {
	return func(opts *builderOptions) {
		opts.methods = append([]RouteMethod(nil), methods...)
	}
}

// WithLogger routes debug records about unresolved references and skipped
// input to logger.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(opts *builderOptions) {
		opts.logger = logger
	}
}

// WithMaxRefDepth bounds reference chains.
func WithMaxRefDepth(depth int) BuilderOption {
	return func(opts *builderOptions) {
		opts.maxRefDepth = depth
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return model.New(model.Options{
		Methods:     cfg.methods,
		Logger:      cfg.logger,
		MaxRefDepth: cfg.maxRefDepth,
	})
}
