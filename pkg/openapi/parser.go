package openapi

import (
	"context"
	"log/slog"
)

// Parser turns a raw Document into the Spec model consumed by the builder.
type Parser interface {
	Parse(ctx context.Context, doc Document) (*Spec, error)
}

// ParserOptions exposes parse time toggles.
type ParserOptions struct {
	// Validate runs a structural check of the document before decoding.
	Validate bool

	// AllowEmptyPaths accepts documents that declare no paths, such as
	// component-only libraries.
	AllowEmptyPaths bool

	// Logger receives version and validation warnings.
	Logger *slog.Logger
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithValidation toggles structural validation.
func WithValidation(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.Validate = enabled
	}
}

// WithEmptyPaths toggles acceptance of documents without paths.
func WithEmptyPaths(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowEmptyPaths = enabled
	}
}

// WithParserLogger sets the parser logger.
func WithParserLogger(logger *slog.Logger) ParserOption {
	return func(opts *ParserOptions) {
		opts.Logger = logger
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/openapi call this helper.
func NewParserOptions(options ...ParserOption) ParserOptions {
	var cfg ParserOptions
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
