package model

import (
	"log/slog"

	"github.com/goliatone/go-apiref/internal/logging"
	"github.com/goliatone/go-apiref/internal/resolve"
)

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	// Methods lists the operations visited on each path, in order.
	Methods []RouteMethod

	// Logger receives debug records for recoverable problems such as
	// unresolved references.
	Logger *slog.Logger

	// MaxRefDepth bounds reference chains. Zero keeps resolve.DefaultMaxDepth.
	MaxRefDepth int
}

func defaultOptions() Options {
	return Options{
		Methods:     append([]RouteMethod(nil), DefaultMethods...),
		Logger:      logging.Discard(),
		MaxRefDepth: resolve.DefaultMaxDepth,
	}
}
