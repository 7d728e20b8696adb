package reference

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/goliatone/go-apiref/pkg/model"
	"github.com/goliatone/go-apiref/pkg/orchestrator"
	"github.com/goliatone/go-apiref/pkg/render"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value. Defaults are re-applied.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeError(w, err, http.StatusForbidden)
				return
			}
		}

		query := r.URL.Query()
		renderer := strings.ToLower(strings.TrimSpace(query.Get(opts.FormatParam)))
		if renderer == "" {
			renderer = opts.DefaultRenderer
		}
		if !slices.Contains(opts.Renderers, renderer) {
			http.Error(w, "unsupported format", http.StatusBadRequest)
			return
		}
		if opts.Source == nil && opts.Document == nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}

		result, err := opts.Orchestrator.Render(r.Context(), orchestrator.Request{
			Source:       opts.Source,
			Document:     opts.Document,
			Renderer:     renderer,
			ThemeVariant: query.Get(opts.VariantParam),
			Subset: render.RouteSubset{
				Tags:         render.ParseTokenList(query.Get(opts.TagsParam)),
				Methods:      render.ParseTokenList(query.Get(opts.MethodsParam)),
				PathPrefixes: render.ParseTokenList(query.Get(opts.PathsParam)),
			},
			RenderOptions: render.RenderOptions{Title: opts.Title},
		})
		if err != nil {
			writeError(w, classify(err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", result.ContentType)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(result.Output)
	})
}

// classify maps pipeline errors onto HTTP statuses.
func classify(err error) error {
	switch {
	case errors.Is(err, model.ErrEmptyResult):
		return StatusError{Code: http.StatusNotFound, Err: err}
	case errors.Is(err, orchestrator.ErrUnknownTheme), errors.Is(err, orchestrator.ErrUnknownVariant):
		return StatusError{Code: http.StatusBadRequest, Err: err}
	}
	return err
}

func writeError(w http.ResponseWriter, err error, fallback int) {
	if w == nil {
		return
	}
	code := fallback
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = fallback
		}
	}
	http.Error(w, http.StatusText(code), code)
}
