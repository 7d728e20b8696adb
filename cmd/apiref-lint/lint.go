package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-apiref/internal/openapi/parser"
	"github.com/goliatone/go-apiref/pkg/model"
	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
)

type violation struct {
	file     string
	location string
	message  string
}

type linter struct {
	strict      bool
	allowCycles bool
}

// lintFile builds the reference for path and turns every record the builder
// logs about degraded input into a violation.
func (l linter) lintFile(ctx context.Context, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	recorder := &recordingHandler{}
	logger := slog.New(recorder)

	spec, err := parser.New(pkgopenapi.NewParserOptions(
		pkgopenapi.WithValidation(l.strict),
		pkgopenapi.WithEmptyPaths(true),
		pkgopenapi.WithParserLogger(logger),
	)).Parse(ctx, doc)
	if err != nil {
		if errors.Is(err, pkgopenapi.ErrInvalidDocument) {
			return []violation{{file: path, location: "document", message: err.Error()}}, nil
		}
		return nil, err
	}

	_, err = model.NewBuilder(model.WithLogger(logger)).Build(spec)
	var empty *model.EmptyResultError
	switch {
	case errors.As(err, &empty):
		recorder.add(record{message: empty.Error()})
	case err != nil:
		return nil, err
	}

	var result []violation
	for _, rec := range recorder.snapshot() {
		if l.allowCycles && rec.attrs["reason"] == "cycle" {
			continue
		}
		result = append(result, violation{
			file:     path,
			location: rec.location(),
			message:  rec.describe(),
		})
	}
	return result, nil
}

func sortViolations(violations []violation) {
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
}

type record struct {
	message string
	attrs   map[string]string
}

func (r record) location() string {
	path, method := r.attrs["path"], r.attrs["method"]
	switch {
	case path != "" && method != "":
		return strings.ToUpper(method) + " " + path
	case path != "":
		return path
	}
	return "document"
}

func (r record) describe() string {
	keys := make([]string, 0, len(r.attrs))
	for key := range r.attrs {
		if key == "path" || key == "method" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return r.message
	}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+r.attrs[key])
	}
	return r.message + " (" + strings.Join(parts, ", ") + ")"
}

// recordingHandler keeps every record at debug level and above. Handlers
// derived through WithAttrs share the parent's storage.
type recordingHandler struct {
	mu      *sync.Mutex
	records *[]record
	attrs   []slog.Attr
}

func (h *recordingHandler) init() {
	if h.mu == nil {
		h.mu = &sync.Mutex{}
		h.records = &[]record{}
	}
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	rec := record{message: r.Message, attrs: make(map[string]string)}
	for _, attr := range h.attrs {
		rec.attrs[attr.Key] = attr.Value.String()
	}
	r.Attrs(func(attr slog.Attr) bool {
		rec.attrs[attr.Key] = attr.Value.String()
		return true
	})
	h.add(rec)
	return nil
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.init()
	return &recordingHandler{
		mu:      h.mu,
		records: h.records,
		attrs:   append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) add(rec record) {
	h.init()
	h.mu.Lock()
	defer h.mu.Unlock()
	*h.records = append(*h.records, rec)
}

func (h *recordingHandler) snapshot() []record {
	h.init()
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]record(nil), *h.records...)
}
