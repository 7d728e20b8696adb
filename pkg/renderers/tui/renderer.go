// Package tui implements an interactive terminal browser over an API
// reference. Prompts go through a PromptDriver backed by survey.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/view"
)

const defaultPageSize = 15

// Renderer implements render.Renderer for terminal sessions. Render returns
// the routes the user opened, in the configured output format.
type Renderer struct {
	driver       PromptDriver
	out          io.Writer
	outputFormat OutputFormat
	pageSize     int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		pageSize:     defaultPageSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render runs the browse loop until the user picks the done entry.
func (r *Renderer) Render(ctx context.Context, ref *view.Reference, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, render.ErrNilReference
	}
	if ref.Len() == 0 {
		return nil, ErrNoRoutes
	}

	labels := render.Labels(opts)
	session := NewSession(ref, labels["untagged"])
	title := opts.DocumentTitle(ref.Title())
	if version := ref.Version(); version != "" {
		title += " " + version
	}

	for {
		sections := session.SectionLabels()
		searchIdx, doneIdx := len(sections), len(sections)+1
		choice, err := r.driver.Select(ctx, SelectConfig{
			Message:  r.theme.PromptPrefix + title,
			Options:  append(sections, "Search", "Done"),
			PageSize: r.pageSize,
		})
		if err != nil {
			return nil, err
		}

		var routes []view.Route
		switch {
		case choice < 0 || choice == doneIdx:
			return r.serialize(session, labels)
		case choice == searchIdx:
			query, err := r.driver.Input(ctx, InputConfig{Message: r.theme.PromptPrefix + "Path, title or operation id"})
			if err != nil {
				return nil, err
			}
			routes = session.Search(query)
			if len(routes) == 0 {
				if err := r.info(ctx, labels["no_routes"]); err != nil {
					return nil, err
				}
				continue
			}
		default:
			routes = session.SectionRoutes(choice)
		}

		if err := r.browseRoutes(ctx, session, routes, labels); err != nil {
			return nil, err
		}
	}
}

// browseRoutes lists routes until the user goes back.
func (r *Renderer) browseRoutes(ctx context.Context, session *Session, routes []view.Route, labels map[string]string) error {
	options := make([]string, 0, len(routes)+1)
	for _, route := range routes {
		options = append(options, routeLabel(route))
	}
	backIdx := len(options)
	options = append(options, "Back")

	for {
		choice, err := r.driver.Select(ctx, SelectConfig{
			Message:  r.theme.PromptPrefix + labels["routes"],
			Options:  options,
			PageSize: r.pageSize,
		})
		if err != nil {
			return err
		}
		if choice < 0 || choice >= backIdx {
			return nil
		}

		route := routes[choice]
		session.MarkViewed(route)
		if err := r.info(ctx, FormatRoute(route, labels)); err != nil {
			return err
		}
	}
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	if r.theme.InfoPrefix == "" {
		return r.driver.Info(ctx, msg)
	}
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		lines[i] = r.theme.InfoPrefix + line
	}
	return r.driver.Info(ctx, strings.Join(lines, "\n"))
}

func (r *Renderer) serialize(session *Session, labels map[string]string) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		viewed := session.Viewed()
		blocks := make([]string, 0, len(viewed))
		for _, route := range viewed {
			blocks = append(blocks, FormatRoute(route, labels))
		}
		if len(blocks) == 0 {
			return nil, nil
		}
		return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
	}

	payload, err := json.MarshalIndent(session.ViewedModels(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: encode viewed routes: %w", err)
	}
	return payload, nil
}
