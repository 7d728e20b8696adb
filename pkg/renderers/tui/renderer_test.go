package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-apiref/pkg/model"
	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/view"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	menus        [][]string
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.menus = append(s.menus, cfg.Options)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func sampleReference() *view.Reference {
	minimum := 1.0
	return view.MustNew(&model.APIReferenceCore{
		Title:   "Pets",
		Version: "1.0",
		Routes: []model.Route{
			{
				ID: "listPets", Path: "/pets", Title: "List pets", Method: model.MethodGet,
				Tags: [][]string{{"Pets"}},
				QueryParams: model.RouteParameters{
					"limit": {Required: true, Description: "Page size", RouteParameterSchema: model.NumericSchema(model.SchemaTypeInteger, model.NumericConstraints{Minimum: &minimum})},
				},
				Responses: map[int]model.RouteResponse{200: {ContentType: model.ContentTypeJSON, Description: "OK"}},
			},
			{
				ID: "createPet", Path: "/pets", Title: "/pets", Method: model.MethodPost,
				Tags: [][]string{{"Pets", "Admin"}}, Deprecated: true,
				ContentType: model.ContentTypeJSON,
				Body: &model.RouteParameterSchema{Type: model.SchemaTypeObject, Properties: model.RouteParameters{
					"name": {Required: true, RouteParameterSchema: model.StringSchema(model.StringConstraints{})},
				}},
				Responses: map[int]model.RouteResponse{201: {Description: "Created"}},
			},
			{Path: "/health", Title: "/health", Method: model.MethodHead, Tags: [][]string{}, Responses: map[int]model.RouteResponse{}},
		},
	})
}

func TestRenderer_BrowseSectionsAndReturnJSON(t *testing.T) {
	driver := &stubDriver{
		// Pets -> List pets -> Back -> Admin -> /pets POST -> Back -> Done
		selectIdx: []int{0, 0, 1, 1, 0, 1, 4},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleReference(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	wantMenu := []string{"Pets", "  Admin", "Other", "Search", "Done"}
	if got := strings.Join(driver.menus[0], "|"); got != strings.Join(wantMenu, "|") {
		t.Fatalf("top menu mismatch: %q", got)
	}
	if len(driver.infoMessages) != 2 {
		t.Fatalf("expected two detail views, got %d", len(driver.infoMessages))
	}
	if !strings.Contains(driver.infoMessages[0], "limit* integer  Page size (>= 1)") {
		t.Fatalf("detail missing parameter line:\n%s", driver.infoMessages[0])
	}
	if !strings.Contains(driver.infoMessages[1], "Request body (application/json): object") {
		t.Fatalf("detail missing body line:\n%s", driver.infoMessages[1])
	}

	var routes []model.Route
	if err := json.Unmarshal(out, &routes); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(routes) != 2 || routes[0].ID != "listPets" || routes[1].ID != "createPet" {
		t.Fatalf("unexpected viewed routes: %+v", routes)
	}
}

func TestRenderer_SearchPrettyText(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"nothing-matches", "HEALTH"},
		selectIdx: []int{3, 3, 0, 1, 4},
	}
	renderer, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText), WithTheme(Theme{InfoPrefix: "| "}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.ContentType() != "text/plain" {
		t.Fatalf("unexpected content type %s", renderer.ContentType())
	}

	out, err := renderer.Render(context.Background(), sampleReference(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.infoMessages[0] != "| No routes match the current filter." {
		t.Fatalf("expected empty search notice, got %q", driver.infoMessages[0])
	}
	if got := string(out); got != "HEAD /health\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderer_Abort(t *testing.T) {
	driver := &abortDriver{}
	renderer, _ := New(WithPromptDriver(driver))
	_, err := renderer.Render(context.Background(), sampleReference(), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRenderer_Preconditions(t *testing.T) {
	renderer, _ := New(WithPromptDriver(&stubDriver{}))
	if _, err := renderer.Render(context.Background(), nil, render.RenderOptions{}); !errors.Is(err, render.ErrNilReference) {
		t.Fatalf("expected ErrNilReference, got %v", err)
	}
	empty := view.MustNew(&model.APIReferenceCore{})
	if _, err := renderer.Render(context.Background(), empty, render.RenderOptions{}); !errors.Is(err, ErrNoRoutes) {
		t.Fatalf("expected ErrNoRoutes, got %v", err)
	}
}

func TestFormatRoute(t *testing.T) {
	ref := sampleReference()
	route, _ := ref.Find(model.MethodPost, "/pets")
	got := FormatRoute(route, render.Labels(render.RenderOptions{}))
	want := strings.Join([]string{
		"POST /pets",
		"[Deprecated]",
		"",
		"Request body (application/json): object",
		"  name* string",
		"",
		"Responses:",
		"  201  Created",
	}, "\n")
	if got != want {
		t.Fatalf("format mismatch\nwant:\n%s\n got:\n%s", want, got)
	}
}

type abortDriver struct{ stubDriver }

func (a *abortDriver) Select(context.Context, SelectConfig) (int, error) {
	return 0, ErrAborted
}
