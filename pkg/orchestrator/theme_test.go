package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/renderers/html"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":   "#123456",
			"surface": "#ffffff",
		},
		Templates: map[string]string{
			"apiref.route": "themes/acme/route",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				html.AssetStylesheet: "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					html.PartialReference: "themes/acme/dark",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"html.logo": "logo.dark.svg",
					},
				},
			},
		},
	}
}

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "custom-variant",
		Manifest: manifest,
	}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	_, err := orch.Generate(context.Background(), Request{
		Document:     petsDoc(t),
		ThemeName:    "custom-theme",
		ThemeVariant: "custom-variant",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "custom-variant" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "custom-variant" {
		t.Fatalf("unexpected theme identity: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := cfg.Partials[html.PartialReference]; got != defaultThemeFallbacks()[html.PartialReference] {
		t.Fatalf("partials not merged with fallbacks, got %q", got)
	}
	if cfg.Tokens["brand"] != "#123456" {
		t.Fatalf("tokens not propagated")
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars not derived from tokens")
	}
}

func TestOrchestrator_ExplicitThemeConfigSkipsSelector(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("should not be called")}
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	explicit := &theme.RendererConfig{Theme: "inline"}
	orch := New(WithRegistry(registry), WithDefaultRenderer(renderer.Name()), WithThemeSelector(selector))
	_, err := orch.Generate(context.Background(), Request{
		Document:      petsDoc(t),
		RenderOptions: render.RenderOptions{Theme: explicit},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 0 {
		t.Fatalf("selector should not be consulted")
	}
	if renderer.options.Theme != explicit {
		t.Fatalf("explicit theme config replaced")
	}
}

func TestOrchestrator_ThemeSelectionError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("no such theme")}
	_, err := New(WithThemeSelector(selector)).Generate(context.Background(), Request{Document: petsDoc(t)})
	if err == nil || !strings.Contains(err.Error(), "select theme") {
		t.Fatalf("expected selection error, got %v", err)
	}
}

func TestRendererConfig_MergesVariant(t *testing.T) {
	cfg := rendererConfig(&theme.Selection{Theme: "acme", Variant: "dark", Manifest: acmeManifest()}, defaultThemeFallbacks())
	if cfg == nil {
		t.Fatalf("expected config")
	}
	if cfg.Tokens["brand"] != "#654321" || cfg.Tokens["surface"] != "#ffffff" {
		t.Fatalf("tokens not merged with variant override: %v", cfg.Tokens)
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens: %v", cfg.CSSVars)
	}
	if cfg.Partials[html.PartialReference] != "themes/acme/dark" {
		t.Fatalf("expected variant template override, got %q", cfg.Partials[html.PartialReference])
	}
	if cfg.Partials["apiref.route"] != "themes/acme/route" {
		t.Fatalf("expected base template override, got %q", cfg.Partials["apiref.route"])
	}
	if got := cfg.AssetURL(html.AssetStylesheet); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("html.logo"); got != "/assets/themes/acme/logo.dark.svg" {
		t.Fatalf("unexpected logo url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}

	if rendererConfig(nil, nil) != nil {
		t.Fatalf("nil selection should yield nil config")
	}
}

func TestManifestSelector(t *testing.T) {
	selector, err := NewManifestSelector("", "dark", acmeManifest(), &theme.Manifest{Name: "plain"})
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != "acme" || selection.Variant != "dark" {
		t.Fatalf("unexpected default selection %s/%s", selection.Theme, selection.Variant)
	}

	selection, err = selector.Select("plain", "")
	if err != nil {
		t.Fatalf("select plain: %v", err)
	}
	if selection.Manifest.Name != "plain" || selection.Variant != "" {
		t.Fatalf("unexpected plain selection %+v", selection)
	}

	if _, err := selector.Select("missing", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected unknown theme, got %v", err)
	}
	if _, err := selector.Select("plain", "dark"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected unknown variant, got %v", err)
	}
	if _, err := NewManifestSelector("nope", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected unknown default theme, got %v", err)
	}
}

func TestOrchestrator_ThemedHTML(t *testing.T) {
	selector, err := NewManifestSelector("acme", "", acmeManifest())
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	output, err := New(WithThemeSelector(selector)).Generate(context.Background(), Request{
		Document: petsDoc(t),
		Renderer: "html",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	page := string(output)
	if !strings.Contains(page, "--brand: #123456;") {
		t.Fatalf("expected css vars in page")
	}
	if !strings.Contains(page, "/assets/themes/acme/theme.css") {
		t.Fatalf("expected themed stylesheet link")
	}
}
