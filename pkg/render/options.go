package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the normalized reference.
type RenderOptions struct {
	// Title overrides the document title in rendered output.
	Title string
	// Locale and Translator localize the fixed labels renderers print around
	// the reference ("Parameters", "Responses", ...). Route content itself is
	// never translated.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// Theme carries the resolved go-theme selection. Renderers that support
	// theming read tokens, CSS variables and asset URLs from it.
	Theme *theme.RendererConfig
}

// DocumentTitle returns the title override, falling back to fallback.
func (o RenderOptions) DocumentTitle(fallback string) string {
	if title := strings.TrimSpace(o.Title); title != "" {
		return title
	}
	return fallback
}
