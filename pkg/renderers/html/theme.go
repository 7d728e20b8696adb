package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme partial and asset keys read from the renderer configuration.
const (
	PartialReference  = "apiref.reference"
	AssetStylesheet   = "html.stylesheet"
	defaultTemplate   = "reference"
	cssVarTokenPrefix = "--"
)

type rendererTheme struct {
	Name          string
	Variant       string
	CSSVarsStyle  string
	StylesheetURL string
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	ctx := rendererTheme{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx.StylesheetURL = strings.TrimSpace(cfg.AssetURL(AssetStylesheet))
	}
	return ctx
}

// templateName picks the page template, honouring a theme partial override.
func templateName(cfg *theme.RendererConfig) string {
	if cfg != nil {
		if name := strings.TrimSpace(cfg.Partials[PartialReference]); name != "" {
			return name
		}
	}
	return defaultTemplate
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.HasPrefix(key, cssVarTokenPrefix) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cssValue(vars[key]))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// cssValue drops characters that could close the declaration or the style
// element.
func cssValue(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
}
