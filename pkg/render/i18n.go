package render

import "strings"

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides the string used when a key cannot be
// translated. err is ErrMissingTranslator when no Translator is configured.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// Label keys understood by Labels. Values are the English defaults.
const (
	LabelParameters    = "apiref.parameters"
	LabelPathParams    = "apiref.path_params"
	LabelQueryParams   = "apiref.query_params"
	LabelRequestBody   = "apiref.request_body"
	LabelResponses     = "apiref.responses"
	LabelHeaders       = "apiref.headers"
	LabelAuthorization = "apiref.authorization"
	LabelNoAuth        = "apiref.no_auth"
	LabelOptionalAuth  = "apiref.optional_auth"
	LabelDeprecated    = "apiref.deprecated"
	LabelRequired      = "apiref.required"
	LabelServers       = "apiref.servers"
	LabelUntagged      = "apiref.untagged"
	LabelRoutes        = "apiref.routes"
	LabelNoRoutes      = "apiref.no_routes"
)

var defaultLabels = map[string]string{
	LabelParameters:    "Parameters",
	LabelPathParams:    "Path parameters",
	LabelQueryParams:   "Query parameters",
	LabelRequestBody:   "Request body",
	LabelResponses:     "Responses",
	LabelHeaders:       "Headers",
	LabelAuthorization: "Authorization",
	LabelNoAuth:        "No authorization",
	LabelOptionalAuth:  "Authorization optional",
	LabelDeprecated:    "Deprecated",
	LabelRequired:      "required",
	LabelServers:       "Servers",
	LabelUntagged:      "Other",
	LabelRoutes:        "Routes",
	LabelNoRoutes:      "No routes match the current filter.",
}

// Labels returns every UI label localized through opts. The result is keyed
// by the label constant with the "apiref." prefix removed, which keeps it
// addressable from templates (labels.request_body).
func Labels(opts RenderOptions) map[string]string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	out := make(map[string]string, len(defaultLabels))
	for key, fallback := range defaultLabels {
		out[strings.TrimPrefix(key, "apiref.")] = translate(opts.Locale, key, fallback, opts.Translator, onMissing)
	}
	return out
}

// Label localizes a single key.
func Label(opts RenderOptions, key string) string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return translate(opts.Locale, key, defaultLabels[key], opts.Translator, onMissing)
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	params := []any{map[string]any{"default": fallback}}
	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, params, err)
}

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}
