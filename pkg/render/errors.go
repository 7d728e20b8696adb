package render

import "errors"

var (
	// ErrNilReference is returned when Render receives no reference.
	ErrNilReference = errors.New("render: reference is nil")
	// ErrUnknownRenderer is returned by Registry.Get for unregistered names.
	ErrUnknownRenderer = errors.New("render: renderer not found")
	// ErrNoRenderers is returned by Registry.Resolve on an empty registry.
	ErrNoRenderers = errors.New("render: no renderers registered")
	// ErrDuplicateRenderer is returned when a name is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
	// ErrMissingTranslator is passed to MissingTranslationHandler when labels
	// are requested without a Translator.
	ErrMissingTranslator = errors.New("render: translator not configured")
)
