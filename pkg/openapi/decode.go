package openapi

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument reports a document without content.
	ErrEmptyDocument = errors.New("openapi: document is empty")
	// ErrNoPaths reports a document that declares no paths while
	// AllowEmptyPaths is off.
	ErrNoPaths = errors.New("openapi: document does not declare any paths")
	// ErrDocumentTooLarge reports a source above LoaderOptions.MaxBytes.
	ErrDocumentTooLarge = errors.New("openapi: document exceeds size limit")
	// ErrInvalidDocument wraps structural validation failures.
	ErrInvalidDocument = errors.New("openapi: document failed validation")
)

// Format names the serialization a document was decoded from.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseError wraps a decoding failure with the detected input format.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("openapi: parse %s document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DetectFormat guesses whether raw holds JSON or YAML.
func DetectFormat(raw []byte) Format {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// ParseSpec decodes a JSON or YAML OpenAPI document. Both forms are turned
// into a yaml.Node tree first and decoded through the same ordered walk. JSON
// is tokenized with encoding/json so every JSON escape is accepted.
func ParseSpec(raw []byte) (*Spec, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrEmptyDocument
	}

	format := DetectFormat(trimmed)
	var root *yaml.Node
	if format == FormatJSON {
		node, err := jsonNode(trimmed)
		if err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
		root = node
	} else {
		var doc yaml.Node
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return nil, &ParseError{Format: format, Err: err}
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		root = doc.Content[0]
	}

	if err := checkAliases(root, make(map[*yaml.Node]bool)); err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	var spec Spec
	if err := root.Decode(&spec); err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return &spec, nil
}

// checkAliases rejects an alias that points at one of its own ancestors.
// Nested decoders do not share yaml.v3's recursion guard, so such a document
// would otherwise expand forever.
func checkAliases(node *yaml.Node, open map[*yaml.Node]bool) error {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.AliasNode {
		if open[node.Alias] {
			return fmt.Errorf("anchor %q at line %d contains itself", node.Value, node.Line)
		}
		return nil
	}
	open[node] = true
	defer delete(open, node)
	for _, child := range node.Content {
		if err := checkAliases(child, open); err != nil {
			return err
		}
	}
	return nil
}

// MustParseSpec panics when ParseSpec fails. Useful for tests.
func MustParseSpec(raw []byte) *Spec {
	spec, err := ParseSpec(raw)
	if err != nil {
		panic(err)
	}
	return spec
}

// Version returns the declared "openapi" version string.
func (s *Spec) Version() string {
	if s == nil {
		return ""
	}
	return s.OpenAPI
}
