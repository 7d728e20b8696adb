// Package testsupport holds fixtures and golden file helpers shared by the
// package tests.
package testsupport

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-apiref/pkg/openapi"
)

// UpdateGoldensEnv names the variable that switches golden helpers into
// write mode.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

//go:embed fixtures/*.yaml
var fixtures embed.FS

// Petstore is the name of the bundled multi-route fixture.
const Petstore = "petstore.yaml"

// Fixture returns the raw bytes of a bundled fixture.
func Fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

// FixtureDocument wraps a bundled fixture in a Document.
func FixtureDocument(t *testing.T, name string) pkgopenapi.Document {
	t.Helper()
	return NewDocument(t, name, Fixture(t, name))
}

// FixtureSpec decodes a bundled fixture.
func FixtureSpec(t *testing.T, name string) *pkgopenapi.Spec {
	t.Helper()
	return ParseSpec(t, Fixture(t, name))
}

// NewDocument builds an in-memory Document, failing the test on error.
func NewDocument(t *testing.T, label string, raw []byte) pkgopenapi.Document {
	t.Helper()
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromBytes(label), raw)
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

// ParseSpec decodes raw, failing the test on error.
func ParseSpec(t *testing.T, raw []byte) *pkgopenapi.Spec {
	t.Helper()
	spec, err := pkgopenapi.ParseSpec(raw)
	if err != nil {
		t.Fatalf("parse spec: %v", err)
	}
	return spec
}

// LoadDocument reads a document from disk using a file source.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CompareJSONGolden encodes got and compares it with the JSON golden at path
// after decoding both into generic values, so key order and whitespace do not
// matter. With UPDATE_GOLDENS set the golden is rewritten first.
func CompareJSONGolden(t *testing.T, path string, got any) string {
	t.Helper()

	payload, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	WriteMaybeGolden(t, path, append(payload, '\n'))

	var want, have any
	if err := json.Unmarshal(MustReadGolden(t, path), &want); err != nil {
		t.Fatalf("decode golden %s: %v", path, err)
	}
	if err := json.Unmarshal(payload, &have); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	return cmp.Diff(want, have)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateGoldensEnv) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
