package openapi

import "path/filepath"

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// memorySource labels documents that never touched a loader.
type memorySource struct {
	label string
}

func (s memorySource) Location() string { return s.label }
func (s memorySource) Kind() SourceKind { return SourceKindMemory }

// SourceKindMemory marks in-memory documents.
const SourceKindMemory SourceKind = "memory"

// SourceFromBytes labels an in-memory document, e.g. one read from stdin.
func SourceFromBytes(label string) Source {
	if label == "" {
		label = "memory"
	}
	return memorySource{label: label}
}
