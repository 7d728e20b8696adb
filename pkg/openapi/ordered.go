package openapi

import (
	"fmt"
	"iter"
	"strings"

	"gopkg.in/yaml.v3"
)

// Map is a string keyed map that remembers declaration order. Documents decode
// into Map wherever OpenAPI leaves order to the author (paths, content,
// responses, properties, components) so output built from them is stable.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap returns an empty ordered map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil || m.values == nil {
		return zero, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Len reports the number of entries. A nil map is empty.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in declaration order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates entries in declaration order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// First returns the entry declared first.
func (m *Map[V]) First() (string, V, bool) {
	var zero V
	if m.Len() == 0 {
		return "", zero, false
	}
	key := m.keys[0]
	return key, m.values[key], true
}

// UnmarshalYAML decodes a mapping node, keeping key order.
func (m *Map[V]) UnmarshalYAML(node *yaml.Node) error {
	return m.decode(node, false)
}

func (m *Map[V]) decode(node *yaml.Node, skipExtensions bool) error {
	node = resolveAlias(node)
	if node == nil || isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("openapi: expected mapping at line %d, got %s", node.Line, kindName(node.Kind))
	}
	m.keys = m.keys[:0]
	m.values = make(map[string]V, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if skipExtensions && strings.HasPrefix(key, "x-") {
			continue
		}
		var value V
		if !isNull(resolveAlias(valueNode)) {
			if err := valueNode.Decode(&value); err != nil {
				return fmt.Errorf("openapi: decode %q: %w", key, err)
			}
		}
		m.Set(key, value)
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
