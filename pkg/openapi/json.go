package openapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	tagString = "!!str"
	tagBool   = "!!bool"
	tagNull   = "!!null"
	tagInt    = "!!int"
	tagFloat  = "!!float"
	tagMap    = "!!map"
	tagSeq    = "!!seq"
)

// jsonNode builds a yaml.Node tree from a JSON document, keeping member order.
// Strings carry an explicit !!str tag so values such as "true" or "1.0" stay
// strings; numbers are left untagged and resolve like plain YAML scalars.
func jsonNode(raw []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	lines := newLineIndex(raw)

	var (
		root  *yaml.Node
		stack []*yaml.Node
	)
	for {
		start := skipSeparators(raw, dec.InputOffset())
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		var node *yaml.Node
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				node = &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap, Style: yaml.FlowStyle}
			case '[':
				node = &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq, Style: yaml.FlowStyle}
			default:
				stack = stack[:len(stack)-1]
				continue
			}
		case string:
			node = &yaml.Node{Kind: yaml.ScalarNode, Tag: tagString, Value: v, Style: yaml.DoubleQuotedStyle}
		case json.Number:
			node = &yaml.Node{Kind: yaml.ScalarNode, Tag: numberTag(v), Value: v.String()}
		case bool:
			value := "false"
			if v {
				value = "true"
			}
			node = &yaml.Node{Kind: yaml.ScalarNode, Tag: tagBool, Value: value}
		case nil:
			node = &yaml.Node{Kind: yaml.ScalarNode, Tag: tagNull, Value: "null"}
		default:
			return nil, fmt.Errorf("unexpected json token %T", tok)
		}
		node.Line, node.Column = lines.position(start)

		if len(stack) == 0 {
			if root != nil {
				return nil, fmt.Errorf("unexpected content after document at line %d", node.Line)
			}
			root = node
		} else {
			parent := stack[len(stack)-1]
			parent.Content = append(parent.Content, node)
		}
		if node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode {
			stack = append(stack, node)
		}
	}
	if len(stack) > 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

func numberTag(n json.Number) string {
	if _, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return tagInt
	}
	return tagFloat
}

func skipSeparators(raw []byte, offset int64) int {
	i := int(offset)
	for i < len(raw) {
		switch raw[i] {
		case ' ', '\t', '\r', '\n', ',', ':':
			i++
		default:
			return i
		}
	}
	return i
}

// lineIndex maps byte offsets to 1-based line and column numbers.
type lineIndex []int

func newLineIndex(raw []byte) lineIndex {
	starts := lineIndex{0}
	for i, b := range raw {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (l lineIndex) position(offset int) (int, int) {
	line := sort.Search(len(l), func(i int) bool { return l[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return line + 1, offset - l[line] + 1
}
