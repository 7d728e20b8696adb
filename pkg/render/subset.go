package render

import (
	"strings"

	"github.com/goliatone/go-apiref/pkg/model"
)

// RouteSubset narrows the routes handed to a renderer. Each non-empty filter
// must match; within one filter any token matches.
type RouteSubset struct {
	// Methods keeps routes whose method is listed.
	Methods []string
	// Tags keeps routes carrying a tag segment equal to one of the tokens,
	// compared case-insensitively at any depth of the tag path.
	Tags []string
	// PathPrefixes keeps routes whose path starts with one of the prefixes.
	PathPrefixes []string
}

// Empty reports whether the subset filters nothing.
func (s RouteSubset) Empty() bool {
	return newSubsetMatcher(s).empty()
}

// ApplySubset removes routes that do not match subset. The core is modified
// in place; an empty subset or nil core is a no-op. Filtering may leave the
// core with no routes.
func ApplySubset(core *model.APIReferenceCore, subset RouteSubset) {
	if core == nil {
		return
	}

	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return
	}

	filtered := make([]model.Route, 0, len(core.Routes))
	for _, route := range core.Routes {
		if matcher.matches(route) {
			filtered = append(filtered, route)
		}
	}
	core.Routes = filtered
}

type subsetMatcher struct {
	methods  map[string]struct{}
	tags     map[string]struct{}
	prefixes []string
}

func newSubsetMatcher(subset RouteSubset) subsetMatcher {
	m := subsetMatcher{
		methods: normaliseTokens(subset.Methods),
		tags:    normaliseTokens(subset.Tags),
	}
	for _, prefix := range subset.PathPrefixes {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			m.prefixes = append(m.prefixes, prefix)
		}
	}
	return m
}

func (m subsetMatcher) empty() bool {
	return len(m.methods) == 0 && len(m.tags) == 0 && len(m.prefixes) == 0
}

func (m subsetMatcher) matches(route model.Route) bool {
	if len(m.methods) > 0 {
		if _, ok := m.methods[string(route.Method)]; !ok {
			return false
		}
	}
	if len(m.tags) > 0 && !m.matchesTag(route.Tags) {
		return false
	}
	if len(m.prefixes) > 0 {
		for _, prefix := range m.prefixes {
			if strings.HasPrefix(route.Path, prefix) {
				return true
			}
		}
		return false
	}
	return true
}

func (m subsetMatcher) matchesTag(tags [][]string) bool {
	for _, path := range tags {
		for _, segment := range path {
			if _, ok := m.tags[normaliseToken(segment)]; ok {
				return true
			}
		}
	}
	return false
}

// ParseTokenList splits a comma separated list, dropping blanks.
func ParseTokenList(raw string) []string {
	var out []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		if token := normaliseToken(value); token != "" {
			out[token] = struct{}{}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
