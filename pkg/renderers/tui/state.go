package tui

import (
	"strings"

	"github.com/goliatone/go-apiref/pkg/model"
	"github.com/goliatone/go-apiref/pkg/view"
)

// section is one entry of the top level menu.
type section struct {
	label  string
	routes []view.Route
}

// Session tracks what a browsing session has shown. It holds no terminal
// state; the renderer drives prompts around it.
type Session struct {
	ref      *view.Reference
	sections []section
	viewed   []view.Route
	seen     map[int]struct{}
}

// NewSession builds the tag menu for ref. Untagged routes are listed under
// untaggedLabel after the tag tree.
func NewSession(ref *view.Reference, untaggedLabel string) *Session {
	s := &Session{ref: ref, seen: make(map[int]struct{})}
	groups, untagged := ref.Groups()
	for _, group := range groups {
		group.Walk(func(g *view.Group, depth int) {
			s.sections = append(s.sections, section{
				label:  strings.Repeat("  ", depth) + g.Name,
				routes: g.Routes,
			})
		})
	}
	if len(untagged) > 0 {
		s.sections = append(s.sections, section{label: untaggedLabel, routes: untagged})
	}
	return s
}

// SectionLabels returns the menu labels in display order.
func (s *Session) SectionLabels() []string {
	out := make([]string, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, sec.label)
	}
	return out
}

// SectionRoutes returns the routes listed under section i.
func (s *Session) SectionRoutes(i int) []view.Route {
	if i < 0 || i >= len(s.sections) {
		return nil
	}
	return s.sections[i].routes
}

// Search returns routes whose path, title or id contains query, ignoring
// case. An empty query matches every route.
func (s *Session) Search(query string) []view.Route {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []view.Route
	for _, route := range s.ref.Routes() {
		if query == "" ||
			strings.Contains(strings.ToLower(route.Path()), query) ||
			strings.Contains(strings.ToLower(route.Title()), query) ||
			strings.Contains(strings.ToLower(route.ID()), query) {
			out = append(out, route)
		}
	}
	return out
}

// MarkViewed records route once, keeping first view order.
func (s *Session) MarkViewed(route view.Route) {
	if _, ok := s.seen[route.Index()]; ok {
		return
	}
	s.seen[route.Index()] = struct{}{}
	s.viewed = append(s.viewed, route)
}

// Viewed returns the routes shown so far.
func (s *Session) Viewed() []view.Route {
	return append([]view.Route(nil), s.viewed...)
}

// ViewedModels returns copies of the viewed routes for serialization.
func (s *Session) ViewedModels() []model.Route {
	out := make([]model.Route, 0, len(s.viewed))
	for _, route := range s.viewed {
		out = append(out, route.Model())
	}
	return out
}
