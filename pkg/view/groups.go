package view

// Group is a node in the tag tree. Routes lists the routes tagged with
// exactly this path; Children holds deeper tag levels.
type Group struct {
	Name     string
	Path     []string
	Routes   []Route
	Children []*Group
}

// Groups builds the tag tree in first appearance order. A route with several
// tags appears once under each. Untagged routes are returned separately.
func (r *Reference) Groups() (groups []*Group, untagged []Route) {
	index := make(map[string]*Group)
	var root []*Group
	for _, route := range r.Routes() {
		tags := route.Tags()
		if len(tags) == 0 {
			untagged = append(untagged, route)
			continue
		}
		for _, tagPath := range tags {
			group := ensureGroup(index, &root, tagPath)
			if group != nil {
				group.Routes = append(group.Routes, route)
			}
		}
	}
	return root, untagged
}

func ensureGroup(index map[string]*Group, root *[]*Group, tagPath []string) *Group {
	var parent *Group
	key := ""
	for depth, name := range tagPath {
		key += "\x00" + name
		group, ok := index[key]
		if !ok {
			group = &Group{Name: name, Path: append([]string(nil), tagPath[:depth+1]...)}
			index[key] = group
			if parent == nil {
				*root = append(*root, group)
			} else {
				parent.Children = append(parent.Children, group)
			}
		}
		parent = group
	}
	return parent
}

// Walk visits g and its descendants depth first.
func (g *Group) Walk(fn func(*Group, int)) {
	g.walk(fn, 0)
}

func (g *Group) walk(fn func(*Group, int), depth int) {
	fn(g, depth)
	for _, child := range g.Children {
		child.walk(fn, depth+1)
	}
}
