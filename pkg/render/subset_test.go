package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-apiref/pkg/model"
)

func sampleCore() model.APIReferenceCore {
	return model.APIReferenceCore{
		Title: "Shop",
		Routes: []model.Route{
			{Path: "/orders", Method: model.MethodGet, Tags: [][]string{{"Orders"}}},
			{Path: "/orders", Method: model.MethodPost, Tags: [][]string{{"Orders", "Admin"}}},
			{Path: "/users/{id}", Method: model.MethodGet, Tags: [][]string{{"Users"}}},
			{Path: "/health", Method: model.MethodHead, Tags: [][]string{}},
		},
	}
}

func paths(core model.APIReferenceCore) []string {
	out := make([]string, 0, len(core.Routes))
	for _, route := range core.Routes {
		out = append(out, string(route.Method)+" "+route.Path)
	}
	return out
}

func TestApplySubset_ByMethod(t *testing.T) {
	core := sampleCore()
	ApplySubset(&core, RouteSubset{Methods: []string{" GET "}})
	assert.Equal(t, []string{"get /orders", "get /users/{id}"}, paths(core))
}

func TestApplySubset_ByNestedTag(t *testing.T) {
	core := sampleCore()
	ApplySubset(&core, RouteSubset{Tags: []string{"admin"}})
	assert.Equal(t, []string{"post /orders"}, paths(core))
}

func TestApplySubset_FiltersCombine(t *testing.T) {
	core := sampleCore()
	ApplySubset(&core, RouteSubset{
		Methods:      []string{"get"},
		PathPrefixes: []string{"/users"},
	})
	assert.Equal(t, []string{"get /users/{id}"}, paths(core))
}

func TestApplySubset_EmptyIsNoop(t *testing.T) {
	core := sampleCore()
	ApplySubset(&core, RouteSubset{Tags: []string{" ", ""}})
	assert.Len(t, core.Routes, 4)
	assert.True(t, RouteSubset{Methods: []string{""}}.Empty())

	ApplySubset(nil, RouteSubset{Methods: []string{"get"}})
}

func TestApplySubset_CanRemoveEverything(t *testing.T) {
	core := sampleCore()
	ApplySubset(&core, RouteSubset{Methods: []string{"trace"}})
	assert.Empty(t, core.Routes)
}

func TestParseTokenList(t *testing.T) {
	assert.Equal(t, []string{"get", "post"}, ParseTokenList(" get, ,post,"))
	assert.Nil(t, ParseTokenList(""))
}
