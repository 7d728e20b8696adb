package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-apiref/pkg/model"
	"github.com/goliatone/go-apiref/pkg/view"
)

func TestFields_FlattensNestedProperties(t *testing.T) {
	fields := view.Fields(model.RouteParameters{
		"b": {RouteParameterSchema: model.BooleanSchema(true)},
		"a": {Required: true, RouteParameterSchema: model.ObjectSchema(model.RouteParameters{
			"inner": {RouteParameterSchema: model.ArraySchema(model.ObjectSchema(model.RouteParameters{
				"leaf": {RouteParameterSchema: model.NullSchema()},
			}))},
		})},
	})

	var got []string
	for _, f := range fields {
		got = append(got, f.Name+":"+view.TypeLabel(f.Schema))
	}
	assert.Equal(t, []string{"a:object", "inner:array<object>", "leaf:null", "b:boolean"}, got)
	assert.Equal(t, []int{0, 1, 2, 0}, []int{fields[0].Depth, fields[1].Depth, fields[2].Depth, fields[3].Depth})
	assert.True(t, fields[0].Required)
}

func TestSchemaFields(t *testing.T) {
	assert.Nil(t, view.SchemaFields(nil))
	scalar := model.StringSchema(model.StringConstraints{})
	assert.Empty(t, view.SchemaFields(&scalar))

	body := model.ArraySchema(model.ObjectSchema(model.RouteParameters{"id": {RouteParameterSchema: model.FileSchema()}}))
	fields := view.SchemaFields(&body)
	assert.Len(t, fields, 1)
	assert.Equal(t, 0, fields[0].Depth)
}

func TestConstraints(t *testing.T) {
	minLen, maxLen := 1, 5
	assert.Equal(t, []string{"one of: a, b", "min length 1", "max length 5", "pattern ^x", "default a"},
		view.Constraints(model.StringSchema(model.StringConstraints{
			Enum: []any{"a", "b"}, MinLength: &minLen, MaxLength: &maxLen, Pattern: "^x", Default: "a",
		})))

	lower, upper := 0.5, 10.0
	assert.Equal(t, []string{"> 0.5", "<= 10"},
		view.Constraints(model.NumericSchema(model.SchemaTypeNumber, model.NumericConstraints{
			ExclusiveMinimum: &lower, Maximum: &upper,
		})))
	assert.Empty(t, view.Constraints(model.NeverSchema()))
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "array<string (uuid)>", view.TypeLabel(model.ArraySchema(model.StringSchema(model.StringConstraints{Format: "uuid"}))))
	assert.Equal(t, "integer (int64)", view.TypeLabel(model.NumericSchema(model.SchemaTypeInteger, model.NumericConstraints{Format: "int64"})))
	assert.Equal(t, "never", view.TypeLabel(model.NeverSchema()))
}

func TestRouteResponsesSorted(t *testing.T) {
	ref := view.MustNew(&model.APIReferenceCore{Routes: []model.Route{{
		Path: "/x", Method: model.MethodGet, Tags: [][]string{},
		Responses: map[int]model.RouteResponse{500: {}, 201: {Description: "Created"}, 404: {}},
	}}})
	route, _ := ref.At(0)

	var codes []int
	for _, resp := range route.Responses() {
		codes = append(codes, resp.Status)
	}
	assert.Equal(t, []int{201, 404, 500}, codes)
	assert.Equal(t, "Created", route.Responses()[0].Description)
}

func TestAuthLines(t *testing.T) {
	assert.Nil(t, view.AuthLines(nil))
	lines := view.AuthLines(&model.Authorization{Requirements: []model.AuthRequirement{
		{Schemes: []model.AuthScheme{
			{Name: "key", Type: "apiKey", In: "header", Parameter: "X-Key"},
			{Name: "oauth", Type: "oauth2", Scopes: []string{"read", "write"}},
		}},
		{Schemes: []model.AuthScheme{{Name: "bearer", Type: "http", Scheme: "bearer"}}},
	}})
	assert.Equal(t, []string{
		"key (apiKey; X-Key in header) + oauth (oauth2; scopes: read, write)",
		"bearer (http bearer)",
	}, lines)
}
