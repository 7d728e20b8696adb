package openapi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-apiref/pkg/openapi"
)

const yamlDoc = `
openapi: 3.1.0
info:
  title: Pets
  version: "1.2"
servers:
  - url: https://api.example.com
paths:
  /zebras:
    get:
      responses:
        "200":
          description: ok
  /apples:
    post:
      tags: [Fruit]
      responses:
        default:
          description: err
        x-internal: true
  x-meta: ignored
components:
  schemas:
    Legacy:
      type: number
      minimum: 3
      exclusiveMinimum: true
    Modern:
      type: [string, "null"]
      exclusiveMaximum: 10
    Tuple:
      type: array
      items:
        - type: string
        - type: integer
`

func TestParseSpecKeepsDeclarationOrder(t *testing.T) {
	spec, err := openapi.ParseSpec([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, "Pets", spec.Info.Title)
	assert.Equal(t, "1.2", spec.Info.Version)
	assert.Equal(t, []string{"/zebras", "/apples"}, spec.Paths.Keys())

	apples, ok := spec.Paths.Get("/apples")
	require.True(t, ok)
	require.NotNil(t, apples.Post)
	assert.Equal(t, []string{"default"}, apples.Post.Responses.Keys())
}

func TestParseSpecPolymorphicKeywords(t *testing.T) {
	spec := openapi.MustParseSpec([]byte(yamlDoc))

	legacy, _ := spec.Components.Schemas.Get("Legacy")
	minimum, exclusive := legacy.Lower()
	assert.Nil(t, minimum)
	require.NotNil(t, exclusive)
	assert.Equal(t, 3.0, *exclusive)

	modern, _ := spec.Components.Schemas.Get("Modern")
	_, single := modern.Type.Single()
	assert.False(t, single)
	assert.True(t, modern.Type.IsList())
	maximum, exclusiveMax := modern.Upper()
	assert.Nil(t, maximum)
	require.NotNil(t, exclusiveMax)
	assert.Equal(t, 10.0, *exclusiveMax)

	tuple, _ := spec.Components.Schemas.Get("Tuple")
	assert.True(t, tuple.Items.IsList())
	first := tuple.Items.First()
	require.NotNil(t, first)
	name, _ := first.Type.Single()
	assert.Equal(t, "string", name)
}

func TestParseSpecJSONWithTabs(t *testing.T) {
	raw := "{\n\t\"openapi\": \"3.1.0\",\n\t\"paths\": {\n\t\t\"/b\": {\"get\": {}},\n\t\t\"/a\": {\"get\": {}}\n\t}\n}"
	spec, err := openapi.ParseSpec([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, []string{"/b", "/a"}, spec.Paths.Keys())
}

func TestParseSpecJSONEscapes(t *testing.T) {
	raw := `{"openapi":"3.1.0","info":{"title":"Caf\u00e9 \ud83d\ude80","version":"1"},` +
		`"paths":{"\/pets":{"get":{"responses":{"200":{"description":"ok",` +
		`"content":{"application\/json":{"schema":{"type":"string","default":"true","maximum":1e3}}}}}}}}}`
	spec, err := openapi.ParseSpec([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "Café 🚀", spec.Info.Title)
	assert.Equal(t, []string{"/pets"}, spec.Paths.Keys())
	item, ok := spec.Paths.Get("/pets")
	require.True(t, ok)
	response, ok := item.Get.Responses.Get("200")
	require.True(t, ok)
	mediaType, media, ok := response.Content.First()
	require.True(t, ok)
	assert.Equal(t, "application/json", mediaType)
	assert.Equal(t, "true", media.Schema.Default)
	require.NotNil(t, media.Schema.Maximum)
	assert.Equal(t, 1000.0, *media.Schema.Maximum)
}

func TestParseSpecJSONTrailingContent(t *testing.T) {
	_, err := openapi.ParseSpec([]byte(`{"openapi":"3.1.0"} {"openapi":"3.1.0"}`))
	var parseErr *openapi.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, openapi.FormatJSON, parseErr.Format)
}

func TestParseSpecRejectsSelfReferencingAnchor(t *testing.T) {
	raw := `
openapi: 3.1.0
paths: {}
components:
  schemas:
    A: &a
      type: object
      properties:
        self: *a
`
	_, err := openapi.ParseSpec([]byte(raw))
	var parseErr *openapi.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, openapi.FormatYAML, parseErr.Format)
	assert.Contains(t, err.Error(), `anchor "a"`)
}

func TestParseSpecSharedAnchorStillDecodes(t *testing.T) {
	raw := `
openapi: 3.1.0
paths: {}
components:
  schemas:
    Name: &name {type: string, maxLength: 20}
    Person:
      type: object
      properties:
        first: *name
        last: *name
`
	spec, err := openapi.ParseSpec([]byte(raw))
	require.NoError(t, err)
	person, ok := spec.Components.Schemas.Get("Person")
	require.True(t, ok)
	assert.Equal(t, []string{"first", "last"}, person.Properties.Keys())
	last, _ := person.Properties.Get("last")
	require.NotNil(t, last.MaxLength)
	assert.Equal(t, 20, *last.MaxLength)
}

func TestParseSpecErrors(t *testing.T) {
	_, err := openapi.ParseSpec([]byte("   "))
	assert.ErrorIs(t, err, openapi.ErrEmptyDocument)

	_, err = openapi.ParseSpec([]byte("# nothing but a comment"))
	assert.ErrorIs(t, err, openapi.ErrEmptyDocument)

	_, err = openapi.ParseSpec([]byte(`{"openapi": `))
	var parseErr *openapi.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, openapi.FormatJSON, parseErr.Format)

	_, err = openapi.ParseSpec([]byte("paths: [1, 2]"))
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, openapi.FormatYAML, parseErr.Format)
}

func TestSecurityOverrideDistinguishesEmptyFromAbsent(t *testing.T) {
	spec := openapi.MustParseSpec([]byte(`
openapi: 3.1.0
security:
  - apiKey: []
paths:
  /open:
    get:
      security: []
  /inherit:
    get: {}
`))
	open, _ := spec.Paths.Get("/open")
	require.NotNil(t, open.Get.Security)
	assert.Empty(t, open.Get.Security.Requirements)

	inherit, _ := spec.Paths.Get("/inherit")
	assert.Nil(t, inherit.Get.Security)

	require.Len(t, spec.Security, 1)
	assert.Equal(t, []string{"apiKey"}, spec.Security[0].Keys())
}

func TestMapSetKeepsFirstPosition(t *testing.T) {
	m := openapi.NewMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	var keys []string
	var values []int
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"b", "a"}, keys)
	assert.Equal(t, []int{3, 2}, values)

	key, value, ok := m.First()
	assert.True(t, ok)
	assert.Equal(t, "b", key)
	assert.Equal(t, 3, value)

	var empty *openapi.Map[int]
	assert.Equal(t, 0, empty.Len())
	_, _, ok = empty.First()
	assert.False(t, ok)
}

func TestPathItemOperationLookup(t *testing.T) {
	item := &openapi.PathItem{Get: &openapi.Operation{OperationID: "read"}}
	assert.Equal(t, "read", item.Operation("GET").OperationID)
	assert.Nil(t, item.Operation("post"))
	assert.Nil(t, item.Operation("connect"))
}
