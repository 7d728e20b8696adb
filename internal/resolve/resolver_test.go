package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-apiref/internal/resolve"
	"github.com/goliatone/go-apiref/pkg/openapi"
)

const components = `
openapi: 3.1.0
paths: {}
components:
  schemas:
    User:
      type: object
    Alias:
      $ref: '#/components/schemas/User'
    AliasOfAlias:
      $ref: '#/components/schemas/Alias'
    Loop:
      $ref: '#/components/schemas/Loop'
    PingA:
      $ref: '#/components/schemas/PingB'
    PingB:
      $ref: '#/components/schemas/PingA'
    a/b:
      type: string
  parameters:
    Limit:
      name: limit
      in: query
    LimitAlias:
      $ref: '#/components/parameters/Limit'
  responses:
    NotFound:
      description: missing
  requestBodies:
    Upload:
      $ref: '#/components/requestBodies/Gone'
  headers:
    Rate:
      schema:
        type: integer
  securitySchemes:
    bearer:
      type: http
      scheme: bearer
`

func newResolver(t *testing.T, misses *[]resolve.Miss) *resolve.Resolver {
	t.Helper()
	spec, err := openapi.ParseSpec([]byte(components))
	require.NoError(t, err)
	return resolve.New(spec, resolve.WithObserver(func(m resolve.Miss) {
		*misses = append(*misses, m)
	}))
}

func TestResolverFollowsChains(t *testing.T) {
	var misses []resolve.Miss
	r := newResolver(t, &misses)

	direct, ok := r.Schema(&openapi.Schema{Ref: "#/components/schemas/User"}, nil)
	require.True(t, ok)
	viaTwo, ok := r.Schema(&openapi.Schema{Ref: "#/components/schemas/AliasOfAlias"}, nil)
	require.True(t, ok)
	assert.Same(t, direct, viaTwo)

	param, ok := r.Parameter(&openapi.Parameter{Ref: "#/components/parameters/LimitAlias"}, nil)
	require.True(t, ok)
	assert.Equal(t, "limit", param.Name)

	resp, ok := r.Response(&openapi.Response{Ref: "#/components/responses/NotFound"}, nil)
	require.True(t, ok)
	assert.Equal(t, "missing", resp.Description)

	header, ok := r.Header(&openapi.Header{Ref: "#/components/headers/Rate"}, nil)
	require.True(t, ok)
	require.NotNil(t, header.Schema)

	scheme, ok := r.SecuritySchemeByName("bearer")
	require.True(t, ok)
	assert.Equal(t, "bearer", scheme.Scheme)

	escaped, ok := r.Schema(&openapi.Schema{Ref: resolve.Ref(resolve.KindSchema, "a/b")}, nil)
	require.True(t, ok)
	name, _ := escaped.Type.Single()
	assert.Equal(t, "string", name)

	assert.Empty(t, misses)
}

func TestResolverInlineObjectsPassThrough(t *testing.T) {
	var misses []resolve.Miss
	r := newResolver(t, &misses)

	inline := &openapi.Schema{Type: openapi.Type("boolean")}
	got, ok := r.Schema(inline, nil)
	require.True(t, ok)
	assert.Same(t, inline, got)

	_, ok = r.Schema(nil, nil)
	assert.False(t, ok)
	assert.Empty(t, misses)
}

func TestResolverReportsMisses(t *testing.T) {
	var misses []resolve.Miss
	r := newResolver(t, &misses)

	_, ok := r.Schema(&openapi.Schema{Ref: "#/components/schemas/Nope"}, nil)
	assert.False(t, ok)
	_, ok = r.Schema(&openapi.Schema{Ref: "#/components/schemas/Loop"}, nil)
	assert.False(t, ok)
	_, ok = r.Schema(&openapi.Schema{Ref: "#/components/schemas/PingA"}, nil)
	assert.False(t, ok)
	_, ok = r.Schema(&openapi.Schema{Ref: "other.yaml#/components/schemas/User"}, nil)
	assert.False(t, ok)
	_, ok = r.RequestBody(&openapi.RequestBody{Ref: "#/components/requestBodies/Upload"}, nil)
	assert.False(t, ok)
	_, ok = r.Schema(&openapi.Schema{Ref: "#/components/parameters/Limit"}, nil)
	assert.False(t, ok)

	reasons := make([]resolve.Reason, 0, len(misses))
	for _, m := range misses {
		reasons = append(reasons, m.Reason)
	}
	assert.Equal(t, []resolve.Reason{
		resolve.ReasonMissing,
		resolve.ReasonCycle,
		resolve.ReasonCycle,
		resolve.ReasonForeign,
		resolve.ReasonMissing,
		resolve.ReasonForeign,
	}, reasons)
	assert.Equal(t, resolve.KindRequestBody, misses[4].Kind)
}

func TestResolverSharedChainBreaksCycles(t *testing.T) {
	var misses []resolve.Miss
	r := newResolver(t, &misses)

	chain := resolve.NewChain()
	_, ok := r.Schema(&openapi.Schema{Ref: "#/components/schemas/User"}, chain)
	require.True(t, ok)
	assert.True(t, chain.Contains("schemas/User"))

	_, ok = r.Schema(&openapi.Schema{Ref: "#/components/schemas/AliasOfAlias"}, chain)
	assert.False(t, ok)
	require.Len(t, misses, 1)
	assert.Equal(t, resolve.ReasonCycle, misses[0].Reason)
}

func TestResolverDepthCap(t *testing.T) {
	var misses []resolve.Miss
	spec := openapi.MustParseSpec([]byte(components))
	r := resolve.New(spec, resolve.WithMaxDepth(1), resolve.WithObserver(func(m resolve.Miss) {
		misses = append(misses, m)
	}))

	_, ok := r.Schema(&openapi.Schema{Ref: "#/components/schemas/Alias"}, nil)
	assert.False(t, ok)
	require.Len(t, misses, 1)
	assert.Equal(t, resolve.ReasonDepth, misses[0].Reason)
}

func TestResolverWithoutComponents(t *testing.T) {
	r := resolve.New(&openapi.Spec{})
	_, ok := r.Schema(&openapi.Schema{Ref: "#/components/schemas/User"}, nil)
	assert.False(t, ok)
}

func TestChainMarkReset(t *testing.T) {
	chain := resolve.NewChain()
	require.True(t, chain.Enter("a"))
	mark := chain.Mark()
	require.True(t, chain.Enter("b"))
	require.True(t, chain.Enter("c"))
	assert.False(t, chain.Enter("b"))

	chain.Reset(mark)
	assert.Equal(t, []string{"a"}, chain.Keys())
	assert.False(t, chain.Contains("c"))

	chain.Leave("a")
	assert.Equal(t, 0, chain.Depth())
}

func TestName(t *testing.T) {
	name, ok := resolve.Name(resolve.KindSchema, "#/components/schemas/a~1b~0c")
	require.True(t, ok)
	assert.Equal(t, "a/b~c", name)

	_, ok = resolve.Name(resolve.KindSchema, "#/components/schemas/User/properties/id")
	assert.False(t, ok)
	_, ok = resolve.Name(resolve.KindSchema, "#/components/schemas/")
	assert.False(t, ok)
}
