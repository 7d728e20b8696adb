package html_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-apiref/pkg/model"
	"github.com/goliatone/go-apiref/pkg/render"
	"github.com/goliatone/go-apiref/pkg/renderers/html"
	"github.com/goliatone/go-apiref/pkg/view"
)

func intPtr(v int) *int { return &v }

func reference() *view.Reference {
	minimum := 1.0
	return view.MustNew(&model.APIReferenceCore{
		Title:      "Pets <Store>",
		Version:    "1.2.0",
		DomainURLs: []string{"https://api.example.com"},
		Authorization: &model.Authorization{Requirements: []model.AuthRequirement{{
			Schemes: []model.AuthScheme{{Name: "bearerAuth", Type: "http", Scheme: "bearer"}},
		}}},
		Routes: []model.Route{
			{
				ID:          "listPets",
				Path:        "/pets",
				Title:       "List pets",
				Description: "Returns pets.\n\nSecond <script>alert(1)</script>paragraph.",
				Method:      model.MethodGet,
				Tags:        [][]string{{"Pets"}},
				QueryParams: model.RouteParameters{
					"limit": {
						Description:          "Page size",
						Required:             true,
						RouteParameterSchema: model.NumericSchema(model.SchemaTypeInteger, model.NumericConstraints{Minimum: &minimum}),
					},
				},
				Responses: map[int]model.RouteResponse{
					500: {Description: "Unexpected"},
					200: {
						ContentType: model.ContentTypeJSON,
						Description: "OK",
						Body: ptr(model.ArraySchema(model.ObjectSchema(model.RouteParameters{
							"name": {Required: true, RouteParameterSchema: model.StringSchema(model.StringConstraints{MinLength: intPtr(1)})},
						}))),
					},
				},
			},
			{
				Path:          "/pets",
				Title:         "/pets",
				Method:        model.MethodPost,
				Deprecated:    true,
				Tags:          [][]string{{"Pets", "Admin"}},
				Authorization: &model.Authorization{Requirements: []model.AuthRequirement{}},
				ContentType:   model.ContentTypeMultipart,
				Body: ptr(model.ObjectSchema(model.RouteParameters{
					"photo": {RouteParameterSchema: model.FileSchema()},
				})),
				Responses: map[int]model.RouteResponse{201: {Description: "Created"}},
			},
			{Path: "/health", Title: "/health", Method: model.MethodHead, Tags: [][]string{}, Responses: map[int]model.RouteResponse{}},
		},
	})
}

func ptr[T any](v T) *T { return &v }

func renderPage(t *testing.T, r *html.Renderer, opts render.RenderOptions) string {
	t.Helper()
	out, err := r.Render(context.Background(), reference(), opts)
	require.NoError(t, err)
	return string(out)
}

func TestRenderer_Page(t *testing.T) {
	renderer, err := html.New()
	require.NoError(t, err)
	assert.Equal(t, "html", renderer.Name())
	assert.Equal(t, "text/html; charset=utf-8", renderer.ContentType())

	page := renderPage(t, renderer, render.RenderOptions{})

	assert.Contains(t, page, "<title>Pets &lt;Store&gt;</title>")
	assert.Contains(t, page, "--apiref-font")
	assert.Contains(t, page, `<code>https://api.example.com</code>`)
	assert.Contains(t, page, "bearerAuth (http bearer)")
	assert.Contains(t, page, `data-operation-id="listPets"`)
	assert.Contains(t, page, "<p>Returns pets.</p>")
	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "&gt;= 1")
	assert.Contains(t, page, "array&lt;object&gt;")
	assert.Contains(t, page, "min length 1")
	assert.Contains(t, page, "is-deprecated")
	assert.Contains(t, page, "No authorization")
	assert.Contains(t, page, `<code>multipart/form-data</code>`)
	assert.Contains(t, page, `id="tag-pets-admin"`)
	assert.Contains(t, page, `id="untagged"`)

	assert.Less(t, strings.Index(page, ">200<"), strings.Index(page, ">500<"))
}

func TestRenderer_LocalizedLabelsAndTitle(t *testing.T) {
	renderer, err := html.New(html.WithInlineStyles(false))
	require.NoError(t, err)

	page := renderPage(t, renderer, render.RenderOptions{
		Title:  "Tienda",
		Locale: "es",
		Translator: render.TranslatorFunc(func(_ string, key string, _ ...any) (string, error) {
			if key == render.LabelResponses {
				return "Respuestas", nil
			}
			return "", nil
		}),
	})
	assert.Contains(t, page, "<title>Tienda</title>")
	assert.Contains(t, page, "<h4>Respuestas</h4>")
	assert.Contains(t, page, "Query parameters")
	assert.NotContains(t, page, "--apiref-font")
}

func TestRenderer_Theme(t *testing.T) {
	renderer, err := html.New()
	require.NoError(t, err)

	page := renderPage(t, renderer, render.RenderOptions{Theme: &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{"--brand": "#123456", "--evil": "red;}</style>"},
		AssetURL: func(key string) string {
			if key == html.AssetStylesheet {
				return "/themes/acme/apiref.css"
			}
			return ""
		},
	}})
	assert.Contains(t, page, `<link rel="stylesheet" href="/themes/acme/apiref.css">`)
	assert.Contains(t, page, "--brand: #123456;")
	assert.Contains(t, page, "--evil: red/style;")
	assert.Contains(t, page, `data-theme="acme"`)
}

func TestRenderer_ThemePartialSelectsTemplate(t *testing.T) {
	files := fstest.MapFS{
		"reference.html": {Data: []byte("default")},
		"compact.html":   {Data: []byte("{{ page.Title }}: {% for s in page.Sections %}{{ s.Name }};{% endfor %}")},
	}
	renderer, err := html.New(html.WithTemplatesFS(files))
	require.NoError(t, err)

	page := renderPage(t, renderer, render.RenderOptions{Theme: &theme.RendererConfig{
		Partials: map[string]string{html.PartialReference: "compact"},
	}})
	assert.Equal(t, "Pets &lt;Store&gt;: Pets;Admin;Other;", page)

	assert.Equal(t, "default", renderPage(t, renderer, render.RenderOptions{}))
}

func TestRenderer_Errors(t *testing.T) {
	renderer, err := html.New()
	require.NoError(t, err)

	_, err = renderer.Render(context.Background(), nil, render.RenderOptions{})
	assert.ErrorIs(t, err, render.ErrNilReference)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = renderer.Render(ctx, reference(), render.RenderOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
