package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRouteParameterSchemaValidate(t *testing.T) {
	valid := []RouteParameterSchema{
		ArraySchema(ObjectSchema(RouteParameters{"id": {RouteParameterSchema: StringSchema(StringConstraints{Pattern: "x"})}})),
		FileSchema(),
		NumericSchema(SchemaTypeInteger, NumericConstraints{Format: "int64", Default: 3}),
		BooleanSchema(false),
		NullSchema(),
		NeverSchema().WithDescription("unsupported"),
		OtherSchema("decimal"),
	}
	for _, schema := range valid {
		if err := schema.Validate(); err != nil {
			t.Fatalf("%s: unexpected error %v", schema.Type, err)
		}
	}

	stray := BooleanSchema(nil)
	stray.Pattern = "^a$"
	stray.Items = &RouteParameterSchema{Type: SchemaTypeNull}
	err := stray.Validate()
	if err == nil || !strings.Contains(err.Error(), "items, pattern") {
		t.Fatalf("expected stray field error, got %v", err)
	}

	nested := ObjectSchema(RouteParameters{"bad": {RouteParameterSchema: RouteParameterSchema{Type: SchemaTypeFile, Format: "binary"}}})
	if err := nested.Validate(); err == nil || !strings.Contains(err.Error(), `property "bad"`) {
		t.Fatalf("expected nested error, got %v", err)
	}

	if err := (RouteParameterSchema{Type: SchemaTypeArray}).Validate(); err == nil {
		t.Fatalf("array without items should fail")
	}
	if err := (RouteParameterSchema{}).Validate(); err == nil {
		t.Fatalf("untagged schema should fail")
	}
	if got := NumericSchema(SchemaTypeString, NumericConstraints{}); !got.IsNever() {
		t.Fatalf("non numeric tag should be never, got %s", got.Type)
	}
}

func TestRouteParameterFlattensOnEncode(t *testing.T) {
	param := RouteParameter{
		Title:                "Limit",
		Required:             true,
		RouteParameterSchema: NumericSchema(SchemaTypeInteger, NumericConstraints{Minimum: ptrFloat(1)}),
	}
	raw, err := json.Marshal(param)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"title":"Limit","required":true,"type":"integer","minimum":1}`
	if string(raw) != want {
		t.Fatalf("encoded %s, want %s", raw, want)
	}

	optional, _ := json.Marshal(RouteParameter{RouteParameterSchema: ObjectSchema(nil)})
	if string(optional) != `{"type":"object"}` {
		t.Fatalf("encoded %s", optional)
	}
}

func TestMapContentType(t *testing.T) {
	cases := map[string]ContentType{
		"application/json":                  ContentTypeJSON,
		"Application/JSON; charset=utf-8":   ContentTypeJSON,
		"application/x-www-form-urlencoded": ContentTypeURLEncoded,
		"multipart/form-data; boundary=abc": ContentTypeMultipart,
		"text/csv":                          ContentTypeJSON,
		"":                                  ContentTypeJSON,
		"multipart/form-data;;broken=":      ContentTypeMultipart,
	}
	for in, want := range cases {
		if got := MapContentType(in); got != want {
			t.Fatalf("MapContentType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	cases := map[string]int{"200": 200, " 404 ": 404, "default": 500, "2XX": 500, "": 500}
	for in, want := range cases {
		if got := StatusCode(in); got != want {
			t.Fatalf("StatusCode(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags([]string{"Users > Admin", "Users", "A>B", " "})
	want := [][]string{{"Users", "Admin"}, {"Users"}, {"A>B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if SplitTags(nil) == nil {
		t.Fatalf("expected non-nil empty tag list")
	}
}

func TestParseMethod(t *testing.T) {
	method, err := ParseMethod(" PATCH ")
	if err != nil || method != MethodPatch {
		t.Fatalf("ParseMethod = %q, %v", method, err)
	}
	if _, err := ParseMethod("connect"); err == nil {
		t.Fatalf("expected error for connect")
	}
}

func ptrFloat(v float64) *float64 { return &v }
