package reference

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-apiref/pkg/testsupport"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/admin"); got != "/admin/docs" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("admin"); got != "/admin/docs" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/admin/", WithRoutePath("api/reference")); got != "/admin/api/reference" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := AssetsPath("/admin/docs"); got != "/admin/docs/assets/" {
		t.Fatalf("unexpected assets path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	doc := testsupport.FixtureDocument(t, testsupport.Petstore)
	pattern, err := RegisterRoutes(mux, "/admin", WithDocument(doc))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/admin/docs" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?format=json", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/admin"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestComponent_RegisterRoutesAndOptions(t *testing.T) {
	doc := testsupport.FixtureDocument(t, testsupport.Petstore)
	c := New(WithDocument(doc), WithRoutePath("/reference"), WithTitle("Pets"))

	if got := c.Options().RoutePath; got != "/reference" {
		t.Fatalf("unexpected route path: %q", got)
	}

	mux := http.NewServeMux()
	pattern, err := c.RegisterRoutes(mux, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/reference" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?format=json", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestComponent_NilUsesDefaults(t *testing.T) {
	var c *Component
	if got := c.Options().RoutePath; got != "/docs" {
		t.Fatalf("unexpected default route path: %q", got)
	}
}
