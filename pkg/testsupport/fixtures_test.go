package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFixtureSpec(t *testing.T) {
	spec := FixtureSpec(t, Petstore)
	if spec.Info.Title != "Petstore" {
		t.Fatalf("unexpected title %q", spec.Info.Title)
	}
	if got := spec.Paths.Keys(); len(got) != 2 || got[0] != "/pets" {
		t.Fatalf("unexpected paths %v", got)
	}
}

func TestCompareJSONGolden(t *testing.T) {
	t.Setenv(UpdateGoldensEnv, "")
	path := filepath.Join(t.TempDir(), "value.golden.json")
	if err := os.WriteFile(path, []byte(`{"b": [1, 2], "a": "x"}`), 0o600); err != nil {
		t.Fatalf("write golden: %v", err)
	}

	value := map[string]any{"a": "x", "b": []int{1, 2}}
	if diff := CompareJSONGolden(t, path, value); diff != "" {
		t.Fatalf("unexpected diff:\n%s", diff)
	}
	if diff := CompareJSONGolden(t, path, map[string]any{"a": "y"}); diff == "" {
		t.Fatalf("expected a diff")
	}
}

func TestWriteMaybeGolden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")

	t.Setenv(UpdateGoldensEnv, "")
	if WriteMaybeGolden(t, path, []byte("data")) {
		t.Fatalf("golden written without %s", UpdateGoldensEnv)
	}

	t.Setenv(UpdateGoldensEnv, "1")
	if !WriteMaybeGolden(t, path, []byte("data")) {
		t.Fatalf("expected golden to be written")
	}
	if got := MustReadGoldenString(t, path); got != "data" {
		t.Fatalf("unexpected golden content %q", got)
	}
}
