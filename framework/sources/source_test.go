package sources_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/km-arc/go-dynprops/framework/props"
	"github.com/km-arc/go-dynprops/framework/sources"
)

// ── Chain precedence ─────────────────────────────────────────────────────────

func TestChain_FirstMatchWins(t *testing.T) {
	chain := sources.NewChain(
		sources.NewMap("high", map[string]string{"key": "high-value"}),
		sources.NewMap("low", map[string]string{"key": "low-value", "only-low": "x"}),
	)

	if got, _ := chain.Lookup("key"); got != "high-value" {
		t.Errorf("key: got %q, want %q", got, "high-value")
	}
	if got, _ := chain.Lookup("only-low"); got != "x" {
		t.Errorf("only-low: got %q, want %q", got, "x")
	}
}

func TestChain_AddFirstTakesPrecedence(t *testing.T) {
	chain := sources.NewChain(sources.NewMap("static", map[string]string{"key": "static"}))
	chain.AddFirst(sources.NewMap("dynamic", map[string]string{"key": "dynamic"}))

	if got, _ := chain.Lookup("key"); got != "dynamic" {
		t.Errorf("key: got %q, want %q", got, "dynamic")
	}
	if diff := cmp.Diff([]string{"dynamic", "static"}, chain.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}
}

func TestChain_AddLastIsFallback(t *testing.T) {
	chain := sources.NewChain(sources.NewMap("static", map[string]string{"key": "static"}))
	chain.AddLast(sources.NewMap("fallback", map[string]string{"key": "fallback", "extra": "e"}))

	if got, _ := chain.Lookup("key"); got != "static" {
		t.Errorf("key: got %q, want %q", got, "static")
	}
	if got, _ := chain.Lookup("extra"); got != "e" {
		t.Errorf("extra: got %q, want %q", got, "e")
	}
}

func TestChain_MissingKey(t *testing.T) {
	chain := sources.NewChain()
	if _, ok := chain.Lookup("anything"); ok {
		t.Error("empty chain should not resolve any key")
	}
}

// ── Map / FromSet ────────────────────────────────────────────────────────────

func TestNewMap_CopiesInput(t *testing.T) {
	values := map[string]string{"a": "1"}
	src := sources.NewMap("m", values)
	values["a"] = "mutated"

	if got, _ := src.Lookup("a"); got != "1" {
		t.Errorf("a: got %q, want %q (source must copy its input)", got, "1")
	}
}

func TestFromSet_SnapshotsTheSet(t *testing.T) {
	set := props.NewSet()
	set.Put("port", "8080")

	src := sources.FromSet("dynamic-properties", set)
	set.Put("port", "9090") // after publication; must not be visible

	if got, _ := src.Lookup("port"); got != "8080" {
		t.Errorf("port: got %q, want %q", got, "8080")
	}
	if src.Name() != "dynamic-properties" {
		t.Errorf("Name: got %q, want %q", src.Name(), "dynamic-properties")
	}
}

// ── Env ──────────────────────────────────────────────────────────────────────

func TestEnv_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("DYNPROPS_TEST_KEY", "from-env")

	src := sources.Env()
	if got, _ := src.Lookup("DYNPROPS_TEST_KEY"); got != "from-env" {
		t.Errorf("got %q, want %q", got, "from-env")
	}
	if _, ok := src.Lookup("DYNPROPS_TEST_ABSENT"); ok {
		t.Error("unset variable should not resolve")
	}
}

// ── Dotenv ───────────────────────────────────────────────────────────────────

func TestDotenv_ReadsFile(t *testing.T) {
	src, err := sources.Dotenv("dotenv", "testdata/app.env")
	if err != nil {
		t.Fatalf("Dotenv: %v", err)
	}

	tests := []struct{ key, want string }{
		{"DB_HOST", "localhost"},
		{"DB_PORT", "5432"},
		{"APP_NAME", "dynprops"},
	}
	for _, tt := range tests {
		if got, _ := src.Lookup(tt.key); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDotenv_EarlierFileWins(t *testing.T) {
	src, err := sources.Dotenv("dotenv", "testdata/app.env", "testdata/override.env")
	if err != nil {
		t.Fatalf("Dotenv: %v", err)
	}

	if got, _ := src.Lookup("DB_HOST"); got != "localhost" {
		t.Errorf("DB_HOST: got %q, want %q (first file wins)", got, "localhost")
	}
	if got, _ := src.Lookup("DB_USER"); got != "admin" {
		t.Errorf("DB_USER: got %q, want %q", got, "admin")
	}
}

func TestDotenv_MissingFileIsAnError(t *testing.T) {
	if _, err := sources.Dotenv("dotenv", "testdata/nope.env"); err == nil {
		t.Error("missing dotenv file should be an error")
	}
}

// ── YAML ─────────────────────────────────────────────────────────────────────

func TestYAML_FlattensNestedKeys(t *testing.T) {
	src, err := sources.YAML("app", "testdata/app.yaml")
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}

	tests := []struct{ key, want string }{
		{"app.name", "dynprops"},
		{"app.debug", "true"},
		{"db.host", "localhost"},
		{"db.port", "5432"},
		{"timeout", "30"},
	}
	for _, tt := range tests {
		if got, _ := src.Lookup(tt.key); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestYAML_MissingFileIsAnError(t *testing.T) {
	if _, err := sources.YAML("app", "testdata/nope.yaml"); err == nil {
		t.Error("missing yaml file should be an error")
	}
}
