package sources

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-dynprops/framework/props"
)

// ── Map ──────────────────────────────────────────────────────────────────────

type mapSource struct {
	name   string
	values map[string]string
}

// NewMap builds a source over a literal map. The map is copied, so later
// mutation of the argument does not leak into the chain.
func NewMap(name string, values map[string]string) Source {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &mapSource{name: name, values: copied}
}

// FromSet wraps a merged property set as a source. The set is snapshotted at
// call time; provider results are never re-read after publication.
func FromSet(name string, set *props.Set) Source {
	return &mapSource{name: name, values: set.Map()}
}

func (s *mapSource) Name() string { return s.name }

func (s *mapSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// ── Env ──────────────────────────────────────────────────────────────────────

type envSource struct{}

// Env returns a source backed by the process environment. Lookups are live,
// not snapshotted, matching how tests set variables with t.Setenv.
func Env() Source { return envSource{} }

func (envSource) Name() string { return "env" }

func (envSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// ── Dotenv ───────────────────────────────────────────────────────────────────

// Dotenv reads godotenv files into a source. Files are read in order and an
// earlier file wins over a later one for the same key, matching
// godotenv.Load's no-override behaviour.
//
//	src, err := sources.Dotenv("dotenv", ".env", ".env.testing")
func Dotenv(name string, files ...string) (Source, error) {
	values := make(map[string]string)
	for _, f := range files {
		parsed, err := godotenv.Read(f)
		if err != nil {
			return nil, errors.Wrapf(err, "sources: reading dotenv file %s", f)
		}
		for k, v := range parsed {
			if _, ok := values[k]; !ok {
				values[k] = v
			}
		}
	}
	return &mapSource{name: name, values: values}, nil
}

// ── YAML ─────────────────────────────────────────────────────────────────────

// YAML reads a YAML file into a source, flattening nested mappings to dotted
// keys: {db: {host: x}} becomes "db.host". Scalar values are rendered with
// their default formatting, so 8 becomes "8" and true becomes "true".
//
//	src, err := sources.YAML("app", "testdata/app.yaml")
func YAML(name, path string) (Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "sources: reading yaml file %s", path)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "sources: parsing yaml file %s", path)
	}
	values := make(map[string]string)
	flatten("", doc, values)
	return &mapSource{name: name, values: values}, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flatten(key, child, out)
			continue
		}
		out[key] = fmt.Sprintf("%v", v)
	}
}
