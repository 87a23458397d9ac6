package sources

import (
	"strings"

	"github.com/pkg/errors"
)

// Resolver expands ${key} placeholders against a chain. A placeholder may
// carry a default after a colon, ${key:default}, used when no source knows
// the key. A placeholder with neither a value nor a default is an error —
// never a silent empty string.
//
//	// Spring: @Value("${jdbc}")
//	url, err := resolver.Expand("${service.url}/health")
type Resolver struct {
	chain *Chain
}

// NewResolver builds a resolver over chain.
func NewResolver(chain *Chain) *Resolver {
	return &Resolver{chain: chain}
}

// Get returns the raw value for key from the chain.
func (r *Resolver) Get(key string) (string, bool) {
	return r.chain.Lookup(key)
}

// Expand replaces every ${key} and ${key:default} placeholder in s. Expansion
// is a single pass; values are substituted literally, not re-expanded.
func (r *Resolver) Expand(s string) (string, error) {
	var out strings.Builder
	rest := s
	for {
		i := strings.Index(rest, "${")
		if i < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}
		out.WriteString(rest[:i])
		rest = rest[i+2:]

		j := strings.Index(rest, "}")
		if j < 0 {
			return "", errors.Errorf("sources: unterminated placeholder in %q", s)
		}
		key, def, hasDefault := strings.Cut(rest[:j], ":")
		rest = rest[j+1:]

		switch v, ok := r.chain.Lookup(key); {
		case ok:
			out.WriteString(v)
		case hasDefault:
			out.WriteString(def)
		default:
			return "", errors.Errorf("sources: unresolved placeholder ${%s}", key)
		}
	}
}
