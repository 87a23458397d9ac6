package sources

// Source supplies property values by key.
//
//	// Spring: org.springframework.core.env.PropertySource
type Source interface {
	// Name identifies the source in diagnostics.
	Name() string

	// Lookup returns the value for key, if this source has one.
	Lookup(key string) (string, bool)
}

// Chain is an ordered list of sources. Lookup walks front to back; the first
// source that knows the key wins.
type Chain struct {
	sources []Source
}

// NewChain builds a chain with the given sources, highest precedence first.
func NewChain(srcs ...Source) *Chain {
	return &Chain{sources: srcs}
}

// AddFirst prepends a source, giving it the highest precedence.
//
//	// Spring: environment.getPropertySources().addFirst(source)
func (c *Chain) AddFirst(s Source) {
	c.sources = append([]Source{s}, c.sources...)
}

// AddLast appends a source with the lowest precedence.
func (c *Chain) AddLast(s Source) {
	c.sources = append(c.sources, s)
}

// Lookup returns the value for key from the highest-precedence source that
// has it.
func (c *Chain) Lookup(key string) (string, bool) {
	for _, s := range c.sources {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Names returns the source names in precedence order.
func (c *Chain) Names() []string {
	out := make([]string, len(c.sources))
	for i, s := range c.sources {
		out[i] = s.Name()
	}
	return out
}

// Len returns the number of sources in the chain.
func (c *Chain) Len() int { return len(c.sources) }
