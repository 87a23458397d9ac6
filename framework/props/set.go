package props

// Set is the merged property set: a key→value mapping that remembers the
// order in which keys were first inserted, so iteration is deterministic.
//
// Put is last-write-wins: a later value replaces an earlier one for the same
// key while the key keeps its original position.
type Set struct {
	keys   []string
	values map[string]string
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

// Put stores value under key, replacing any earlier value.
func (s *Set) Put(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Merge folds a Bag into the Set in entry order, so within one bag a later
// entry wins over an earlier one for the same key.
func (s *Set) Merge(b *Bag) {
	for _, p := range b.pairs {
		s.Put(p.Key, p.Value)
	}
}

// Get returns the value for key.
func (s *Set) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (s *Set) Len() int { return len(s.keys) }

// Keys returns the keys in first-insertion order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Map returns a copy of the mapping.
func (s *Set) Map() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
