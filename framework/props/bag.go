package props

import "strings"

// Pair is a single key/value property entry.
type Pair struct {
	Key   string
	Value string
}

// Bag is an ordered collection of property pairs, as returned by a provider
// function. Order is preserved and duplicate keys are kept; they are resolved
// later, when the bag is merged into a Set.
//
//	// Spring: return TestPropertyValues.of("jdbc=" + container.getJdbcUrl());
//	return props.Of("jdbc=" + server.URL)
type Bag struct {
	pairs []Pair
}

// Of builds a Bag from "key=value" strings, preserving order. Each string is
// split at its first '='; a string without '=' becomes a key with an empty
// value.
func Of(pairs ...string) *Bag {
	b := &Bag{}
	return b.And(pairs...)
}

// And appends more "key=value" strings and returns the same Bag for chaining.
//
//	// Spring: TestPropertyValues.of("first=001").and("second=002")
//	props.Of("first=001").And("second=002")
func (b *Bag) And(pairs ...string) *Bag {
	for _, p := range pairs {
		key, value, _ := strings.Cut(p, "=")
		b.pairs = append(b.pairs, Pair{Key: key, Value: value})
	}
	return b
}

// Pair appends a single pre-split entry, useful when the value may itself
// contain '='.
func (b *Bag) Pair(key, value string) *Bag {
	b.pairs = append(b.pairs, Pair{Key: key, Value: value})
	return b
}

// Pairs returns a copy of the entries in declaration order.
func (b *Bag) Pairs() []Pair {
	out := make([]Pair, len(b.pairs))
	copy(out, b.pairs)
	return out
}

// Len returns the number of entries, duplicates included.
func (b *Bag) Len() int { return len(b.pairs) }
