package provider

import "github.com/km-arc/go-dynprops/framework/props"

// Func is the canonical provider signature: no arguments, one bag of
// properties computed at call time.
type Func func() *props.Bag

// FuncE is the error-returning variant for providers whose computation can
// fail, for example querying a just-started resource for its address.
type FuncE func() (*props.Bag, error)

// Origin records how a discovered provider reached the suite.
type Origin int

const (
	// OriginOwn — declared directly on the suite.
	OriginOwn Origin = iota
	// OriginInherited — declared on an ancestor suite.
	OriginInherited
	// OriginIncluded — pulled in from a holder group.
	OriginIncluded
)

func (o Origin) String() string {
	switch o {
	case OriginOwn:
		return "own"
	case OriginInherited:
		return "inherited"
	case OriginIncluded:
		return "included"
	default:
		return "unknown"
	}
}

// Entry identifies one discovered provider: its registered name, the suite or
// group that declared it, and how it reached the suite. The function is held
// untyped until Validate confirms its shape.
type Entry struct {
	Name   string
	Holder string
	Origin Origin

	fn any
}

// registration is a provider as declared, before discovery stamps it with a
// holder and origin.
type registration struct {
	name string
	fn   any
}

// ── Group ────────────────────────────────────────────────────────────────────

// Group is a holder of providers meant to be shared across suites.
//
//	// Spring: the class referenced by @IncludeDynamicProperty, containing
//	// @DynamicTestProperty methods.
//	pg := provider.NewGroup("postgres").
//	    Provide("jdbc", func() *props.Bag { return props.Of("jdbc=" + url()) })
type Group struct {
	name    string
	entries []registration
}

// NewGroup creates an empty holder group.
func NewGroup(name string) *Group { return &Group{name: name} }

// Provide registers a provider function under name and returns the Group for
// chaining. fn must be a func() *props.Bag or func() (*props.Bag, error);
// the shape is checked by Validate rather than here, so a misregistration
// fails the whole suite loudly instead of being skipped at declaration time.
func (g *Group) Provide(name string, fn any) *Group {
	g.entries = append(g.entries, registration{name: name, fn: fn})
	return g
}

// Name returns the group's diagnostic name.
func (g *Group) Name() string { return g.name }

// ── Suite ────────────────────────────────────────────────────────────────────

// Suite models one test class: its own providers, an optional parent suite,
// and any included holder groups. Suites are declaration-only; Discover turns
// them into an ordered entry list once per lifecycle pass.
type Suite struct {
	name     string
	parent   *Suite
	own      []registration
	includes []*Group
}

// NewSuite creates a suite with no providers.
func NewSuite(name string) *Suite { return &Suite{name: name} }

// Inherit sets the parent suite and returns the Suite for chaining. Discovery
// walks parents root-to-leaf, so this suite's providers run after — and
// therefore override — the parent's.
func (s *Suite) Inherit(parent *Suite) *Suite {
	s.parent = parent
	return s
}

// Provide registers one of the suite's own providers. See Group.Provide for
// the accepted function shapes.
func (s *Suite) Provide(name string, fn any) *Suite {
	s.own = append(s.own, registration{name: name, fn: fn})
	return s
}

// Include appends holder groups whose providers are discovered as if declared
// locally, after the suite's own providers, preserving declaration order.
//
//	// Spring: @IncludeDynamicProperty({KafkaProperties.class, PgProperties.class})
//	suite.Include(kafka, postgres)
func (s *Suite) Include(groups ...*Group) *Suite {
	s.includes = append(s.includes, groups...)
	return s
}

// Name returns the suite's diagnostic name.
func (s *Suite) Name() string { return s.name }
