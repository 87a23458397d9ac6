package provider

import "fmt"

// Discover enumerates the providers reachable from suite, in invocation
// order: the inheritance chain is walked root-to-leaf, and each suite in the
// chain contributes its own providers first, then its included groups in
// declaration order. Nothing is invoked here; discovery is pure enumeration
// and nothing is cached between passes — provider values such as mapped ports
// may change between runs.
//
// A suite with no reachable providers yields an empty slice, which is not an
// error. A nil included group is a ConfigError: the holder cannot be loaded.
func Discover(suite *Suite) ([]Entry, error) {
	lineage, err := lineageOf(suite)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for i := len(lineage) - 1; i >= 0; i-- { // root first
		level := lineage[i]

		origin := OriginInherited
		if level == suite {
			origin = OriginOwn
		}
		for _, reg := range level.own {
			entries = append(entries, Entry{Name: reg.name, Holder: level.name, Origin: origin, fn: reg.fn})
		}

		for n, g := range level.includes {
			if g == nil {
				return nil, &ConfigError{
					Holder: level.name,
					Reason: fmt.Sprintf("included holder group #%d is nil and cannot be loaded", n+1),
				}
			}
			for _, reg := range g.entries {
				entries = append(entries, Entry{Name: reg.name, Holder: g.name, Origin: OriginIncluded, fn: reg.fn})
			}
		}
	}
	return entries, nil
}

// lineageOf collects suite and its ancestors, most-derived first, rejecting
// inheritance cycles.
func lineageOf(suite *Suite) ([]*Suite, error) {
	seen := make(map[*Suite]bool)
	var lineage []*Suite
	for cur := suite; cur != nil; cur = cur.parent {
		if seen[cur] {
			return nil, &ConfigError{Holder: suite.name, Reason: "inheritance cycle detected"}
		}
		seen[cur] = true
		lineage = append(lineage, cur)
	}
	return lineage, nil
}
