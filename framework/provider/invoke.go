package provider

import (
	"github.com/pkg/errors"

	"github.com/km-arc/go-dynprops/framework/props"
)

// Invoke calls every provider with no arguments, in discovery order, and
// folds the returned bags into one merged set. Collisions are resolved
// last-write-wins across the whole ordered sequence: a later provider's value
// replaces an earlier one, and within a single bag a later entry wins too.
//
// A provider error is not retried — dynamic properties read resources that
// were initialized before the lifecycle hook ran, so a failure here is a real
// setup problem. It propagates wrapped with the provider's identity and fails
// the suite. A nil bag is treated as empty.
func Invoke(entries []Entry) (*props.Set, error) {
	set := props.NewSet()
	for _, e := range entries {
		fn, reason := normalize(e.fn)
		if reason != "" {
			return nil, &ConfigError{Provider: e.Name, Holder: e.Holder, Reason: reason}
		}
		bag, err := fn()
		if err != nil {
			return nil, errors.Wrapf(err, "dynamic properties: provider %q declared by %s", e.Name, e.Holder)
		}
		if bag == nil {
			continue
		}
		set.Merge(bag)
	}
	return set, nil
}
