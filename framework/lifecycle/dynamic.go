package lifecycle

import (
	"github.com/km-arc/go-dynprops/framework/provider"
	"github.com/km-arc/go-dynprops/framework/sources"
)

// SourceName is the name the published dynamic source carries in the chain.
const SourceName = "dynamic-properties"

// DynamicProperties is the framework-supplied extension that publishes
// runtime-computed properties. On BeforeAll it discovers the suite's
// providers, validates their shape, invokes them in discovery order, merges
// the bags last-write-wins, and — when anything was produced — prepends the
// merged set to the source chain, so a dynamic value overrides a static one
// for the same key. A suite with no reachable providers publishes nothing.
//
// Register it after any extension that starts the resources your providers
// read:
//
//	ctx := lifecycle.New(suite).Use(startServer, lifecycle.DynamicProperties{})
type DynamicProperties struct{}

// BeforeAll implements Extension.
func (DynamicProperties) BeforeAll(ctx *Context) error {
	entries, err := provider.Discover(ctx.Suite())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Logger().Debug("no dynamic property providers", "suite", ctx.Suite().Name())
		return nil
	}
	if err := provider.Validate(entries); err != nil {
		return err
	}
	set, err := provider.Invoke(entries)
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		return nil
	}
	ctx.Sources().AddFirst(sources.FromSet(SourceName, set))
	ctx.Logger().Debug("published dynamic properties",
		"suite", ctx.Suite().Name(), "providers", len(entries), "keys", set.Len())
	return nil
}
