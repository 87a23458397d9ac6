// Package container provides the small IoC container backing a test
// application context.
//
// It is a pared-down sibling of go-laravel's container: transient bindings,
// singletons, pre-built instances, and typed resolution via Resolve[T].
// Contextual bindings, tags, and decoration were dropped — a per-suite test
// context has no use for them.
//
//	c := container.New()
//	c.Singleton("client", func(c *container.Container) any { return NewClient() })
//	client := container.Resolve[*Client](c, "client")
//
// Each suite gets its own container; nothing is shared or cached across
// suites.
package container
