package container

import (
	"fmt"
	"sync"
)

// Factory is a function that builds a concrete value from the container.
// Factories typically close over the test context's property resolver, so the
// values they build see dynamic properties.
type Factory func(c *Container) any

// binding holds a registered factory and whether it is a singleton.
type binding struct {
	factory   Factory
	singleton bool
}

// Container is the binding/resolution backbone of a test application context.
// It keeps the slice of an IoC container that test setups need — transient
// bindings, singletons, pre-built instances, and typed resolution — and is
// rebuilt fresh for every suite, never shared across them.
//
//	// Spring: @Autowired fields resolved from the test ApplicationContext
//	ctx.Container().Singleton("client", func(c *container.Container) any {
//	    url, _ := resolver.Expand("${service.url}")
//	    return NewClient(url)
//	})
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → resolved singleton instance
	instances map[string]any
}

// New creates an empty container.
func New() *Container {
	return &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
	}
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient factory: a new instance is built on every Make.
func (c *Container) Bind(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, abstract)
	c.bindings[abstract] = &binding{factory: factory}
}

// Singleton registers a factory whose result is cached after first resolution.
func (c *Container) Singleton(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, abstract)
	c.bindings[abstract] = &binding{factory: factory, singleton: true}
}

// Instance registers a pre-built value as a singleton.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, abstract)
	c.instances[abstract] = instance
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container. An unknown abstract is a
// programmer error and panics, naming the abstract.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	if inst, ok := c.instances[abstract]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[abstract]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	instance := b.factory(c)
	if b.singleton {
		c.mu.Lock()
		c.instances[abstract] = instance
		c.mu.Unlock()
	}
	return instance
}

// Bound returns true if an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasBinding := c.bindings[abstract]
	_, hasInstance := c.instances[abstract]
	return hasBinding || hasInstance
}

// Flush resets the container. Suites own their context, so this is only
// useful in tests of the container itself.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.instances = make(map[string]any)
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	client := container.Resolve[*Client](c, "client")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}
