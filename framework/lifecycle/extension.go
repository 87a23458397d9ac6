package lifecycle

// Extension is a before-context hook, invoked exactly once per suite in
// registration order. An extension that starts an external resource must be
// registered before one that reads the resource's address.
//
//	// Spring/JUnit: org.junit.jupiter.api.extension.BeforeAllCallback
type Extension interface {
	BeforeAll(ctx *Context) error
}

// AfterAllExtension is implemented by extensions that also need teardown,
// typically to stop a resource they started. AfterAll hooks run in reverse
// registration order when the Context stops.
type AfterAllExtension interface {
	AfterAll(ctx *Context) error
}

// ExtensionFunc adapts a bare function to the Extension interface.
//
//	ctx.Use(lifecycle.ExtensionFunc(func(ctx *lifecycle.Context) error {
//	    return startBroker()
//	}))
type ExtensionFunc func(ctx *Context) error

// BeforeAll implements Extension.
func (f ExtensionFunc) BeforeAll(ctx *Context) error { return f(ctx) }
