// Package lifecycle orchestrates what happens between declaring a suite and
// using its test application context: an ordered list of extensions runs once
// per suite, before the context may be used, and the framework-supplied
// DynamicProperties extension publishes runtime-computed properties into the
// context's source chain.
//
// # Extension ordering
//
// Extensions run in registration order, exactly once, stopping at the first
// error. That order is the user's sequencing contract — an extension that
// starts an external resource must be registered before DynamicProperties so
// provider functions can read the started resource:
//
//	// Spring/JUnit: @ExtendWith order; @Testcontainers starts containers
//	// before SpringExtension builds the application context.
//	ctx := lifecycle.New(suite).
//	    Use(startPostgres, lifecycle.DynamicProperties{})
//	if err := ctx.Start(); err != nil {
//	    t.Fatal(err) // configuration and provider errors surface here,
//	                 // before any test body runs
//	}
//
// # The test application context
//
// A Context bundles a per-suite IoC container and a property-source chain.
// Static sources (env, dotenv, yaml, literal maps) are seeded at
// construction; DynamicProperties prepends the merged provider output, so a
// dynamic value overrides a static default for the same key:
//
//	ctx := lifecycle.New(suite,
//	    lifecycle.WithStaticSources(sources.NewMap("defaults", defaults)))
//	...
//	url, err := ctx.Resolver().Expand("${service.url}")
//
// Everything is rebuilt per suite and discarded afterwards; no state crosses
// suite boundaries and a single pass is strictly sequential.
package lifecycle
