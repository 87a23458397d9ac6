// Package provider implements the core of go-dynprops: discovering a suite's
// dynamic property providers, validating their shape, and invoking them into
// one merged property set.
//
// It is the explicit-registration counterpart of Spring Boot's
// @DynamicTestProperty resolution. Where Spring scans a test class for
// annotated static methods, Go code registers provider functions on a Suite:
//
//	// Spring:
//	// @DynamicTestProperty
//	// private static TestPropertyValues props() {
//	//     return TestPropertyValues.of("jdbc=" + postgres.getJdbcUrl());
//	// }
//	suite := provider.NewSuite("PostgresRepositoryTest").
//	    Provide("props", func() *props.Bag {
//	        return props.Of("jdbc=" + postgres.JdbcURL())
//	    })
//
// A Suite may inherit another suite's providers (the superclass chain) and
// include shared holder Groups (the @IncludeDynamicProperty analog):
//
//	// Spring: @IncludeDynamicProperty(PostgresProperties.class)
//	pg := provider.NewGroup("postgres").Provide("jdbc", jdbcProvider)
//	suite := provider.NewSuite("OrderServiceTest").Inherit(base).Include(pg)
//
// # Invocation order
//
// Discovery walks the inheritance chain root-to-leaf. Each suite in the chain
// contributes its own providers first, then its included groups in
// declaration order. Combined with the merger's last-write-wins policy this
// means a child suite overrides its parent's keys, and an included group
// overrides both.
//
// # Pipeline
//
// Discover is pure enumeration — nothing is invoked. Validate fails fast on
// the first misdeclared provider; a bad provider fails the whole suite, it is
// never silently skipped. Invoke calls each provider with no arguments in
// discovery order and folds the bags last-write-wins. Provider errors are not
// retried; they propagate and fail the suite setup before any test body runs.
//
// Providers are expected to be free functions with no captured mutable state,
// reading only resources that were initialized before the lifecycle hook ran.
// That contract is documented, not enforced.
package provider
