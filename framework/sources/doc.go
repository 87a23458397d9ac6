// Package sources implements the property-source chain that dynamic and
// static properties are published into, and the placeholder resolver that
// reads values back out.
//
// It mirrors the slice of Spring's Environment that a test context needs:
//
//	// Spring: environment.getPropertySources().addFirst(source)
//	chain.AddFirst(sources.FromSet("dynamic-properties", set))
//
// # Chain
//
// A Chain is an ordered list of sources. Lookup walks front to back and the
// first source that knows the key wins, so AddFirst gives a source the
// highest precedence and AddLast the lowest.
//
// # Static sources
//
//	sources.NewMap("defaults", map[string]string{"db.host": "localhost"})
//	sources.Env()                          // process environment
//	sources.Dotenv("dotenv", ".env")       // godotenv files
//	sources.YAML("app", "testdata/app.yaml") // nested keys flattened to a.b.c
//
// # Resolver
//
// Resolver expands ${key} and ${key:default} placeholders against a chain:
//
//	// Spring: @Value("${jdbc}")
//	url, err := resolver.Expand("${service.url}/health")
//
// An unresolvable placeholder without a default is an error naming the key —
// never a silent empty string.
package sources
