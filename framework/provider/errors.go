package provider

import "fmt"

// ConfigError reports a provider setup mistake: a malformed registration, an
// unloadable holder, or a broken inheritance chain. It fails the whole suite
// before any test body runs; nothing is recovered silently.
type ConfigError struct {
	// Provider is the registered provider name, empty when the error concerns
	// the suite or a holder as a whole.
	Provider string
	// Holder is the suite or group the error was found on.
	Holder string
	// Reason states the violated constraint.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("dynamic properties: %s: %s", e.Holder, e.Reason)
	}
	return fmt.Sprintf("dynamic properties: provider %q declared by %s: %s",
		e.Provider, e.Holder, e.Reason)
}
