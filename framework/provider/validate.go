package provider

import (
	"fmt"

	"github.com/km-arc/go-dynprops/framework/props"
)

// Validate confirms every discovered entry has a usable shape: a non-nil
// func() *props.Bag or func() (*props.Bag, error). The first violation fails
// the whole suite — a misdeclared provider is never silently skipped, so a
// typo surfaces before any test body runs instead of as a missing property.
//
// This is the explicit-registration analog of Spring's checks that a
// @DynamicTestProperty method is static and returns TestPropertyValues.
func Validate(entries []Entry) error {
	for _, e := range entries {
		if _, reason := normalize(e.fn); reason != "" {
			return &ConfigError{Provider: e.Name, Holder: e.Holder, Reason: reason}
		}
	}
	return nil
}

// normalize converts any accepted provider shape to the error-returning form,
// or reports why it cannot.
func normalize(fn any) (FuncE, string) {
	switch f := fn.(type) {
	case nil:
		return nil, "provider function is nil"
	case Func:
		return plain(f)
	case func() *props.Bag:
		return plain(f)
	case FuncE:
		if f == nil {
			return nil, "provider function is nil"
		}
		return f, ""
	case func() (*props.Bag, error):
		if f == nil {
			return nil, "provider function is nil"
		}
		return FuncE(f), ""
	default:
		return nil, fmt.Sprintf("must be func() *props.Bag or func() (*props.Bag, error), got %T", fn)
	}
}

func plain(f func() *props.Bag) (FuncE, string) {
	if f == nil {
		return nil, "provider function is nil"
	}
	return func() (*props.Bag, error) { return f(), nil }, ""
}
