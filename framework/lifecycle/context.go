package lifecycle

import (
	"github.com/pkg/errors"

	"github.com/km-arc/go-dynprops/framework/container"
	"github.com/km-arc/go-dynprops/framework/logging"
	"github.com/km-arc/go-dynprops/framework/provider"
	"github.com/km-arc/go-dynprops/framework/sources"
)

// Context is the test application context for one suite: an IoC container,
// an ordered property-source chain, and the extensions to run before the
// context may be used. All of it is rebuilt per suite — dynamic values such
// as mapped ports change between runs, so nothing survives a suite.
type Context struct {
	suite      *provider.Suite
	container  *container.Container
	chain      *sources.Chain
	extensions []Extension
	log        logging.Logger
	started    bool
}

// Option configures a Context at construction.
type Option func(*Context)

// WithStaticSources seeds the chain with static sources, highest precedence
// first. Dynamic properties are published in front of all of them.
func WithStaticSources(srcs ...sources.Source) Option {
	return func(c *Context) {
		for _, s := range srcs {
			c.chain.AddLast(s)
		}
	}
}

// WithLogger routes the framework's diagnostics through l instead of
// discarding them.
func WithLogger(l logging.Logger) Option {
	return func(c *Context) { c.log = l }
}

// New builds an unstarted Context for suite. DynamicProperties is not
// registered implicitly; register it with Use, after any resource-starting
// extensions, so provider functions see started resources.
func New(suite *provider.Suite, opts ...Option) *Context {
	ctx := &Context{
		suite:     suite,
		container: container.New(),
		chain:     sources.NewChain(),
		log:       logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Use appends extensions. Registration order is execution order.
func (c *Context) Use(exts ...Extension) *Context {
	c.extensions = append(c.extensions, exts...)
	return c
}

// Start runs every extension's BeforeAll in registration order, then marks
// the context started. The first error aborts the run, so it surfaces before
// any test body executes. Start is idempotent; a started context is not
// re-entered.
func (c *Context) Start() error {
	if c.started {
		return nil
	}
	for _, ext := range c.extensions {
		if err := ext.BeforeAll(c); err != nil {
			return errors.Wrapf(err, "lifecycle: starting suite %s", c.suite.Name())
		}
	}
	c.started = true
	c.log.Debug("context started", "suite", c.suite.Name(), "sources", c.chain.Names())
	return nil
}

// Stop runs AfterAll hooks in reverse registration order so resources are
// torn down opposite to how they were brought up. All hooks run; the first
// error is returned.
func (c *Context) Stop() error {
	var firstErr error
	for i := len(c.extensions) - 1; i >= 0; i-- {
		after, ok := c.extensions[i].(AfterAllExtension)
		if !ok {
			continue
		}
		if err := after.AfterAll(c); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "lifecycle: stopping suite %s", c.suite.Name())
		}
	}
	return firstErr
}

// Started reports whether Start has completed.
func (c *Context) Started() bool { return c.started }

// Suite returns the suite this context was built for.
func (c *Context) Suite() *provider.Suite { return c.suite }

// Container returns the per-suite IoC container.
func (c *Context) Container() *container.Container { return c.container }

// Sources returns the property-source chain.
func (c *Context) Sources() *sources.Chain { return c.chain }

// Resolver returns a placeholder resolver over the chain.
func (c *Context) Resolver() *sources.Resolver { return sources.NewResolver(c.chain) }

// Logger returns the context's logger.
func (c *Context) Logger() logging.Logger { return c.log }
