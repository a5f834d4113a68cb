package objfactory

import (
	"context"
	"sync"

	"github.com/randalmurphal/objfactory/pkg/objfactory/payload"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, creating it with default
// options on first use. It lives for the lifetime of the process.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// InitDefault creates the process-wide registry with opts. It reports
// false, leaving the registry untouched, if Default was already
// initialized by an earlier call to either function.
func InitDefault(opts ...Option) bool {
	initialized := false
	defaultOnce.Do(func() {
		defaultRegistry = New(opts...)
		initialized = true
	})
	return initialized
}

// Add registers T with the default registry. See Register.
func Add[T Registrable](name symbol.Name, newFn Constructor[T]) {
	Register(Default(), name, newFn)
}

// MustAdd registers T with the default registry and panics on rejection.
func MustAdd[T Registrable](name symbol.Name, newFn Constructor[T]) {
	MustRegister(Default(), name, newFn)
}

// Create builds an object from the default registry.
func Create(name symbol.Name, p payload.Payload) Object {
	return Default().Create(name, p)
}

// CreateContext builds an object from the default registry.
func CreateContext(ctx context.Context, name symbol.Name, p payload.Payload) Object {
	return Default().CreateContext(ctx, name, p)
}

// Has reports whether name is registered with the default registry.
func Has(name symbol.Name) bool {
	return Default().Has(name)
}

// Remove deregisters name from the default registry.
func Remove(name symbol.Name) {
	Default().Remove(name)
}

// Names returns the names registered with the default registry.
func Names() []symbol.Name {
	return Default().Names()
}
