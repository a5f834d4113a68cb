package objfactory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/randalmurphal/objfactory/pkg/objfactory/console"
	"github.com/randalmurphal/objfactory/pkg/objfactory/observability"
	"github.com/randalmurphal/objfactory/pkg/objfactory/payload"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

// Registry maps names to creators. It is safe for concurrent use.
//
// A single mutex guards the entries. Create holds it across construction
// and Initialize, so all creations are serialized with every other
// registry call.
type Registry struct {
	mu      sync.Mutex
	entries map[symbol.Name]Creator

	sink    console.Sink
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[symbol.Name]Creator),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.sink == nil {
		r.sink = console.New()
	}
	return r
}

// Register adds T under name, or under the default name reported by a
// prototype when name is empty.
//
// A prototype is always built from payload.Empty() to validate newFn, so
// constructors should be free of side effects. Registration is rejected,
// with a diagnostic sent to the registry's sink, when:
//   - T is an interface type or newFn is nil
//   - the prototype is nil or its constructor panics
//   - the resolved name is empty
//   - the name is already registered (the first registration wins)
//
// Example:
//
//	objfactory.Register(r, symbol.Empty, builtin.NewOsc)          // as "osc"
//	objfactory.Register(r, symbol.Intern("sine"), builtin.NewOsc) // alias
func Register[T Registrable](r *Registry, name symbol.Name, newFn Constructor[T]) {
	_ = register(r, name, newFn)
}

// MustRegister is like Register but panics if the registration is rejected.
// The diagnostic is still reported first.
func MustRegister[T Registrable](r *Registry, name symbol.Name, newFn Constructor[T]) {
	if err := register(r, name, newFn); err != nil {
		panic(err)
	}
}

func register[T Registrable](r *Registry, name symbol.Name, newFn Constructor[T]) error {
	typ := reflect.TypeFor[T]()
	switch {
	case typ.Kind() == reflect.Interface:
		return r.reject(name.String(), typ.String(), fmt.Errorf("%w: %s is an interface type", ErrInvalidTarget, typ))
	case newFn == nil:
		return r.reject(name.String(), typ.String(), fmt.Errorf("%w: nil constructor", ErrInvalidTarget))
	}
	return r.add(name, typ.String(), typedCreator[T]{newFn: newFn})
}

// add validates c with a prototype and inserts it.
func (r *Registry) add(name symbol.Name, typeName string, c Creator) error {
	proto, err := construct(name, c, payload.Empty())
	if err != nil {
		return r.reject(name.String(), typeName, fmt.Errorf("%w: %w", ErrInvalidTarget, err))
	}
	if proto == nil {
		return r.reject(name.String(), typeName, fmt.Errorf("%w: constructor returned nil", ErrInvalidTarget))
	}

	if name.IsEmpty() {
		name = proto.Name()
	}
	if name.IsEmpty() {
		return r.reject("", typeName, fmt.Errorf("%w: empty default name", ErrInvalidTarget))
	}

	r.mu.Lock()
	_, exists := r.entries[name]
	if !exists {
		r.entries[name] = c
	}
	r.mu.Unlock()

	if exists {
		return r.reject(name.String(), typeName, ErrDuplicateRegistration)
	}

	observability.LogRegistered(r.logger, name.String(), typeName)
	r.metrics.RecordRegistration(context.Background(), name.String(), nil)
	return nil
}

func (r *Registry) reject(name, typeName string, err error) error {
	regErr := &RegistrationError{Name: name, Type: typeName, Err: err}
	r.sink.Error(regErr.Error())
	observability.LogRegistrationRejected(r.logger, name, typeName, err)
	label := name
	if label == "" {
		label = typeName
	}
	r.metrics.RecordRegistration(context.Background(), label, regErr)
	return regErr
}

// Create builds and initializes the object registered under name.
// It returns nil when name is unknown (reporting "unknown object <name>")
// or when construction yields no object.
func (r *Registry) Create(name symbol.Name, p payload.Payload) Object {
	return r.CreateContext(context.Background(), name, p)
}

// CreateContext is Create with a context for tracing and metrics.
func (r *Registry) CreateContext(ctx context.Context, name symbol.Name, p payload.Payload) Object {
	ctx, span := r.spans.StartCreateSpan(ctx, name.String())
	done := observability.TimedOperation()

	obj, err := r.create(name, p)

	elapsed := done()
	r.metrics.RecordCreation(ctx, name.String(), elapsed, err)
	if err != nil {
		var panicErr *PanicError
		if errors.Is(err, ErrUnknownName) || errors.As(err, &panicErr) {
			r.sink.Error(err.Error())
		}
		observability.LogCreateFailed(r.logger, name.String(), err)
	} else {
		r.spans.AddSpanEvent(ctx, "initialized")
		observability.LogCreated(r.logger, name.String(), observability.Milliseconds(elapsed))
	}
	r.spans.EndSpanWithError(span, err)
	return obj
}

func (r *Registry) create(name symbol.Name, p payload.Payload) (Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.entries[name]
	if !ok {
		return nil, &CreationError{Name: name.String(), Err: ErrUnknownName}
	}

	obj, err := construct(name, c, p)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, &CreationError{Name: name.String(), Err: ErrConstructionFailed}
	}
	if err := initialize(name, obj, p.Dico); err != nil {
		return nil, err
	}
	return obj, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name symbol.Name) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[name]
	return ok
}

// Remove deregisters name. Removing an unknown name is a no-op.
// Objects already created are unaffected.
func (r *Registry) Remove(name symbol.Name) {
	r.mu.Lock()
	_, existed := r.entries[name]
	delete(r.entries, name)
	r.mu.Unlock()

	observability.LogRemoved(r.logger, name.String(), existed)
	if existed {
		r.metrics.RecordRemoval(context.Background(), name.String())
	}
}

// Names returns a snapshot of the registered names in no particular order.
func (r *Registry) Names() []symbol.Name {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]symbol.Name, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// Sorted returns a snapshot of the registered names ordered by text.
func (r *Registry) Sorted() []symbol.Name {
	names := r.Names()
	symbol.Sort(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
