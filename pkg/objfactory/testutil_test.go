package objfactory_test

import (
	"sync"
	"sync/atomic"

	"github.com/randalmurphal/objfactory/pkg/objfactory"
	"github.com/randalmurphal/objfactory/pkg/objfactory/console"
	"github.com/randalmurphal/objfactory/pkg/objfactory/dico"
	"github.com/randalmurphal/objfactory/pkg/objfactory/payload"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

// diagnostics collects sink messages.
type diagnostics struct {
	mu   sync.Mutex
	msgs []string
}

func (d *diagnostics) Error(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msgs = append(d.msgs, msg)
}

func (d *diagnostics) all() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.msgs...)
}

var _ console.Sink = (*diagnostics)(nil)

func newTestRegistry(opts ...objfactory.Option) (*objfactory.Registry, *diagnostics) {
	diags := &diagnostics{}
	return objfactory.New(append([]objfactory.Option{objfactory.WithSink(diags)}, opts...)...), diags
}

// counters tracks constructor and Initialize calls across instances.
type counters struct {
	constructed atomic.Int64
	initialized atomic.Int64
}

// testObject is a configurable Registrable.
type testObject struct {
	objfactory.Box
	name     symbol.Name
	hint     string
	received dico.Dico
	c        *counters
}

func (o *testObject) Name() symbol.Name { return o.name }

func (o *testObject) Initialize(d dico.Dico) {
	o.received = d
	if o.c != nil {
		o.c.initialized.Add(1)
	}
}

func newTestCtor(name string, c *counters) objfactory.Constructor[*testObject] {
	return func(p payload.Payload) *testObject {
		if c != nil {
			c.constructed.Add(1)
		}
		return &testObject{Box: objfactory.NewBox(), name: symbol.Intern(name), hint: p.Name.String(), c: c}
	}
}

// otherObject is a second concrete type, used to tell entries apart.
type otherObject struct {
	objfactory.Box
}

func (o *otherObject) Name() symbol.Name     { return symbol.Intern("other") }
func (o *otherObject) Initialize(dico.Dico) {}

func newOther(payload.Payload) *otherObject {
	return &otherObject{Box: objfactory.NewBox()}
}

// valueObject implements Registrable on a non-pointer type.
type valueObject struct {
	objfactory.Box
}

func (valueObject) Name() symbol.Name     { return symbol.Intern("value") }
func (valueObject) Initialize(dico.Dico) {}

// panicObject panics in Initialize.
type panicObject struct {
	objfactory.Box
}

func (*panicObject) Name() symbol.Name     { return symbol.Intern("boom") }
func (*panicObject) Initialize(dico.Dico) { panic("bad config") }
