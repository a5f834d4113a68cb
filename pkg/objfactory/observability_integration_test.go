package objfactory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/objfactory/pkg/objfactory"
	"github.com/randalmurphal/objfactory/pkg/objfactory/observability"
	"github.com/randalmurphal/objfactory/pkg/objfactory/payload"
	"github.com/randalmurphal/objfactory/pkg/objfactory/symbol"
)

type recordedCall struct {
	kind string
	name string
	err  error
}

// fakeMetrics records every call it receives.
type fakeMetrics struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (m *fakeMetrics) RecordRegistration(_ context.Context, name string, err error) {
	m.add(recordedCall{kind: "register", name: name, err: err})
}

func (m *fakeMetrics) RecordCreation(_ context.Context, name string, _ time.Duration, err error) {
	m.add(recordedCall{kind: "create", name: name, err: err})
}

func (m *fakeMetrics) RecordRemoval(_ context.Context, name string) {
	m.add(recordedCall{kind: "remove", name: name})
}

func (m *fakeMetrics) add(c recordedCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

func (m *fakeMetrics) byKind(kind string) []recordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []recordedCall
	for _, c := range m.calls {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

var _ observability.MetricsRecorder = (*fakeMetrics)(nil)

// sdkSpans is a SpanManager bound to a specific tracer provider.
type sdkSpans struct {
	tracer trace.Tracer
}

func (s sdkSpans) StartCreateSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "objfactory.create", trace.WithAttributes(attribute.String("object.name", name)))
}

func (s sdkSpans) EndSpanWithError(span trace.Span, err error) {
	observability.EndSpanWithError(span, err)
}

func (s sdkSpans) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	trace.SpanFromContext(ctx).AddEvent(name, trace.WithAttributes(attrs...))
}

func TestMetricsRecorder_Wiring(t *testing.T) {
	m := &fakeMetrics{}
	r, _ := newTestRegistry(objfactory.WithMetricsRecorder(m))

	objfactory.Register(r, symbol.Empty, newTestCtor("osc", nil))
	objfactory.Register(r, symbol.Empty, newTestCtor("osc", nil))
	r.Create(symbol.Intern("osc"), payload.Empty())
	r.Create(symbol.Intern("nope"), payload.Empty())
	r.Remove(symbol.Intern("osc"))
	r.Remove(symbol.Intern("osc"))

	regs := m.byKind("register")
	require.Len(t, regs, 2)
	assert.NoError(t, regs[0].err)
	assert.ErrorIs(t, regs[1].err, objfactory.ErrDuplicateRegistration)

	creates := m.byKind("create")
	require.Len(t, creates, 2)
	assert.NoError(t, creates[0].err)
	assert.ErrorIs(t, creates[1].err, objfactory.ErrUnknownName)

	assert.Len(t, m.byKind("remove"), 1, "only existing entries count as removals")
}

func TestSpanManager_Wiring(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r, _ := newTestRegistry(objfactory.WithSpanManager(sdkSpans{tracer: tp.Tracer("test")}))
	objfactory.Register(r, symbol.Empty, newTestCtor("osc", nil))

	require.NotNil(t, r.Create(symbol.Intern("osc"), payload.Empty()))
	require.Nil(t, r.Create(symbol.Intern("nope"), payload.Empty()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	ok := spans[0]
	assert.Equal(t, "objfactory.create", ok.Name)
	assert.Equal(t, codes.Ok, ok.Status.Code)
	require.Len(t, ok.Events, 1)
	assert.Equal(t, "initialized", ok.Events[0].Name)

	failed := spans[1]
	assert.Equal(t, codes.Error, failed.Status.Code)
	assert.Contains(t, failed.Status.Description, "unknown object nope")
}

func TestWithMetricsAndTracingToggles(t *testing.T) {
	r, diags := newTestRegistry(objfactory.WithMetrics(false), objfactory.WithTracing(false))
	objfactory.Register(r, symbol.Empty, newTestCtor("osc", nil))
	assert.NotNil(t, r.Create(symbol.Intern("osc"), payload.Empty()))

	r, _ = newTestRegistry(objfactory.WithMetrics(true), objfactory.WithTracing(true))
	objfactory.Register(r, symbol.Empty, newTestCtor("osc", nil))
	assert.NotNil(t, r.Create(symbol.Intern("osc"), payload.Empty()))
	assert.Empty(t, diags.all())
}

func TestNilOptionsIgnored(t *testing.T) {
	r := objfactory.New(
		objfactory.WithSink(nil),
		objfactory.WithMetricsRecorder(nil),
		objfactory.WithSpanManager(nil),
	)
	objfactory.Register(r, symbol.Empty, newTestCtor("osc", nil))

	assert.NotNil(t, r.Create(symbol.Intern("osc"), payload.Empty()))
	assert.Nil(t, r.Create(symbol.Intern("nope"), payload.Empty()))
}

func TestPanicError_ReachesMetrics(t *testing.T) {
	m := &fakeMetrics{}
	r, _ := newTestRegistry(objfactory.WithMetricsRecorder(m))
	objfactory.Register(r, symbol.Empty, func(payload.Payload) *panicObject {
		return &panicObject{Box: objfactory.NewBox()}
	})

	r.Create(symbol.Intern("boom"), payload.Empty())

	creates := m.byKind("create")
	require.Len(t, creates, 1)
	var panicErr *objfactory.PanicError
	require.True(t, errors.As(creates[0].err, &panicErr))
	assert.Equal(t, "initialize", panicErr.Phase)
	assert.NotEmpty(t, panicErr.Stack)
}
