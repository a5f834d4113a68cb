package objfactory

import (
	"log/slog"

	"github.com/randalmurphal/objfactory/pkg/objfactory/console"
	"github.com/randalmurphal/objfactory/pkg/objfactory/observability"
)

// Option configures a Registry.
type Option func(*Registry)

// WithSink sets where diagnostics are reported.
// Default: a console.Console logging through slog.Default().
//
// Example:
//
//	c := console.New(console.WithHistory(history))
//	r := objfactory.New(objfactory.WithSink(c))
func WithSink(sink console.Sink) Option {
	return func(r *Registry) {
		if sink != nil {
			r.sink = sink
		}
	}
}

// WithLogger enables structured lifecycle logs (registrations, creations,
// removals). Default: no logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
//
// Metrics recorded:
//   - objfactory.registrations / objfactory.registrations.rejected
//   - objfactory.creations / objfactory.creations.failed
//   - objfactory.creation.latency_ms
//   - objfactory.removals
func WithMetrics(enabled bool) Option {
	return func(r *Registry) {
		if enabled {
			r.metrics = observability.NewMetricsRecorder(reason)
		} else {
			r.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder installs a custom recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(r *Registry) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithTracing enables an "objfactory.create" span around every create call,
// using the global tracer provider.
func WithTracing(enabled bool) Option {
	return func(r *Registry) {
		if enabled {
			r.spans = observability.NewSpanManager()
		} else {
			r.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager installs a custom span manager.
func WithSpanManager(s observability.SpanManager) Option {
	return func(r *Registry) {
		if s != nil {
			r.spans = s
		}
	}
}
