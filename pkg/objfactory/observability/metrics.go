package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRegistration records a registration attempt. A non-nil err
	// marks it rejected.
	RecordRegistration(ctx context.Context, name string, err error)

	// RecordCreation records a create call with its duration. A non-nil err
	// marks it failed.
	RecordCreation(ctx context.Context, name string, duration time.Duration, err error)

	// RecordRemoval records a deregistration.
	RecordRemoval(ctx context.Context, name string)
}

// ReasonFunc maps an error to a short, low-cardinality reason label.
// The registry installs one that understands its sentinel errors.
type ReasonFunc func(err error) string

type otelMetrics struct {
	registrations metric.Int64Counter
	rejected      metric.Int64Counter
	creations     metric.Int64Counter
	failed        metric.Int64Counter
	latency       metric.Float64Histogram
	removals      metric.Int64Counter
	reason        ReasonFunc
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("objfactory")

	registrations, err := meter.Int64Counter("objfactory.registrations",
		metric.WithDescription("Number of accepted object registrations"),
	)
	if err != nil {
		return nil, err
	}

	rejected, err := meter.Int64Counter("objfactory.registrations.rejected",
		metric.WithDescription("Number of rejected object registrations"),
	)
	if err != nil {
		return nil, err
	}

	creations, err := meter.Int64Counter("objfactory.creations",
		metric.WithDescription("Number of create calls"),
	)
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("objfactory.creations.failed",
		metric.WithDescription("Number of create calls that returned no object"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("objfactory.creation.latency_ms",
		metric.WithDescription("Construction plus initialization latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	removals, err := meter.Int64Counter("objfactory.removals",
		metric.WithDescription("Number of deregistrations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations: registrations,
		rejected:      rejected,
		creations:     creations,
		failed:        failed,
		latency:       latency,
		removals:      removals,
		reason:        defaultReason,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel
// meter provider, labelling failures with reason. A nil reason labels every
// failure "error". If instrument creation fails a no-op recorder is returned.
func NewMetricsRecorder(reason ReasonFunc) MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	if reason == nil {
		return m
	}
	withReason := *m
	withReason.reason = reason
	return &withReason
}

func defaultReason(error) string { return "error" }

// RecordRegistration implements MetricsRecorder.
func (m *otelMetrics) RecordRegistration(ctx context.Context, name string, err error) {
	if err != nil {
		m.rejected.Add(ctx, 1, metric.WithAttributes(
			attribute.String("object", name),
			attribute.String("reason", m.reason(err)),
		))
		return
	}
	m.registrations.Add(ctx, 1, metric.WithAttributes(attribute.String("object", name)))
}

// RecordCreation implements MetricsRecorder.
func (m *otelMetrics) RecordCreation(ctx context.Context, name string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("object", name))
	m.creations.Add(ctx, 1, attrs)
	m.latency.Record(ctx, Milliseconds(duration), attrs)
	if err != nil {
		m.failed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("object", name),
			attribute.String("reason", m.reason(err)),
		))
	}
}

// RecordRemoval implements MetricsRecorder.
func (m *otelMetrics) RecordRemoval(ctx context.Context, name string) {
	m.removals.Add(ctx, 1, metric.WithAttributes(attribute.String("object", name)))
}
