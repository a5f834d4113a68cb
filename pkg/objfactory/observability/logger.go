// Package observability provides logging, metrics and tracing hooks for the
// object registry.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Everything is opt-in and has a no-op implementation when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger returns logger with the object name attached.
func EnrichLogger(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("object", name))
}

// LogRegistered logs a successful registration.
func LogRegistered(logger *slog.Logger, name, typeName string) {
	if logger == nil {
		return
	}
	logger.Debug("object registered",
		slog.String("object", name),
		slog.String("type", typeName),
	)
}

// LogRegistrationRejected logs a rejected registration.
func LogRegistrationRejected(logger *slog.Logger, name, typeName string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("object registration rejected",
		slog.String("object", name),
		slog.String("type", typeName),
		slog.String("error", err.Error()),
	)
}

// LogCreated logs a successful creation.
func LogCreated(logger *slog.Logger, name string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("object created",
		slog.String("object", name),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCreateFailed logs a creation that returned no object.
func LogCreateFailed(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("object creation failed",
		slog.String("object", name),
		slog.String("error", err.Error()),
	)
}

// LogRemoved logs a deregistration.
func LogRemoved(logger *slog.Logger, name string, existed bool) {
	if logger == nil {
		return
	}
	logger.Debug("object removed",
		slog.String("object", name),
		slog.Bool("existed", existed),
	)
}

// TimedOperation returns a function reporting elapsed time since the call.
//
//	done := TimedOperation()
//	// ... work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
