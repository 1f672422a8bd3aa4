package uritemplate

import (
	"log/slog"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
)

// Option configures an Expander.
type Option func(*Expander)

// WithLogger sets the logger for parse and expansion events.
//
// Default: nil (no logging)
//
// Example:
//
//	exp := uritemplate.NewExpander(uritemplate.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}

// WithMetrics enables or disables OpenTelemetry metrics.
//
// Default: false (observability.NoopMetrics)
func WithMetrics(enabled bool) Option {
	return func(e *Expander) {
		if enabled {
			e.metrics = observability.NewMetricsRecorder()
		} else {
			e.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a custom metrics recorder.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(e *Expander) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithTracing enables or disables OpenTelemetry spans around parse and
// expansion.
//
// Default: false (observability.NoopSpanManager)
func WithTracing(enabled bool) Option {
	return func(e *Expander) {
		if enabled {
			e.spans = observability.NewSpanManager()
		} else {
			e.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a custom span manager.
func WithSpanManager(s observability.SpanManager) Option {
	return func(e *Expander) {
		if s != nil {
			e.spans = s
		}
	}
}
