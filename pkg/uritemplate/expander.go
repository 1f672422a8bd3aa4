package uritemplate

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
)

// Expander wraps Parse and Template.Expand with logging, metrics, and tracing.
// The output is identical to the uninstrumented calls.
//
// Create with NewExpander() and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// NewExpander creates a new Expander with the given options.
//
// Default configuration:
//   - Logger: nil
//   - Metrics: disabled
//   - Tracing: disabled
//
// Example:
//
//	exp := uritemplate.NewExpander(
//	    uritemplate.WithLogger(logger),
//	    uritemplate.WithMetrics(true),
//	    uritemplate.WithTracing(true),
//	)
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse parses s like the package-level Parse and reports every expression
// that was kept as literal text.
func (e *Expander) Parse(ctx context.Context, s string) *Template {
	ctx, span := e.spans.StartParseSpan(ctx, s)
	t := Parse(s)

	for _, raw := range t.degraded {
		observability.LogDegraded(e.logger, s, raw)
		e.spans.AddSpanEvent(ctx, "uritemplate.degraded", attribute.String("span", raw))
	}
	observability.LogParse(e.logger, s, len(t.items), len(t.degraded))
	e.metrics.RecordParse(ctx, len(t.items), len(t.degraded))
	e.spans.EndSpanWithError(span, nil)

	return t
}

// Expand expands t against vars like Template.Expand and records the
// variables that were not defined.
func (e *Expander) Expand(ctx context.Context, t *Template, vars Variables) string {
	ctx, span := e.spans.StartExpandSpan(ctx, t.source)
	start := time.Now()

	var undefined []string
	out := t.expand(vars, func(name string) {
		undefined = append(undefined, name)
	})

	duration := time.Since(start)
	observability.LogExpand(e.logger, t.source, float64(duration.Microseconds())/1000, len(out), undefined)
	e.metrics.RecordExpansion(ctx, duration, len(undefined))
	if len(undefined) > 0 {
		e.spans.AddSpanEvent(ctx, "uritemplate.undefined",
			attribute.StringSlice("names", undefined))
	}
	e.spans.EndSpanWithError(span, nil)

	return out
}

// Logger returns the configured logger, which may be nil.
func (e *Expander) Logger() *slog.Logger { return e.logger }

// Metrics returns the configured metrics recorder.
func (e *Expander) Metrics() observability.MetricsRecorder { return e.metrics }

// defaultExpander is the uninstrumented expander used when none is configured.
var defaultExpander = NewExpander()

// DefaultExpander returns a shared Expander with logging, metrics, and
// tracing disabled.
func DefaultExpander() *Expander { return defaultExpander }
