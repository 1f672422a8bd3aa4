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

// MetricsRecorder records URI template metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordParse records a parse with its item count and number of
	// expressions kept as literals.
	RecordParse(ctx context.Context, items, degraded int)

	// RecordExpansion records an expansion with its duration and the number
	// of variables the lookup did not resolve.
	RecordExpansion(ctx context.Context, duration time.Duration, undefined int)

	// RecordCatalogLookup records a catalog lookup by name.
	RecordCatalogLookup(ctx context.Context, name string, found bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	parses         metric.Int64Counter
	degraded       metric.Int64Counter
	expansions     metric.Int64Counter
	expandLatency  metric.Float64Histogram
	undefinedVars  metric.Int64Counter
	catalogLookups metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("uritemplate")

	parses, err := meter.Int64Counter("uritemplate.parse.count",
		metric.WithDescription("Number of templates parsed"),
	)
	if err != nil {
		return nil, err
	}

	degraded, err := meter.Int64Counter("uritemplate.parse.degraded",
		metric.WithDescription("Number of malformed expressions kept as literals"),
	)
	if err != nil {
		return nil, err
	}

	expansions, err := meter.Int64Counter("uritemplate.expand.count",
		metric.WithDescription("Number of template expansions"),
	)
	if err != nil {
		return nil, err
	}

	expandLatency, err := meter.Float64Histogram("uritemplate.expand.latency_ms",
		metric.WithDescription("Template expansion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	undefinedVars, err := meter.Int64Counter("uritemplate.expand.undefined",
		metric.WithDescription("Number of variable references left undefined"),
	)
	if err != nil {
		return nil, err
	}

	catalogLookups, err := meter.Int64Counter("uritemplate.catalog.lookups",
		metric.WithDescription("Number of catalog lookups by name"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		parses:         parses,
		degraded:       degraded,
		expansions:     expansions,
		expandLatency:  expandLatency,
		undefinedVars:  undefinedVars,
		catalogLookups: catalogLookups,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordParse records a parse.
func (m *otelMetrics) RecordParse(ctx context.Context, items, degraded int) {
	attrs := metric.WithAttributes(attribute.Bool("degraded", degraded > 0))
	m.parses.Add(ctx, 1, attrs)
	if degraded > 0 {
		m.degraded.Add(ctx, int64(degraded))
	}
}

// RecordExpansion records an expansion.
func (m *otelMetrics) RecordExpansion(ctx context.Context, duration time.Duration, undefined int) {
	attrs := metric.WithAttributes(attribute.Bool("complete", undefined == 0))
	m.expansions.Add(ctx, 1, attrs)
	m.expandLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if undefined > 0 {
		m.undefinedVars.Add(ctx, int64(undefined))
	}
}

// RecordCatalogLookup records a catalog lookup. Misses are not tagged with
// the requested name so unknown names cannot grow the series count.
func (m *otelMetrics) RecordCatalogLookup(ctx context.Context, name string, found bool) {
	attrs := []attribute.KeyValue{attribute.Bool("found", found)}
	if found {
		attrs = append(attrs, attribute.String("name", name))
	}
	m.catalogLookups.Add(ctx, 1, metric.WithAttributes(attrs...))
}
