// Package observability provides logging, metrics, and tracing for URI
// template parsing and expansion.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger returns a logger carrying the template source and, when
// non-empty, the catalog name it was registered under.
func EnrichLogger(logger *slog.Logger, name, source string) *slog.Logger {
	if logger == nil {
		return nil
	}
	attrs := []any{slog.String("template", source)}
	if name != "" {
		attrs = append(attrs, slog.String("name", name))
	}
	return logger.With(attrs...)
}

// LogParse logs a completed parse.
func LogParse(logger *slog.Logger, source string, items, degraded int) {
	if logger == nil {
		return
	}
	logger.Debug("template parsed",
		slog.String("template", source),
		slog.Int("items", items),
		slog.Int("degraded", degraded),
	)
}

// LogDegraded logs an expression that was kept as literal text.
func LogDegraded(logger *slog.Logger, source, span string) {
	if logger == nil {
		return
	}
	logger.Warn("malformed expression kept as literal",
		slog.String("template", source),
		slog.String("span", span),
	)
}

// LogExpand logs a completed expansion. undefined lists the variables the
// lookup did not resolve.
func LogExpand(logger *slog.Logger, source string, durationMs float64, outputLen int, undefined []string) {
	if logger == nil {
		return
	}
	attrs := []any{
		slog.String("template", source),
		slog.Float64("duration_ms", durationMs),
		slog.Int("output_bytes", outputLen),
	}
	if len(undefined) > 0 {
		attrs = append(attrs, slog.Any("undefined", undefined))
	}
	logger.Debug("template expanded", attrs...)
}

// LogCatalogLoad logs templates loaded into a catalog from a store.
func LogCatalogLoad(logger *slog.Logger, count int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("catalog loaded",
		slog.Int("templates", count),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCatalogMiss logs a lookup of a name that is not registered.
func LogCatalogMiss(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Warn("template not found",
		slog.String("name", name),
	)
}

// LogStoreError logs a failed store operation.
func LogStoreError(logger *slog.Logger, op, name string, err error) {
	if logger == nil {
		return
	}
	logger.Error("template store failed",
		slog.String("operation", op),
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
