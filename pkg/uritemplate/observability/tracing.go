package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the uritemplate tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("uritemplate")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartParseSpan starts a span covering the parse of source.
	StartParseSpan(ctx context.Context, source string) (context.Context, trace.Span)

	// StartExpandSpan starts a span covering one expansion of source.
	StartExpandSpan(ctx context.Context, source string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartParseSpan starts a parse span.
func (m *otelSpanManager) StartParseSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return StartParseSpan(ctx, source)
}

// StartExpandSpan starts an expansion span.
func (m *otelSpanManager) StartExpandSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return StartExpandSpan(ctx, source)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	AddSpanEvent(ctx, name, attrs...)
}

// StartParseSpan starts a parse span using the global OTel tracer.
func StartParseSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.parse",
		trace.WithAttributes(
			attribute.String("template.source", source),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartExpandSpan starts an expansion span using the global OTel tracer.
func StartExpandSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.expand",
		trace.WithAttributes(
			attribute.String("template.source", source),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
