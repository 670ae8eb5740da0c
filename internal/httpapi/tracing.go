package httpapi

import (
	"context"

	"github.com/signalsfoundry/strain-projector/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/signalsfoundry/strain-projector/internal/httpapi"

// StartChildSpan starts a child span for internal operations within handlers.
func StartChildSpan(ctx context.Context, name string, extra ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, name, trace.WithAttributes(extra...))
}

// annotateSpan attaches the request ID to the active server span so traces
// and logs can be correlated.
func annotateSpan(ctx context.Context) {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		span.SetAttributes(attribute.String("request_id", id))
	}
}
