package kickbase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var kickbaseTracer = otel.Tracer("fantasy-dashboard/external/kickbase")

// startSpan only creates child spans, upstream calls made outside a traced
// request stay untraced.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return kickbaseTracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
}
