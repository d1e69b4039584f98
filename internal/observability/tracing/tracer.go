package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the study notes service.
var tracer = otel.Tracer("studynotes")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "summarize-chunk")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
