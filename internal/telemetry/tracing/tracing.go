package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer trace.Tracer = otel.Tracer("abreak-backend")
