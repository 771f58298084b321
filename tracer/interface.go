package tracer

import (
	"context"
	"net/http"
)

// Tracer creates spans around outbound API calls and propagates their
// context to the remote service.
type Tracer interface {
	// StartSpan starts a child of the span in ctx (if any). Callers must End it.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// Inject writes the W3C trace context and baggage of ctx into h.
	Inject(ctx context.Context, h http.Header)
}

// Span is the subset of an OpenTelemetry span the client uses.
type Span interface {
	End()
	SetAttributes(attrs map[string]interface{})
	RecordError(err error)
}
