package tracer

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type span struct {
	span trace.Span
}

func (s *span) End() {
	s.span.End()
}

func (s *span) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			kvs = append(kvs, attribute.String(k, val))
		case int:
			kvs = append(kvs, attribute.Int(k, val))
		case int64:
			kvs = append(kvs, attribute.Int64(k, val))
		case float64:
			kvs = append(kvs, attribute.Float64(k, val))
		case bool:
			kvs = append(kvs, attribute.Bool(k, val))
		default:
			kvs = append(kvs, attribute.String(k, fmt.Sprint(val)))
		}
	}
	s.span.SetAttributes(kvs...)
}

func (s *span) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (c *Client) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, otSpan := c.provider.Tracer(instrumentationName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
	return ctx, &span{span: otSpan}
}

func (c *Client) Inject(ctx context.Context, h http.Header) {
	c.propagator.Inject(ctx, propagation.HeaderCarrier(h))
}
