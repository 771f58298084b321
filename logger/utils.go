package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracingFields returns trace_id/span_id for the recording span in ctx.
func (c *Client) tracingFields(ctx context.Context) []zap.Field {
	if !c.tracingEnabled || ctx == nil {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}
	sc := span.SpanContext()
	if !sc.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// zapFields flattens err and the field maps; later maps win on duplicate keys
// because zap keeps the last occurrence when encoding JSON objects.
func (c *Client) zapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var out []zap.Field
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, m := range fields {
		for k, v := range m {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

func (c *Client) Debug(msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Debug(msg, c.zapFields(err, fields...)...)
}

func (c *Client) Info(msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Info(msg, c.zapFields(err, fields...)...)
}

func (c *Client) Warn(msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Warn(msg, c.zapFields(err, fields...)...)
}

func (c *Client) Error(msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Error(msg, c.zapFields(err, fields...)...)
}

func (c *Client) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Debug(msg, append(c.zapFields(err, fields...), c.tracingFields(ctx)...)...)
}

func (c *Client) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Info(msg, append(c.zapFields(err, fields...), c.tracingFields(ctx)...)...)
}

func (c *Client) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Warn(msg, append(c.zapFields(err, fields...), c.tracingFields(ctx)...)...)
}

func (c *Client) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	c.Zap.Error(msg, append(c.zapFields(err, fields...), c.tracingFields(ctx)...)...)
}

// Named returns a child logger whose entries carry the given logger name,
// e.g. "transport" or "audit".
func (c *Client) Named(name string) *Client {
	return &Client{Zap: c.Zap.Named(name), tracingEnabled: c.tracingEnabled}
}

// Named names l when it is a *Client and returns other implementations
// unchanged.
func Named(l Logger, name string) Logger {
	if c, ok := l.(*Client); ok {
		return c.Named(name)
	}
	return l
}
