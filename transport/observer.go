package transport

import (
	"context"
	"time"

	"github.com/aalemi-dev/mdm-client/observability"
)

func (c *Client) observe(method, route string, start time.Time, status, size int, err error) {
	c.observer.ObserveOperation(observability.OperationContext{
		Component: "transport",
		Operation: method,
		Resource:  route,
		Duration:  time.Since(start),
		Error:     err,
		Size:      int64(size),
		Metadata: map[string]interface{}{
			"status_code": status,
		},
	})
}

func (c *Client) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.DebugWithContext(ctx, msg, nil, fields)
	}
}

func (c *Client) logWarn(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.WarnWithContext(ctx, msg, err, fields)
	}
}
