package api

import (
	"context"
	"time"

	"github.com/aalemi-dev/mdm-client/observability"
)

func (c *Client) observe(cl call, start time.Time, size int, err error) {
	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "api",
		Operation:   cl.op,
		Resource:    cl.route,
		SubResource: cl.target,
		Duration:    time.Since(start),
		Error:       err,
		Size:        int64(size),
		Metadata: map[string]interface{}{
			"write":  cl.write,
			"method": cl.method,
			"path":   cl.path,
		},
	})
}

func (c *Client) logWarn(ctx context.Context, msg string, err error, cl call) {
	if c.logger != nil {
		c.logger.WarnWithContext(ctx, msg, err, logFields(cl))
	}
}

func (c *Client) logError(ctx context.Context, msg string, err error, cl call) {
	if c.logger != nil {
		c.logger.ErrorWithContext(ctx, msg, err, logFields(cl))
	}
}

func logFields(cl call) map[string]interface{} {
	f := map[string]interface{}{
		"operation": cl.op,
		"route":     cl.route,
	}
	if cl.target != "" {
		f["target"] = cl.target
	}
	return f
}
