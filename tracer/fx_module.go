package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *Client and the Tracer interface from a tracer.Config
// and shuts the provider down with the application.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(c *Client) *Client { return c },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes spans on stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, c *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Shutdown(ctx)
		},
	})
}
