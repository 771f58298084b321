package logger

import (
	"context"
	"errors"
	"syscall"

	"go.uber.org/fx"
)

// FXModule provides *Client and the Logger interface from a logger.Config
// and flushes buffered entries on shutdown.
var FXModule = fx.Module("logger",
	fx.Provide(
		New,
		fx.Annotate(
			func(c *Client) *Client { return c },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle syncs the zap logger when the application stops.
func RegisterLoggerLifecycle(lc fx.Lifecycle, c *Client) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			err := c.Zap.Sync()
			// stderr is not syncable on most platforms
			if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
				return nil
			}
			return err
		},
	})
}
