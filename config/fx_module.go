package config

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/mdm-client/api"
	"github.com/aalemi-dev/mdm-client/audit"
	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/metrics"
	"github.com/aalemi-dev/mdm-client/tracer"
	"github.com/aalemi-dev/mdm-client/transport"
)

// FXModule splits a *Config in the graph into the per-package Config
// values the other modules consume.
var FXModule = fx.Module("config",
	fx.Provide(
		func(c *Config) api.Config { return c.API },
		func(c *Config) transport.Config { return c.API.Config },
		func(c *Config) logger.Config { return c.Logger },
		func(c *Config) tracer.Config { return c.Tracer },
		func(c *Config) metrics.Config { return c.Metrics },
		func(c *Config) audit.Config { return c.Audit },
	),
)

// FromFile loads the configuration with Load and provides it together
// with FXModule.
func FromFile(path string, envFiles ...string) fx.Option {
	return fx.Options(
		fx.Provide(func() (*Config, error) { return Load(path, envFiles...) }),
		FXModule,
	)
}
