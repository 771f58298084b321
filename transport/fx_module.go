package transport

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/observability"
	"github.com/aalemi-dev/mdm-client/tracer"
)

// FXModule provides *Client and the Doer interface from a transport.Config.
// A logger.Logger, a tracer.Tracer and the "observers" group are picked up
// when present.
var FXModule = fx.Module("transport",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(c *Client) *Client { return c },
			fx.As(new(Doer)),
		),
	),
)

// TransportParams groups the dependencies of NewClientWithDI.
type TransportParams struct {
	fx.In

	Config Config
	Logger logger.Logger  `optional:"true"`
	Tracer tracer.Tracer  `optional:"true"`
	Hooks  []ResponseHook `group:"response_hooks"`

	Observers []observability.Observer `group:"observers"`
}

// NewClientWithDI builds the transport from injected dependencies.
func NewClientWithDI(p TransportParams) (*Client, error) {
	c, err := New(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		c.WithLogger(logger.Named(p.Logger, "transport"))
	}
	if p.Tracer != nil {
		c.WithTracer(p.Tracer)
	}
	if len(p.Observers) > 0 {
		c.WithObserver(observability.Observers(p.Observers))
	}
	for _, h := range p.Hooks {
		c.WithResponseHook(h)
	}
	return c, nil
}
