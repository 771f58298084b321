package api

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/observability"
	"github.com/aalemi-dev/mdm-client/schema"
	"github.com/aalemi-dev/mdm-client/transport"
)

// FXModule provides *Client and the API interface on top of the
// transport.Doer in the graph. Observers registered in the "observers"
// value group (metrics, audit) all receive every route event.
var FXModule = fx.Module("api",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(c *Client) *Client { return c },
			fx.As(new(API)),
		),
	),
)

// APIParams groups the dependencies of NewClientWithDI.
type APIParams struct {
	fx.In

	Transport transport.Doer
	Registry  *schema.Registry         `optional:"true"`
	Logger    logger.Logger            `optional:"true"`
	Observers []observability.Observer `group:"observers"`
}

// NewClientWithDI builds the API surface from injected dependencies.
func NewClientWithDI(p APIParams) *Client {
	c := NewWithTransport(p.Transport, p.Registry)
	if p.Logger != nil {
		c.WithLogger(logger.Named(p.Logger, "api"))
	}
	if len(p.Observers) > 0 {
		c.WithObserver(observability.Observers(p.Observers))
	}
	return c
}
