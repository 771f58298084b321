package audit

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/observability"
)

// FXModule provides the *Publisher, offers it to the "observers" value
// group consumed by the api module and closes it on stop.
var FXModule = fx.Module("audit",
	fx.Provide(
		NewPublisherWithDI,
		fx.Annotate(
			func(p *Publisher) observability.Observer { return p },
			fx.ResultTags(`group:"observers"`),
		),
	),
	fx.Invoke(RegisterAuditLifecycle),
)

// AuditParams groups the dependencies of NewPublisherWithDI.
type AuditParams struct {
	fx.In

	Config Config
	Logger logger.Logger `optional:"true"`
}

// NewPublisherWithDI builds the publisher from injected dependencies.
func NewPublisherWithDI(p AuditParams) (*Publisher, error) {
	pub, err := NewPublisher(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		pub.WithLogger(logger.Named(p.Logger, "audit"))
	}
	return pub, nil
}

// RegisterAuditLifecycle closes the publisher when the app stops.
func RegisterAuditLifecycle(lc fx.Lifecycle, p *Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return p.Close()
		},
	})
}
