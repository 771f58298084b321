package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/observability"
)

// FXModule provides *Metrics, the *OperationObserver and starts the
// /metrics server with the application.
//
// The observer is also offered in the "observers" value group so the api
// module can fan events out to it together with other observers.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		NewOperationObserver,
		fx.Annotate(
			func(o *OperationObserver) observability.Observer { return o },
			fx.ResultTags(`group:"observers"`),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams are the dependencies of RegisterMetricsLifecycle.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle serves /metrics between start and stop.
func RegisterMetricsLifecycle(p MetricsLifecycleParams) {
	if p.Metrics.Server == nil {
		return
	}
	srv := p.Metrics.Server
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) && p.Logger != nil {
					p.Logger.Error("metrics server stopped", err, map[string]interface{}{"address": srv.Addr})
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
