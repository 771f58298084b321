package audit

import (
	"context"

	"github.com/aalemi-dev/mdm-client/observability"
)

var _ observability.Observer = (*Publisher)(nil)

// ObserveOperation publishes write operations of the api component.
// Publishing failures are logged and never reach the API caller.
func (p *Publisher) ObserveOperation(op observability.OperationContext) {
	if p.writer == nil || op.Component != "api" || !op.IsWrite() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.WriteTimeout)
	defer cancel()

	e := eventFrom(op)
	if err := p.Publish(ctx, e); err != nil && p.logger != nil {
		p.logger.WarnWithContext(ctx, "audit event dropped", err, map[string]interface{}{
			"operation": e.Operation,
			"route":     e.Route,
			"target":    e.Target,
		})
	}
}
