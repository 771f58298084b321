// Package observability defines the hook the client's components use to
// report completed operations.
//
// The transport reports every HTTP exchange (Component "transport") and the
// API surface reports every route call (Component "api"). Applications plug
// in metrics, auditing or logging by implementing Observer:
//
//	type countingObserver struct{ n atomic.Int64 }
//
//	func (c *countingObserver) ObserveOperation(ctx observability.OperationContext) {
//	    c.n.Add(1)
//	}
//
// Several observers can be combined with Observers:
//
//	obs := observability.Observers{metricsObserver, auditPublisher}
//	apiClient := api.New(cfg).WithObserver(obs)
package observability
