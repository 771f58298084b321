package observability

import "time"

// Observer receives one event per completed operation of the client's
// components (transport requests, API route calls). It is optional: every
// component works without one.
type Observer interface {
	// ObserveOperation is called after an operation finishes, successfully or not.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a single completed operation.
type OperationContext struct {
	// Component names the emitting package: "transport" or "api".
	Component string

	// Operation is the method-level name, e.g. "get_device" or "move_devices".
	Operation string

	// Resource is the route key the operation hit, e.g. "GET /devices/:udid".
	Resource string

	// SubResource carries the entity identity when there is one (UDID, numeric id).
	SubResource string

	// Duration is the wall time from start to completion.
	Duration time.Duration

	// Error is the returned error, nil on success.
	Error error

	// Size is the response body size in bytes, when known.
	Size int64

	// Metadata holds operation-specific extras such as "status_code" or "write".
	Metadata map[string]interface{}
}

// IsWrite reports whether the operation was flagged as a remote mutation.
func (o OperationContext) IsWrite() bool {
	w, _ := o.Metadata["write"].(bool)
	return w
}

// Observers fans a single event out to several observers in order.
// Nil entries are skipped.
type Observers []Observer

// ObserveOperation forwards ctx to every non-nil observer.
func (o Observers) ObserveOperation(ctx OperationContext) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveOperation(ctx)
		}
	}
}
