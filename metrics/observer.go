package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aalemi-dev/mdm-client/observability"
)

// Outcome labels. Errors that implement ErrorKind() string (the transport,
// api and schema error types do) are labelled with that kind instead.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type kinded interface {
	ErrorKind() string
}

// OperationObserver turns observability events into Prometheus series:
//
//	<ns>_operations_total{component,operation,resource,outcome}
//	<ns>_operation_duration_seconds{component,operation}
//	<ns>_response_bytes_total{component,resource}
type OperationObserver struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	bytes      *prometheus.CounterVec
}

var _ observability.Observer = (*OperationObserver)(nil)

// NewOperationObserver registers the operation collectors on m.Registry.
func NewOperationObserver(m *Metrics) *OperationObserver {
	o := &OperationObserver{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "operations_total",
			Help:      "Completed client operations by outcome.",
		}, []string{"component", "operation", "resource", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "operation_duration_seconds",
			Help:      "Client operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"component", "operation"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "response_bytes_total",
			Help:      "Response body bytes received from the remote service.",
		}, []string{"component", "resource"}),
	}
	m.registerer.MustRegister(o.operations, o.durations, o.bytes)
	return o
}

// ObserveOperation records one event.
func (o *OperationObserver) ObserveOperation(ctx observability.OperationContext) {
	o.operations.WithLabelValues(ctx.Component, ctx.Operation, ctx.Resource, outcome(ctx.Error)).Inc()
	o.durations.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		o.bytes.WithLabelValues(ctx.Component, ctx.Resource).Add(float64(ctx.Size))
	}
}

func outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var k kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return OutcomeError
}
