package observability_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aalemi-dev/mdm-client/observability"
)

type recordingObserver struct {
	events []observability.OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx observability.OperationContext) {
	r.events = append(r.events, ctx)
}

func TestNoOpObserver(t *testing.T) {
	observer := observability.NewNoOpObserver()

	assert.NotPanics(t, func() {
		observer.ObserveOperation(observability.OperationContext{Component: "api", Operation: "get_device"})
	})
}

func TestObservers_FanOut(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}
	obs := observability.Observers{first, nil, second}

	event := observability.OperationContext{
		Component:   "api",
		Operation:   "restart_device",
		Resource:    "POST /devices/:udid/restart",
		SubResource: "abc-123",
		Duration:    12 * time.Millisecond,
		Error:       errors.New("boom"),
	}
	obs.ObserveOperation(event)

	assert.Equal(t, []observability.OperationContext{event}, first.events)
	assert.Equal(t, []observability.OperationContext{event}, second.events)
}

func TestOperationContext_IsWrite(t *testing.T) {
	assert.False(t, observability.OperationContext{}.IsWrite())
	assert.False(t, observability.OperationContext{Metadata: map[string]interface{}{"write": "yes"}}.IsWrite())
	assert.True(t, observability.OperationContext{Metadata: map[string]interface{}{"write": true}}.IsWrite())
}
