package audit

import (
	"errors"
	"time"

	"github.com/aalemi-dev/mdm-client/observability"
)

// Outcomes recorded in Event.Outcome.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Event is one remote mutation issued through the API surface.
type Event struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Source     string    `json:"source,omitempty"`
	Operation  string    `json:"operation"`
	Route      string    `json:"route"`
	Method     string    `json:"method,omitempty"`
	Path       string    `json:"path,omitempty"`
	Target     string    `json:"target,omitempty"`
	Outcome    string    `json:"outcome"`
	ErrorKind  string    `json:"errorKind,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"durationMs"`
}

type kinded interface {
	ErrorKind() string
}

func eventFrom(op observability.OperationContext) Event {
	e := Event{
		Operation:  op.Operation,
		Route:      op.Resource,
		Target:     op.SubResource,
		Outcome:    OutcomeSuccess,
		DurationMS: op.Duration.Milliseconds(),
	}
	e.Method, _ = op.Metadata["method"].(string)
	e.Path, _ = op.Metadata["path"].(string)
	if op.Error != nil {
		e.Outcome = OutcomeFailure
		e.Error = op.Error.Error()
		var k kinded
		if errors.As(op.Error, &k) {
			e.ErrorKind = k.ErrorKind()
		}
	}
	return e
}
