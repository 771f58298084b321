package audit

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

func newEventID() string {
	return uuid.NewString()
}

func encode(e Event) (kafka.Message, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("audit: failed to encode event: %w", err)
	}
	key := e.Target
	if key == "" {
		key = e.Route
	}
	return kafka.Message{
		Key:   []byte(key),
		Value: body,
		Time:  e.Time,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(e.ID)},
			{Key: "operation", Value: []byte(e.Operation)},
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}
