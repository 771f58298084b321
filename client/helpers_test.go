package client

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/mdm-client/api"
	tf "github.com/aalemi-dev/mdm-client/internal/testfixtures"
	"github.com/aalemi-dev/mdm-client/transport"
)

const fixtureUDID = "0a1b2c3d4e5f60718293a4b5c6d7e8f901234567"

func newTestClient(t *testing.T) (*Client, *tf.Server) {
	t.Helper()
	srv := tf.NewServer(t)
	tr, err := transport.New(transport.Config{ID: "1234", Token: "s3cret", URL: srv.URL})
	require.NoError(t, err)
	return New(api.NewWithTransport(tr, nil)), srv
}

func decodeRecord[R any](t *testing.T, m map[string]any) R {
	t.Helper()
	var r R
	require.NoError(t, json.Unmarshal(tf.JSON(m), &r))
	return r
}

func newDevice(t *testing.T, c *Client, mutate func(map[string]any)) *Device {
	t.Helper()
	m := tf.Record(tf.Device)
	if mutate != nil {
		mutate(m)
	}
	return c.Factory().CreateDevice(decodeRecord[api.DeviceRecord](t, m))
}

func newUser(t *testing.T, c *Client, mutate func(map[string]any)) *User {
	t.Helper()
	m := tf.Record(tf.User)
	if mutate != nil {
		mutate(m)
	}
	return c.Factory().CreateUser(decodeRecord[api.UserRecord](t, m))
}

func hexUDID(i int) string {
	return fmt.Sprintf("%040x", i)
}
