package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/mdm-client/api"
	tf "github.com/aalemi-dev/mdm-client/internal/testfixtures"
	"github.com/aalemi-dev/mdm-client/transport"
)

func newLocation(t *testing.T, c *Client, id int) *Location {
	t.Helper()
	m := tf.Record(tf.Location)
	m["id"] = id
	return c.Factory().CreateLocation(decodeRecord[api.LocationRecord](t, m))
}

func devicesAt(t *testing.T, c *Client, n, locationID int) []*Device {
	t.Helper()
	out := make([]*Device, 0, n)
	for i := range n {
		out = append(out, newDevice(t, c, func(m map[string]any) {
			m["UDID"] = hexUDID(i)
			m["locationId"] = locationID
		}))
	}
	return out
}

func TestLocation_MoveDevicesChunks(t *testing.T) {
	t.Parallel()
	c, srv := newTestClient(t)
	srv.Reply("PUT /devices/migrate", http.StatusOK, tf.Ack("moved"))
	target := newLocation(t, c, 2)

	devices := devicesAt(t, c, 45, 1)
	devices = append(devices, devicesAt(t, c, 3, 2)...)

	require.NoError(t, target.MoveDevices(context.Background(), devices, nil))

	reqs := srv.Requests()
	require.Len(t, reqs, 3)
	sizes := make([]int, 0, len(reqs))
	for _, r := range reqs {
		body := r.JSONBody()
		sizes = append(sizes, len(body["udids"].([]any)))
		assert.EqualValues(t, 2, body["locationId"])
		assert.NotContains(t, body, "onlyDevice")
	}
	assert.Equal(t, []int{20, 20, 5}, sizes)
	assert.Equal(t, hexUDID(0), reqs[0].JSONBody()["udids"].([]any)[0])
	assert.Equal(t, hexUDID(44), reqs[2].JSONBody()["udids"].([]any)[4])
}

func TestLocation_MoveDevicesStopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	c, srv := newTestClient(t)
	srv.Reply("PUT /devices/migrate", http.StatusInternalServerError, map[string]any{"message": "busy"})

	err := newLocation(t, c, 2).MoveDevices(context.Background(), devicesAt(t, c, 30, 1), ptr(true))
	assert.True(t, transport.IsAPIError(err))
	require.Equal(t, 1, srv.Count())
	assert.Equal(t, true, srv.Last().JSONBody()["onlyDevice"])
}

func TestLocation_MoveDevicesNothingToDo(t *testing.T) {
	t.Parallel()
	c, srv := newTestClient(t)
	loc := newLocation(t, c, 1)

	require.NoError(t, loc.MoveDevices(context.Background(), nil, nil))
	require.NoError(t, loc.MoveDevices(context.Background(), devicesAt(t, c, 4, 1), nil))
	assert.Zero(t, srv.Count())

	err := loc.MoveDevices(context.Background(), []*Device{nil}, nil)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestLocation_MoveUsers(t *testing.T) {
	t.Parallel()
	c, srv := newTestClient(t)
	srv.Reply("PUT /users/42/migrate", http.StatusOK, tf.Ack("moved"))
	srv.Reply("PUT /users/43/migrate", http.StatusOK, tf.Ack("moved"))
	target := newLocation(t, c, 3)

	users := []*User{
		newUser(t, c, nil),
		newUser(t, c, func(m map[string]any) { m["id"] = 43 }),
		newUser(t, c, func(m map[string]any) { m["id"] = 44; m["locationId"] = 3 }),
	}
	require.NoError(t, target.MoveUsers(context.Background(), users, ptr(true)))

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/users/42/migrate", reqs[0].Path)
	assert.Equal(t, "/users/43/migrate", reqs[1].Path)
	assert.JSONEq(t, `{"locationId":3,"onlyUser":true}`, string(reqs[1].Body))
}

func TestLocation_Traversals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, srv := newTestClient(t)
	srv.Reply("GET /devices", http.StatusOK, tf.List("devices", tf.Record(tf.Device)))
	srv.Reply("GET /devices/groups", http.StatusOK, tf.List("deviceGroups", tf.Record(tf.DeviceGroup)))
	srv.Reply("GET /users", http.StatusOK, tf.List("users", tf.Record(tf.User)))
	srv.Reply("GET /users/groups", http.StatusOK, tf.List("groups", tf.Record(tf.UserGroup)))
	srv.Reply("GET /apps", http.StatusOK, tf.List("apps", tf.Record(tf.App)))
	srv.Reply("GET /profiles", http.StatusInternalServerError, "")
	loc := newLocation(t, c, 1)

	devices, err := loc.GetDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 1)
	assert.Equal(t, "locationId=1", srv.Last().RawQuery)

	dgs, err := loc.GetDeviceGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, dgs, 1)

	users, err := loc.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	ugs, err := loc.GetUserGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, ugs, 1)

	apps, err := loc.GetApps(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	profiles, err := loc.GetProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)

	assert.Equal(t, "1 School Road", loc.Street())
	assert.Empty(t, loc.City())
	assert.Equal(t, KindLocation, loc.Kind())
}
