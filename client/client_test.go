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

func TestFactory_Kinds(t *testing.T) {
	t.Parallel()
	f := NewFactory(nil)
	objects := map[Kind]Object{
		KindDevice:      f.CreateDevice(api.DeviceRecord{}),
		KindUser:        f.CreateUser(api.UserRecord{}),
		KindDeviceGroup: f.CreateDeviceGroup(api.DeviceGroupRecord{}),
		KindUserGroup:   f.CreateUserGroup(api.UserGroupRecord{}),
		KindLocation:    f.CreateLocation(api.LocationRecord{}),
		KindApp:         f.CreateApp(api.AppRecord{}),
		KindProfile:     f.CreateProfile(api.ProfileRecord{}),
	}
	for kind, obj := range objects {
		assert.Equal(t, kind, obj.Kind())
	}
}

func TestFactory_ProfileSchedule(t *testing.T) {
	t.Parallel()
	c, _ := newTestClient(t)

	p := c.Factory().CreateProfile(decodeRecord[api.ProfileRecord](t, tf.Record(tf.Profile)))
	s := p.Schedule()
	require.NotNil(t, s)
	assert.Equal(t, KindProfileSchedule, s.Kind())
	assert.Equal(t, 900, s.ProfileID())
	assert.Equal(t, "08:00", s.StartTime())
	assert.Equal(t, "15:30", s.EndTime())
	assert.True(t, s.UseHolidays())
	assert.Len(t, s.DaysOfTheWeek(), 5)

	always := c.Factory().CreateProfile(api.ProfileRecord{ID: 901, Name: "Wi-Fi"})
	assert.Nil(t, always.Schedule())
}

func TestClient_LookupsPropagateErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, srv := newTestClient(t)
	srv.Reply("GET /users/42", http.StatusInternalServerError, "")

	u, err := c.GetUser(ctx, 42)
	assert.Nil(t, u)
	assert.True(t, transport.IsAPIError(err))

	d, err := c.GetDevice(ctx, "nope!", false)
	assert.Nil(t, d)
	assert.True(t, api.IsValidationError(err))
}

func TestClient_Lookups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, srv := newTestClient(t)
	srv.Reply("GET /devices/"+fixtureUDID, http.StatusOK, tf.Single("device", tf.DeviceWithApps()))
	srv.Reply("GET /devices", http.StatusOK, tf.List("devices", tf.Record(tf.Device)))
	srv.Reply("GET /users", http.StatusOK, tf.List("users", tf.Record(tf.User)))
	srv.Reply("GET /devices/groups/5", http.StatusOK, tf.Single("deviceGroup", tf.Record(tf.DeviceGroup)))
	srv.Reply("GET /users/groups", http.StatusOK, tf.List("groups", tf.Record(tf.UserGroup)))
	srv.Reply("GET /locations", http.StatusOK, tf.List("locations", tf.Record(tf.Location)))
	srv.Reply("GET /apps/300", http.StatusOK, tf.Single("app", tf.Record(tf.App)))
	srv.Reply("GET /profiles", http.StatusOK, tf.List("profiles", tf.Record(tf.Profile)))

	d, err := c.GetDevice(ctx, fixtureUDID, true)
	require.NoError(t, err)
	assert.Len(t, d.InstalledApps(), 2)

	bySerial, err := c.GetDeviceBySerial(ctx, "DMPXK1ABCD12")
	require.NoError(t, err)
	assert.Equal(t, fixtureUDID, bySerial.UDID())

	users, err := c.GetUsers(ctx, api.UserQuery{})
	require.NoError(t, err)
	assert.Len(t, users, 1)

	g, err := c.GetDeviceGroup(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Library", g.Name())

	ugs, err := c.GetUserGroups(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, ugs, 1)

	locs, err := c.GetLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, locs, 1)

	app, err := c.GetApp(ctx, 300)
	require.NoError(t, err)
	assert.Equal(t, "Keynote", app.Name())

	profiles, err := c.GetProfiles(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	_, err := NewFromConfig(api.Config{})
	assert.Error(t, err)

	c, err := NewFromConfig(api.Config{Config: transport.Config{ID: "1", Token: "t", URL: "http://localhost"}})
	require.NoError(t, err)
	assert.NotNil(t, c.API())
	assert.NotNil(t, c.Factory())
}
