package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tf "github.com/aalemi-dev/mdm-client/internal/testfixtures"
)

// validSamples holds one well-formed response per route.
func validSamples() map[string]any {
	return map[string]any{
		RouteGetUser:         tf.Single("user", tf.Record(tf.User)),
		RouteGetUsers:        tf.List("users", tf.Record(tf.User)),
		RouteUpdateUser:      tf.Ack("UserSaved"),
		RouteMoveUser:        tf.Ack("UserMoved"),
		RouteGetUserGroups:   tf.List("groups", tf.Record(tf.UserGroup)),
		RouteGetUserGroup:    tf.Single("group", tf.Record(tf.UserGroup)),
		RouteUpdateUserGroup: tf.Ack("GroupSaved"),

		RouteGetDevices:        tf.List("devices", tf.Record(tf.Device), tf.DeviceWithApps()),
		RouteGetDevice:         tf.Single("device", tf.Record(tf.Device)),
		RouteGetDeviceWithApps: tf.Single("device", tf.DeviceWithApps()),
		RouteRestartDevice:     tf.Ack("RestartCommandSent"),
		RouteWipeDevice:        tf.Ack("WipeCommandSent"),
		RouteSetDeviceOwner:    tf.Ack("OwnerSet"),
		RouteMoveDevice:        tf.Ack("DeviceMoved"),
		RouteMoveDevices:       tf.Ack("DevicesMoved"),
		RouteSetDeviceDetails:  tf.Ack("DetailsSaved"),

		RouteGetDeviceGroups:   tf.List("deviceGroups", tf.Record(tf.DeviceGroup)),
		RouteGetDeviceGroup:    tf.Single("deviceGroup", tf.Record(tf.DeviceGroup)),
		RouteUpdateDeviceGroup: tf.Ack("GroupSaved"),

		RouteGetApps:      tf.List("apps", tf.Record(tf.App), tf.Record(tf.AppEnterprise)),
		RouteGetApp:       tf.Single("app", tf.Record(tf.App)),
		RouteGetLocations: tf.List("locations", tf.Record(tf.Location)),
		RouteGetLocation:  tf.Single("location", tf.Record(tf.Location)),
		RouteGetProfiles:  tf.List("profiles", tf.Record(tf.Profile)),
		RouteGetProfile:   tf.Single("profile", tf.Record(tf.Profile)),
	}
}

func TestRegistry_CoversEveryRoute(t *testing.T) {
	t.Parallel()
	samples := validSamples()
	r := NewRegistry()

	require.Len(t, r.Routes(), len(samples))
	for _, route := range r.Routes() {
		assert.Contains(t, samples, route)
	}
}

func TestAssertValid_AcceptsSamples(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	for route, sample := range validSamples() {
		assert.NoError(t, r.AssertValid(route, sample), route)
	}
}

func TestAssertValid_AcceptsOptionalFieldsAbsent(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	device := tf.Record(tf.Device)
	for _, optional := range []string{"assetTag", "notes", "lastCheckin", "modified", "region", "apps"} {
		delete(device, optional)
	}
	assert.NoError(t, r.AssertValid(RouteGetDevice, tf.Single("device", device)))

	users := tf.List("users")
	delete(users, "count")
	assert.NoError(t, r.AssertValid(RouteGetUsers, users))
}

func TestAssertValid_MissingRequiredField(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	// every required device property, removed one at a time
	for _, f := range deviceSchema.Fields() {
		if !f.Required {
			continue
		}
		device := tf.Record(tf.Device)
		delete(device, f.Name)

		err := r.AssertValid(RouteGetDevice, tf.Single("device", device))
		var se *SchemaError
		require.ErrorAs(t, err, &se, f.Name)
		assert.Equal(t, RouteGetDevice, se.Route)
		require.Len(t, se.Issues, 1)
		assert.Equal(t, CodeRequired, se.Issues[0].Code)
		assert.Equal(t, "/device/"+f.Name, se.Issues[0].Path)
	}
}

func TestAssertValid_WrongPrimitiveTypes(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	cases := []struct {
		field string
		value any
		path  string
	}{
		{"id", "42", "/user/id"},
		{"id", json.Number("4.5"), "/user/id"},
		{"id", json.Number("42.0"), "/user/id"},
		{"id", json.Number("1e300"), "/user/id"},
		{"email", json.Number("1"), "/user/email"},
		{"exclude", "false", "/user/exclude"},
		{"groupIds", []any{json.Number("1"), "two"}, "/user/groupIds/1"},
		{"groups", "Teachers", "/user/groups"},
		{"username", nil, "/user/username"},
	}
	for _, tc := range cases {
		user := tf.Record(tf.User)
		user[tc.field] = tc.value

		err := r.AssertValid(RouteGetUser, tf.Single("user", user))
		var se *SchemaError
		require.ErrorAs(t, err, &se, tc.field)
		require.Len(t, se.Issues, 1, tc.field)
		assert.Equal(t, CodeType, se.Issues[0].Code, tc.field)
		assert.Equal(t, tc.path, se.Issues[0].Path, tc.field)
	}
}

func TestAssertValid_UnknownEnumValue(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	for _, enroll := range EnrollTypes {
		device := tf.Record(tf.Device)
		device["enrollType"] = enroll
		assert.NoError(t, r.AssertValid(RouteGetDevice, tf.Single("device", device)), enroll)
	}

	device := tf.Record(tf.Device)
	device["enrollType"] = "byod"
	err := r.AssertValid(RouteGetDevice, tf.Single("device", device))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, CodeEnum, se.Issues[0].Code)

	group := tf.Record(tf.UserGroup)
	group["acl"] = map[string]any{"teacher": "maybe", "parent": "deny"}
	err = r.AssertValid(RouteGetUserGroup, tf.Single("group", group))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "/group/acl/teacher", se.Issues[0].Path)
}

func TestAssertValid_NestedAndNullable(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	device := tf.Record(tf.Device)
	device["owner"] = map[string]any{"name": "nobody"}
	err := r.AssertValid(RouteGetDevice, tf.Single("device", device))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "/device/owner/id", se.Issues[0].Path)

	app := tf.Record(tf.App)
	app["adamId"] = nil
	assert.NoError(t, r.AssertValid(RouteGetApp, tf.Single("app", app)))

	loc := tf.Record(tf.Location)
	loc["name"] = nil
	assert.Error(t, r.AssertValid(RouteGetLocation, tf.Single("location", loc)))
}

func TestAssertValid_DeviceWithAppsRequiresApps(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	plain := tf.Single("device", tf.Record(tf.Device))
	assert.NoError(t, r.AssertValid(RouteGetDevice, plain))

	err := r.AssertValid(RouteGetDeviceWithApps, plain)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "/device/apps", se.Issues[0].Path)
}

func TestAssertValid_RootAndEnvelope(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	err := r.AssertValid(RouteGetApps, []any{})
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "", se.Issues[0].Path)
	assert.Contains(t, se.Error(), "GET /apps")

	err = r.AssertValid(RouteRestartDevice, map[string]any{"code": json.Number("200")})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "/message", se.Issues[0].Path)
}

func TestAssertValid_UnknownRoute(t *testing.T) {
	t.Parallel()
	err := NewRegistry().AssertValid("DELETE /devices/:udid", map[string]any{})
	assert.True(t, errors.Is(err, ErrUnknownRoute))
	assert.False(t, IsSchemaError(err))
}

func TestSchemaError_Message(t *testing.T) {
	t.Parallel()
	err := &SchemaError{Route: RouteGetUser, Issues: []Issue{
		{Path: "/user/id", Code: CodeRequired, Message: `missing required property "id"`},
		{Path: "/user/email", Code: CodeType, Message: "expected string, got number"},
	}}
	assert.Equal(t, `schema: response for GET /users/:id failed validation: /user/id: missing required property "id" (and 1 more)`, err.Error())
	assert.Equal(t, "schema_error", err.ErrorKind())
	assert.True(t, IsSchemaError(err))
}

func TestDefault_IsShared(t *testing.T) {
	t.Parallel()
	assert.Same(t, Default(), Default())
}
