package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/mdm-client/api"
	tf "github.com/aalemi-dev/mdm-client/internal/testfixtures"
)

func newUserGroup(t *testing.T, c *Client, id int) *UserGroup {
	t.Helper()
	m := tf.Record(tf.UserGroup)
	m["id"] = id
	return c.Factory().CreateUserGroup(decodeRecord[api.UserGroupRecord](t, m))
}

func TestUser_SettersSkipUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, srv := newTestClient(t)
	u := newUser(t, c, nil)

	require.NoError(t, u.SetUsername(ctx, "ada"))
	require.NoError(t, u.SetEmail(ctx, "ada@example.edu"))
	require.NoError(t, u.SetDomain(ctx, ""))
	require.NoError(t, u.SetFirstName(ctx, "Ada"))
	require.NoError(t, u.SetLastName(ctx, "Lovelace"))
	require.NoError(t, u.SetNotes(ctx, ""))
	require.NoError(t, u.SetGroups(ctx, []*UserGroup{newUserGroup(t, c, 8), newUserGroup(t, c, 7)}))
	require.NoError(t, u.SetClasses(ctx, []*UserGroup{newUserGroup(t, c, 3)}))
	require.NoError(t, u.SetChildren(ctx, nil))
	require.NoError(t, u.SetLocation(ctx, newLocation(t, c, 1), nil))
	assert.Zero(t, srv.Count())
}

func TestUser_SettersWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, srv := newTestClient(t)
	srv.Reply("PUT /users/42", http.StatusOK, tf.Ack("updated"))
	u := newUser(t, c, nil)

	require.NoError(t, u.SetEmail(ctx, "ada.l@example.edu"))
	assert.JSONEq(t, `{"email":"ada.l@example.edu"}`, string(srv.Last().Body))

	require.NoError(t, u.SetPassword(ctx, "hunter2"))
	assert.JSONEq(t, `{"password":"hunter2"}`, string(srv.Last().Body))

	require.NoError(t, u.SetGroups(ctx, []*UserGroup{newUserGroup(t, c, 7)}))
	assert.JSONEq(t, `{"memberOf":[7]}`, string(srv.Last().Body))

	require.NoError(t, u.SetGroups(ctx, []*UserGroup{}))
	assert.JSONEq(t, `{"memberOf":[]}`, string(srv.Last().Body))

	require.NoError(t, u.SetClasses(ctx, nil))
	assert.JSONEq(t, `{"teacherGroups":[]}`, string(srv.Last().Body))

	require.NoError(t, u.SetChildren(ctx, []*User{newUser(t, c, func(m map[string]any) { m["id"] = 50 })}))
	assert.JSONEq(t, `{"children":[50]}`, string(srv.Last().Body))

	assert.Equal(t, 6, srv.Count())
	assert.Equal(t, "ada@example.edu", u.Email(), "snapshot stays stale until Update")

	err := u.SetPassword(ctx, "")
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
	assert.Equal(t, 6, srv.Count())
}

func TestUser_Update(t *testing.T) {
	t.Parallel()
	c, srv := newTestClient(t)
	fresh := tf.Record(tf.User)
	fresh["email"] = "ada.l@example.edu"
	srv.Reply("GET /users/42", http.StatusOK, tf.Single("user", fresh))
	u := newUser(t, c, nil)

	require.NoError(t, u.Update(context.Background()))
	assert.Equal(t, "ada.l@example.edu", u.Email())
	assert.Equal(t, 42, u.ID())
}

func TestUser_Traversals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, srv := newTestClient(t)
	other := tf.Record(tf.UserGroup)
	other["id"] = 99
	srv.Reply("GET /users/groups", http.StatusOK, tf.List("groups", tf.Record(tf.UserGroup), other))
	srv.Reply("GET /devices", http.StatusOK, tf.List("devices", tf.Record(tf.Device)))
	child := tf.Record(tf.User)
	child["id"] = 50
	srv.Reply("GET /users/50", http.StatusOK, tf.Single("user", child))

	u := newUser(t, c, func(m map[string]any) { m["children"] = []int{50, 51} })

	groups, err := u.GetGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 7, groups[0].ID())

	devices, err := u.GetDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "ownerId=42", srv.Last().RawQuery)

	children, err := u.GetChildren(ctx)
	require.NoError(t, err)
	require.Len(t, children, 1, "the missing child is left out")
	assert.Equal(t, 50, children[0].ID())

	classes, err := newUser(t, c, func(m map[string]any) { m["teacherGroups"] = []int{} }).GetClasses(ctx)
	require.NoError(t, err)
	assert.Empty(t, classes)
}
