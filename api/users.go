package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aalemi-dev/mdm-client/schema"
	"github.com/aalemi-dev/mdm-client/transport"
)

// UserQuery filters GetUsers. Nil fields are left out of the query.
type UserQuery struct {
	LocationID *int
	MemberOf   *int
	Email      *string
	Username   *string
}

// UserUpdate lists the user fields to change. Nil fields are not sent; a
// non-nil empty slice clears the list.
type UserUpdate struct {
	Username  *string `json:"username,omitzero"`
	Email     *string `json:"email,omitzero"`
	Domain    *string `json:"domain,omitzero"`
	FirstName *string `json:"firstName,omitzero"`
	LastName  *string `json:"lastName,omitzero"`
	Notes     *string `json:"notes,omitzero"`
	Password  *string `json:"password,omitzero"`
	MemberOf  []int   `json:"memberOf,omitzero"`

	// Classes are the ids of the groups the user teaches.
	Classes  []int `json:"teacherGroups,omitzero"`
	Children []int `json:"children,omitzero"`
}

func (u UserUpdate) empty() bool {
	return u.Username == nil && u.Email == nil && u.Domain == nil &&
		u.FirstName == nil && u.LastName == nil && u.Notes == nil &&
		u.Password == nil && u.MemberOf == nil && u.Classes == nil && u.Children == nil
}

// GroupUpdate lists the group fields to change.
type GroupUpdate struct {
	Name        *string `json:"name,omitzero"`
	Description *string `json:"description,omitzero"`
}

// GetUser fetches one user by id.
func (c *Client) GetUser(ctx context.Context, id int) (UserRecord, error) {
	const op = "get_user"
	if err := checkID(op, "id", id); err != nil {
		return UserRecord{}, err
	}
	var out struct {
		User UserRecord `json:"user"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/users/" + strconv.Itoa(id),
		route:  schema.RouteGetUser,
		target: strconv.Itoa(id),
	}, &out)
	return out.User, err
}

// GetUsers lists users matching q. An empty query lists all users.
func (c *Client) GetUsers(ctx context.Context, q UserQuery) ([]UserRecord, error) {
	const op = "get_users"
	if err := checkOptionalID(op, "locationId", q.LocationID); err != nil {
		return nil, err
	}
	if err := checkOptionalID(op, "memberOf", q.MemberOf); err != nil {
		return nil, err
	}
	var out struct {
		Users []UserRecord `json:"users"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/users",
		route:  schema.RouteGetUsers,
		query: transport.Query{
			"locationId": q.LocationID,
			"memberOf":   q.MemberOf,
			"email":      q.Email,
			"username":   q.Username,
		},
	}, &out)
	return out.Users, err
}

// UpdateUser writes the fields set in u. An empty update is rejected.
func (c *Client) UpdateUser(ctx context.Context, id int, u UserUpdate) (string, error) {
	const op = "update_user"
	if err := checkID(op, "id", id); err != nil {
		return "", err
	}
	if u.empty() {
		return "", invalid(op, "update", "{}", ErrInvalidArgument)
	}
	if err := checkIDs(op, "memberOf", u.MemberOf); err != nil {
		return "", err
	}
	if err := checkIDs(op, "teacherGroups", u.Classes); err != nil {
		return "", err
	}
	if err := checkIDs(op, "children", u.Children); err != nil {
		return "", err
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPut,
		path:   "/users/" + strconv.Itoa(id),
		route:  schema.RouteUpdateUser,
		body:   u,
		target: strconv.Itoa(id),
	})
}

// MoveUser moves a user to another location. With onlyUser set, the
// user's devices stay where they are; nil keeps the service default.
func (c *Client) MoveUser(ctx context.Context, id, locationID int, onlyUser *bool) (string, error) {
	const op = "move_user"
	if err := checkID(op, "id", id); err != nil {
		return "", err
	}
	if err := checkID(op, "locationId", locationID); err != nil {
		return "", err
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPut,
		path:   "/users/" + strconv.Itoa(id) + "/migrate",
		route:  schema.RouteMoveUser,
		body: struct {
			LocationID int   `json:"locationId"`
			OnlyUser   *bool `json:"onlyUser,omitempty"`
		}{locationID, onlyUser},
		target: strconv.Itoa(id),
	})
}

// GetUserGroups lists user groups, optionally filtered by location.
func (c *Client) GetUserGroups(ctx context.Context, locationID *int) ([]UserGroupRecord, error) {
	const op = "get_user_groups"
	if err := checkOptionalID(op, "locationId", locationID); err != nil {
		return nil, err
	}
	var out struct {
		Groups []UserGroupRecord `json:"groups"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/users/groups",
		route:  schema.RouteGetUserGroups,
		query:  transport.Query{"locationId": locationID},
	}, &out)
	return out.Groups, err
}

// GetUserGroup fetches one user group by id.
func (c *Client) GetUserGroup(ctx context.Context, id int) (UserGroupRecord, error) {
	const op = "get_user_group"
	if err := checkID(op, "id", id); err != nil {
		return UserGroupRecord{}, err
	}
	var out struct {
		Group UserGroupRecord `json:"group"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/users/groups/" + strconv.Itoa(id),
		route:  schema.RouteGetUserGroup,
		target: strconv.Itoa(id),
	}, &out)
	return out.Group, err
}

// UpdateUserGroup renames or redescribes a user group.
func (c *Client) UpdateUserGroup(ctx context.Context, id int, g GroupUpdate) (string, error) {
	const op = "update_user_group"
	if err := checkID(op, "id", id); err != nil {
		return "", err
	}
	if g.Name == nil && g.Description == nil {
		return "", invalid(op, "update", "{}", ErrInvalidArgument)
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPut,
		path:   "/users/groups/" + strconv.Itoa(id),
		route:  schema.RouteUpdateUserGroup,
		body:   g,
		target: strconv.Itoa(id),
	})
}
