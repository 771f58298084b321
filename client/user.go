package client

import (
	"context"
	"fmt"
	"slices"

	"github.com/aalemi-dev/mdm-client/api"
	"github.com/aalemi-dev/mdm-client/transport"
)

// User wraps a user record.
type User struct {
	link
	snap *snapshot[api.UserRecord]
}

func (*User) Kind() Kind { return KindUser }
func (*User) object()    {}

func (u *User) Record() api.UserRecord { return *u.snap.get() }

func (u *User) ID() int              { return u.snap.get().ID }
func (u *User) Email() string        { return u.snap.get().Email }
func (u *User) Username() string     { return u.snap.get().Username }
func (u *User) Domain() string       { return deref(u.snap.get().Domain) }
func (u *User) FirstName() string    { return u.snap.get().FirstName }
func (u *User) LastName() string     { return u.snap.get().LastName }
func (u *User) Name() string         { return u.snap.get().Name }
func (u *User) Notes() string        { return deref(u.snap.get().Notes) }
func (u *User) Trashed() bool        { return u.snap.get().Trashed }
func (u *User) LocationID() int      { return u.snap.get().LocationID }
func (u *User) DeviceCount() int     { return u.snap.get().DeviceCount }
func (u *User) GroupIDs() []int      { return slices.Clone(u.snap.get().GroupIDs) }
func (u *User) GroupNames() []string { return slices.Clone(u.snap.get().Groups) }
func (u *User) ClassIDs() []int      { return slices.Clone(u.snap.get().TeacherGroups) }
func (u *User) ChildIDs() []int      { return slices.Clone(u.snap.get().Children) }

// IsExcluded reports whether the user is exempt from teacher restrictions.
func (u *User) IsExcluded() bool { return u.snap.get().Exclude }

// Update re-fetches the user and replaces the snapshot.
func (u *User) Update(ctx context.Context) error {
	rec, err := u.api.GetUser(ctx, u.ID())
	if err != nil {
		return err
	}
	if rec.ID != u.ID() {
		return fmt.Errorf("%w: user %d, got %d", ErrIdentityMismatch, u.ID(), rec.ID)
	}
	u.snap.swap(rec)
	return nil
}

func (u *User) update(ctx context.Context, upd api.UserUpdate) error {
	_, err := u.api.UpdateUser(ctx, u.ID(), upd)
	return err
}

// SetUsername writes the username unless it is unchanged.
func (u *User) SetUsername(ctx context.Context, username string) error {
	if unchanged(u.Username(), username) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{Username: &username})
}

// SetEmail writes the email address unless it is unchanged.
func (u *User) SetEmail(ctx context.Context, email string) error {
	if unchanged(u.Email(), email) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{Email: &email})
}

// SetDomain writes the domain unless it is unchanged.
func (u *User) SetDomain(ctx context.Context, domain string) error {
	if unchangedString(u.snap.get().Domain, domain) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{Domain: &domain})
}

// SetFirstName writes the first name unless it is unchanged.
func (u *User) SetFirstName(ctx context.Context, name string) error {
	if unchanged(u.FirstName(), name) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{FirstName: &name})
}

// SetLastName writes the last name unless it is unchanged.
func (u *User) SetLastName(ctx context.Context, name string) error {
	if unchanged(u.LastName(), name) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{LastName: &name})
}

// SetNotes writes the user notes unless they are unchanged.
func (u *User) SetNotes(ctx context.Context, notes string) error {
	if unchangedString(u.snap.get().Notes, notes) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{Notes: &notes})
}

// SetPassword always writes: the current password is not readable.
func (u *User) SetPassword(ctx context.Context, password string) error {
	if password == "" {
		return invalidArg("set_password", "password", `""`, api.ErrInvalidArgument)
	}
	return u.update(ctx, api.UserUpdate{Password: &password})
}

// SetGroups replaces the user's group memberships.
func (u *User) SetGroups(ctx context.Context, groups []*UserGroup) error {
	ids, err := userGroupIDs("set_groups", groups)
	if err != nil {
		return err
	}
	if unchangedSet(u.GroupIDs(), ids) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{MemberOf: ids})
}

// SetClasses replaces the groups the user teaches.
func (u *User) SetClasses(ctx context.Context, classes []*UserGroup) error {
	ids, err := userGroupIDs("set_classes", classes)
	if err != nil {
		return err
	}
	if unchangedSet(u.ClassIDs(), ids) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{Classes: ids})
}

// SetChildren replaces the users this user is a parent of.
func (u *User) SetChildren(ctx context.Context, children []*User) error {
	ids := make([]int, 0, len(children))
	for _, c := range children {
		if c == nil {
			return invalidArg("set_children", "children", nil, api.ErrInvalidArgument)
		}
		ids = append(ids, c.ID())
	}
	if unchangedSet(u.ChildIDs(), ids) {
		return nil
	}
	return u.update(ctx, api.UserUpdate{Children: ids})
}

// SetLocation moves the user. With onlyUser set, the user's devices stay.
func (u *User) SetLocation(ctx context.Context, loc *Location, onlyUser *bool) error {
	if loc == nil {
		return invalidArg("set_location", "location", nil, api.ErrInvalidArgument)
	}
	if unchanged(u.LocationID(), loc.ID()) {
		return nil
	}
	_, err := u.api.MoveUser(ctx, u.ID(), loc.ID(), onlyUser)
	return err
}

// GetLocation returns the user's location, nil when unavailable.
func (u *User) GetLocation(ctx context.Context) (*Location, error) {
	return fetchLocation(ctx, u.link, u.LocationID())
}

// GetGroups returns the user groups the user is a member of.
func (u *User) GetGroups(ctx context.Context) ([]*UserGroup, error) {
	return u.groupsByID(ctx, u.GroupIDs())
}

// GetClasses returns the user groups the user teaches.
func (u *User) GetClasses(ctx context.Context) ([]*UserGroup, error) {
	return u.groupsByID(ctx, u.ClassIDs())
}

func (u *User) groupsByID(ctx context.Context, ids []int) ([]*UserGroup, error) {
	if len(ids) == 0 {
		return []*UserGroup{}, nil
	}
	loc := u.LocationID()
	recs, err := u.api.GetUserGroups(ctx, &loc)
	if err != nil {
		return bestEffort([]*UserGroup{}, err)
	}
	recs = slices.DeleteFunc(recs, func(g api.UserGroupRecord) bool {
		return !slices.Contains(ids, g.ID)
	})
	return wrapAll(recs, u.factory.CreateUserGroup), nil
}

// GetDevices returns the devices owned by the user.
func (u *User) GetDevices(ctx context.Context) ([]*Device, error) {
	id := u.ID()
	recs, err := u.api.GetDevices(ctx, api.DeviceQuery{OwnerID: &id})
	if err != nil {
		return bestEffort([]*Device{}, err)
	}
	return wrapAll(recs, u.factory.CreateDevice), nil
}

// GetChildren returns the user's children. Children that cannot be
// fetched are left out.
func (u *User) GetChildren(ctx context.Context) ([]*User, error) {
	ids := u.ChildIDs()
	out := make([]*User, 0, len(ids))
	for _, id := range ids {
		rec, err := u.api.GetUser(ctx, id)
		if err != nil {
			if !transport.IsRemote(err) {
				return nil, err
			}
			continue
		}
		out = append(out, u.factory.CreateUser(rec))
	}
	return out, nil
}

func userGroupIDs(op string, groups []*UserGroup) ([]int, error) {
	ids := make([]int, 0, len(groups))
	for _, g := range groups {
		if g == nil {
			return nil, invalidArg(op, "groups", nil, api.ErrInvalidArgument)
		}
		ids = append(ids, g.ID())
	}
	return ids, nil
}
