package client

import (
	"context"
	"fmt"

	"github.com/aalemi-dev/mdm-client/api"
)

// DeviceGroup wraps a device group record.
type DeviceGroup struct {
	link
	snap *snapshot[api.DeviceGroupRecord]
}

func (*DeviceGroup) Kind() Kind { return KindDeviceGroup }
func (*DeviceGroup) object()    {}

func (g *DeviceGroup) Record() api.DeviceGroupRecord { return *g.snap.get() }

func (g *DeviceGroup) ID() int             { return g.snap.get().ID }
func (g *DeviceGroup) Name() string        { return g.snap.get().Name }
func (g *DeviceGroup) Description() string { return deref(g.snap.get().Description) }
func (g *DeviceGroup) LocationID() int     { return g.snap.get().LocationID }
func (g *DeviceGroup) Members() int        { return g.snap.get().Members }
func (g *DeviceGroup) IsSmartGroup() bool  { return g.snap.get().IsSmartGroup }
func (g *DeviceGroup) IsShared() bool      { return g.snap.get().IsShared }
func (g *DeviceGroup) IsClass() bool       { return g.snap.get().Type == "class" }

// ImageURL is the group image, "" when the group has none.
func (g *DeviceGroup) ImageURL() string { return deref(g.snap.get().ImageURL) }

// Update re-fetches the group and replaces its snapshot.
func (g *DeviceGroup) Update(ctx context.Context) error {
	rec, err := g.api.GetDeviceGroup(ctx, g.ID())
	if err != nil {
		return err
	}
	if rec.ID != g.ID() {
		return fmt.Errorf("%w: device group %d, got %d", ErrIdentityMismatch, g.ID(), rec.ID)
	}
	g.snap.swap(rec)
	return nil
}

// SetName renames the group unless the name is unchanged.
func (g *DeviceGroup) SetName(ctx context.Context, name string) error {
	if unchanged(g.Name(), name) {
		return nil
	}
	_, err := g.api.UpdateDeviceGroup(ctx, g.ID(), api.GroupUpdate{Name: &name})
	return err
}

// SetDescription writes the description unless it is unchanged.
func (g *DeviceGroup) SetDescription(ctx context.Context, description string) error {
	if unchangedString(g.snap.get().Description, description) {
		return nil
	}
	_, err := g.api.UpdateDeviceGroup(ctx, g.ID(), api.GroupUpdate{Description: &description})
	return err
}

// GetDevices returns the group's member devices.
func (g *DeviceGroup) GetDevices(ctx context.Context) ([]*Device, error) {
	id := g.ID()
	recs, err := g.api.GetDevices(ctx, api.DeviceQuery{GroupID: &id})
	if err != nil {
		return bestEffort([]*Device{}, err)
	}
	return wrapAll(recs, g.factory.CreateDevice), nil
}

// GetLocation returns the group's location, nil when unavailable.
func (g *DeviceGroup) GetLocation(ctx context.Context) (*Location, error) {
	return fetchLocation(ctx, g.link, g.LocationID())
}

// UserGroup wraps a user group record.
type UserGroup struct {
	link
	snap *snapshot[api.UserGroupRecord]
}

func (*UserGroup) Kind() Kind { return KindUserGroup }
func (*UserGroup) object()    {}

func (g *UserGroup) Record() api.UserGroupRecord { return *g.snap.get() }

func (g *UserGroup) ID() int             { return g.snap.get().ID }
func (g *UserGroup) Name() string        { return g.snap.get().Name }
func (g *UserGroup) Description() string { return deref(g.snap.get().Description) }
func (g *UserGroup) LocationID() int     { return g.snap.get().LocationID }
func (g *UserGroup) UserCount() int      { return g.snap.get().UserCount }

// ACL returns the teacher and parent access settings, "inherit" when the
// record carries none.
func (g *UserGroup) ACL() api.GroupACL {
	if acl := g.snap.get().ACL; acl != nil {
		return *acl
	}
	return api.GroupACL{Teacher: "inherit", Parent: "inherit"}
}

// Update re-fetches the group and replaces its snapshot.
func (g *UserGroup) Update(ctx context.Context) error {
	rec, err := g.api.GetUserGroup(ctx, g.ID())
	if err != nil {
		return err
	}
	if rec.ID != g.ID() {
		return fmt.Errorf("%w: user group %d, got %d", ErrIdentityMismatch, g.ID(), rec.ID)
	}
	g.snap.swap(rec)
	return nil
}

// SetName renames the group unless the name is unchanged.
func (g *UserGroup) SetName(ctx context.Context, name string) error {
	if unchanged(g.Name(), name) {
		return nil
	}
	_, err := g.api.UpdateUserGroup(ctx, g.ID(), api.GroupUpdate{Name: &name})
	return err
}

// SetDescription writes the description unless it is unchanged.
func (g *UserGroup) SetDescription(ctx context.Context, description string) error {
	if unchangedString(g.snap.get().Description, description) {
		return nil
	}
	_, err := g.api.UpdateUserGroup(ctx, g.ID(), api.GroupUpdate{Description: &description})
	return err
}

// GetUsers returns the group's members.
func (g *UserGroup) GetUsers(ctx context.Context) ([]*User, error) {
	id := g.ID()
	recs, err := g.api.GetUsers(ctx, api.UserQuery{MemberOf: &id})
	if err != nil {
		return bestEffort([]*User{}, err)
	}
	return wrapAll(recs, g.factory.CreateUser), nil
}

// GetLocation returns the group's location, nil when unavailable.
func (g *UserGroup) GetLocation(ctx context.Context) (*Location, error) {
	return fetchLocation(ctx, g.link, g.LocationID())
}
