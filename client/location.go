package client

import (
	"context"
	"fmt"

	"github.com/aalemi-dev/mdm-client/api"
)

// Location wraps a location record. Only the name is guaranteed; the
// address getters return "" for fields the location does not have.
type Location struct {
	link
	snap *snapshot[api.LocationRecord]
}

func (*Location) Kind() Kind { return KindLocation }
func (*Location) object()    {}

func (l *Location) Record() api.LocationRecord { return *l.snap.get() }

func (l *Location) ID() int               { return l.snap.get().ID }
func (l *Location) Name() string          { return l.snap.get().Name }
func (l *Location) IsDistrict() bool      { return l.snap.get().IsDistrict }
func (l *Location) Street() string        { return deref(l.snap.get().Street) }
func (l *Location) StreetNumber() string  { return deref(l.snap.get().StreetNumber) }
func (l *Location) PostalCode() string    { return deref(l.snap.get().PostalCode) }
func (l *Location) City() string          { return deref(l.snap.get().City) }
func (l *Location) ASMIdentifier() string { return deref(l.snap.get().ASMIdentifier) }
func (l *Location) SchoolNumber() string  { return deref(l.snap.get().SchoolNumber) }

// Update re-fetches the location and replaces its snapshot.
func (l *Location) Update(ctx context.Context) error {
	rec, err := l.api.GetLocation(ctx, l.ID())
	if err != nil {
		return err
	}
	if rec.ID != l.ID() {
		return fmt.Errorf("%w: location %d, got %d", ErrIdentityMismatch, l.ID(), rec.ID)
	}
	l.snap.swap(rec)
	return nil
}

// GetDevices lists the devices in the location.
func (l *Location) GetDevices(ctx context.Context) ([]*Device, error) {
	id := l.ID()
	recs, err := l.api.GetDevices(ctx, api.DeviceQuery{LocationID: &id})
	if err != nil {
		return bestEffort([]*Device{}, err)
	}
	return wrapAll(recs, l.factory.CreateDevice), nil
}

// GetDeviceGroups lists the device groups in the location.
func (l *Location) GetDeviceGroups(ctx context.Context) ([]*DeviceGroup, error) {
	id := l.ID()
	recs, err := l.api.GetDeviceGroups(ctx, &id)
	if err != nil {
		return bestEffort([]*DeviceGroup{}, err)
	}
	return wrapAll(recs, l.factory.CreateDeviceGroup), nil
}

// GetUsers lists the users in the location.
func (l *Location) GetUsers(ctx context.Context) ([]*User, error) {
	id := l.ID()
	recs, err := l.api.GetUsers(ctx, api.UserQuery{LocationID: &id})
	if err != nil {
		return bestEffort([]*User{}, err)
	}
	return wrapAll(recs, l.factory.CreateUser), nil
}

// GetUserGroups lists the user groups in the location.
func (l *Location) GetUserGroups(ctx context.Context) ([]*UserGroup, error) {
	id := l.ID()
	recs, err := l.api.GetUserGroups(ctx, &id)
	if err != nil {
		return bestEffort([]*UserGroup{}, err)
	}
	return wrapAll(recs, l.factory.CreateUserGroup), nil
}

// GetApps lists the apps licensed to the location.
func (l *Location) GetApps(ctx context.Context) ([]*App, error) {
	id := l.ID()
	recs, err := l.api.GetApps(ctx, &id)
	if err != nil {
		return bestEffort([]*App{}, err)
	}
	return wrapAll(recs, l.factory.CreateApp), nil
}

// GetProfiles lists the profiles in the location.
func (l *Location) GetProfiles(ctx context.Context) ([]*Profile, error) {
	id := l.ID()
	recs, err := l.api.GetProfiles(ctx, &id)
	if err != nil {
		return bestEffort([]*Profile{}, err)
	}
	return wrapAll(recs, l.factory.CreateProfile), nil
}

// MoveDevices moves devices here in chunks of api.MaxBulkMove. Devices
// already at this location are skipped. The first failing chunk stops
// the move and its error is returned; earlier chunks stay moved.
func (l *Location) MoveDevices(ctx context.Context, devices []*Device, onlyDevice *bool) error {
	udids := make([]string, 0, len(devices))
	for _, d := range devices {
		if d == nil {
			return invalidArg("move_devices", "devices", nil, api.ErrInvalidArgument)
		}
		if !unchanged(d.LocationID(), l.ID()) {
			udids = append(udids, d.UDID())
		}
	}
	for start := 0; start < len(udids); start += api.MaxBulkMove {
		end := min(start+api.MaxBulkMove, len(udids))
		if _, err := l.api.MoveDevices(ctx, udids[start:end], l.ID(), onlyDevice); err != nil {
			return fmt.Errorf("client: moving devices %d-%d of %d: %w", start+1, end, len(udids), err)
		}
	}
	return nil
}

// MoveUsers moves users here one call at a time, skipping users already at
// this location and stopping at the first failure.
func (l *Location) MoveUsers(ctx context.Context, users []*User, onlyUser *bool) error {
	for _, u := range users {
		if u == nil {
			return invalidArg("move_users", "users", nil, api.ErrInvalidArgument)
		}
	}
	for _, u := range users {
		if err := u.SetLocation(ctx, l, onlyUser); err != nil {
			return fmt.Errorf("client: moving user %d: %w", u.ID(), err)
		}
	}
	return nil
}
