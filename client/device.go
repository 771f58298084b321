package client

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/aalemi-dev/mdm-client/api"
)

var coordinatePattern = regexp.MustCompile(`^([+-]?\d{1,3}(\.\d{1,15})?),([+-]?\d{1,3}(\.\d{1,15})?)$`)

// Region is a device's named region with parsed coordinates.
type Region struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Device wraps a device record. Writes go to the service and leave the
// snapshot untouched until Update.
type Device struct {
	link
	snap *snapshot[api.DeviceRecord]
}

func (*Device) Kind() Kind { return KindDevice }
func (*Device) object()    {}

// Record returns a copy of the current snapshot.
func (d *Device) Record() api.DeviceRecord { return *d.snap.get() }

func (d *Device) UDID() string               { return d.snap.get().UDID }
func (d *Device) SerialNumber() string       { return d.snap.get().SerialNumber }
func (d *Device) Name() string               { return d.snap.get().Name }
func (d *Device) Class() string              { return d.snap.get().Class }
func (d *Device) Model() api.DeviceModel     { return d.snap.get().Model }
func (d *Device) OSPrefix() string           { return d.snap.get().OS.Prefix }
func (d *Device) OSVersion() string          { return d.snap.get().OS.Version }
func (d *Device) IsManaged() bool            { return d.snap.get().IsManaged }
func (d *Device) IsSupervised() bool         { return d.snap.get().IsSupervised }
func (d *Device) BatteryLevel() float64      { return d.snap.get().BatteryLevel }
func (d *Device) TotalCapacity() float64     { return d.snap.get().TotalCapacity }
func (d *Device) AvailableCapacity() float64 { return d.snap.get().AvailableCapacity }
func (d *Device) EnrollType() string         { return d.snap.get().EnrollType }
func (d *Device) InTrash() bool              { return d.snap.get().InTrash }
func (d *Device) LocationID() int            { return d.snap.get().LocationID }
func (d *Device) AssetTag() string           { return deref(d.snap.get().AssetTag) }
func (d *Device) Notes() string              { return deref(d.snap.get().Notes) }
func (d *Device) LastCheckin() string        { return deref(d.snap.get().LastCheckin) }

// OS is the prefix and version joined, e.g. "iOS 17.4.1".
func (d *Device) OS() string {
	os := d.snap.get().OS
	return os.Prefix + " " + os.Version
}

// OwnerID is the owning user's id, 0 when the device is unowned.
func (d *Device) OwnerID() int { return d.snap.get().Owner.ID }

// Groups lists the names of the device groups the device belongs to.
func (d *Device) Groups() []string { return slices.Clone(d.snap.get().Groups) }

// InstalledApps is the app list of the snapshot, nil unless the device was
// fetched with its apps.
func (d *Device) InstalledApps() []api.DeviceApp { return slices.Clone(d.snap.get().Apps) }

// Region parses the device's region. A missing region or an empty region
// name yields nil; coordinates that do not parse yield ErrCorruptRegion.
func (d *Device) Region() (*Region, error) {
	r := d.snap.get().Region
	if r == nil || r.Name == "" {
		return nil, nil
	}
	m := coordinatePattern.FindStringSubmatch(r.Coordinates)
	if m == nil {
		return nil, fmt.Errorf("%w: device %s region %q has coordinates %q", ErrCorruptRegion, d.UDID(), r.Name, r.Coordinates)
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRegion, err)
	}
	long, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRegion, err)
	}
	return &Region{Name: r.Name, Latitude: lat, Longitude: long}, nil
}

// Update re-fetches the device by serial number and replaces the snapshot.
func (d *Device) Update(ctx context.Context) error {
	rec, err := d.api.GetDeviceBySerial(ctx, d.SerialNumber())
	if err != nil {
		return err
	}
	if rec.UDID != d.UDID() {
		return fmt.Errorf("%w: device %s, got %s", ErrIdentityMismatch, d.UDID(), rec.UDID)
	}
	d.snap.swap(rec)
	return nil
}

// SetOwner assigns the device to user. A nil user or one with id 0 is
// rejected; use RemoveOwner instead.
func (d *Device) SetOwner(ctx context.Context, user *User) error {
	if user == nil || user.ID() == 0 {
		return invalidArg("set_owner", "owner", 0, api.ErrInvalidID)
	}
	if unchanged(d.OwnerID(), user.ID()) {
		return nil
	}
	_, err := d.api.SetDeviceOwner(ctx, d.UDID(), user.ID())
	return err
}

// RemoveOwner clears the device owner.
func (d *Device) RemoveOwner(ctx context.Context) error {
	if unchanged(d.OwnerID(), 0) {
		return nil
	}
	_, err := d.api.SetDeviceOwner(ctx, d.UDID(), 0)
	return err
}

// SetLocation moves the device. With onlyDevice set, its owner is not moved along.
func (d *Device) SetLocation(ctx context.Context, loc *Location, onlyDevice *bool) error {
	if loc == nil {
		return invalidArg("set_location", "location", nil, api.ErrInvalidArgument)
	}
	if unchanged(d.LocationID(), loc.ID()) {
		return nil
	}
	_, err := d.api.MoveDevice(ctx, d.UDID(), loc.ID(), onlyDevice)
	return err
}

// SetAssetTag writes the asset tag unless it is unchanged.
func (d *Device) SetAssetTag(ctx context.Context, tag string) error {
	if unchangedString(d.snap.get().AssetTag, tag) {
		return nil
	}
	_, err := d.api.SetDeviceDetails(ctx, d.UDID(), api.DeviceDetails{AssetTag: &tag})
	return err
}

// SetNotes writes the device notes unless they are unchanged.
func (d *Device) SetNotes(ctx context.Context, notes string) error {
	if unchangedString(d.snap.get().Notes, notes) {
		return nil
	}
	_, err := d.api.SetDeviceDetails(ctx, d.UDID(), api.DeviceDetails{Notes: &notes})
	return err
}

// Restart restarts the device, optionally clearing its passcode.
func (d *Device) Restart(ctx context.Context, clearPasscode bool) error {
	var flag *bool
	if clearPasscode {
		flag = ptr(true)
	}
	_, err := d.api.RestartDevice(ctx, d.UDID(), flag)
	return err
}

// Wipe erases the device, optionally clearing its activation lock.
func (d *Device) Wipe(ctx context.Context, clearActivationLock bool) error {
	var flag *bool
	if clearActivationLock {
		flag = ptr(true)
	}
	_, err := d.api.WipeDevice(ctx, d.UDID(), flag)
	return err
}

// GetOwner returns the owning user, nil when unowned or unavailable.
func (d *Device) GetOwner(ctx context.Context) (*User, error) {
	id := d.OwnerID()
	if id == 0 {
		return nil, nil
	}
	rec, err := d.api.GetUser(ctx, id)
	if err != nil {
		return bestEffort[*User](nil, err)
	}
	return d.factory.CreateUser(rec), nil
}

// GetLocation returns the device's location, nil when unavailable.
func (d *Device) GetLocation(ctx context.Context) (*Location, error) {
	return fetchLocation(ctx, d.link, d.LocationID())
}

// GetGroups returns the device groups the device is listed in, matched by
// name within its location.
func (d *Device) GetGroups(ctx context.Context) ([]*DeviceGroup, error) {
	names := d.Groups()
	if len(names) == 0 {
		return []*DeviceGroup{}, nil
	}
	loc := d.LocationID()
	recs, err := d.api.GetDeviceGroups(ctx, &loc)
	if err != nil {
		return bestEffort([]*DeviceGroup{}, err)
	}
	recs = slices.DeleteFunc(recs, func(g api.DeviceGroupRecord) bool {
		return !slices.Contains(names, g.Name)
	})
	return wrapAll(recs, d.factory.CreateDeviceGroup), nil
}

// GetApps returns the apps installed on the device. Device app entries
// have no app id, so they are matched to the location's apps by bundle
// identifier.
func (d *Device) GetApps(ctx context.Context) ([]*App, error) {
	detail, err := d.api.GetDevice(ctx, d.UDID(), true)
	if err != nil {
		return bestEffort([]*App{}, err)
	}
	loc := detail.LocationID
	apps, err := d.api.GetApps(ctx, &loc)
	if err != nil {
		return bestEffort([]*App{}, err)
	}

	installed := make(map[string]struct{}, len(detail.Apps))
	for _, a := range detail.Apps {
		installed[a.Identifier] = struct{}{}
	}
	apps = slices.DeleteFunc(apps, func(a api.AppRecord) bool {
		_, ok := installed[a.BundleID]
		return !ok
	})
	return wrapAll(apps, d.factory.CreateApp), nil
}

func fetchLocation(ctx context.Context, l link, id int) (*Location, error) {
	rec, err := l.api.GetLocation(ctx, id)
	if err != nil {
		return bestEffort[*Location](nil, err)
	}
	return l.factory.CreateLocation(rec), nil
}
