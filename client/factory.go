package client

import "github.com/aalemi-dev/mdm-client/api"

// Factory is the only way to build domain objects. Every object it
// creates shares its API reference and the factory itself.
type Factory struct {
	api api.API
}

// NewFactory returns a factory bound to a.
func NewFactory(a api.API) *Factory {
	return &Factory{api: a}
}

func (f *Factory) link() link {
	return link{api: f.api, factory: f}
}

// CreateDevice wraps a device record.
func (f *Factory) CreateDevice(rec api.DeviceRecord) *Device {
	return &Device{link: f.link(), snap: newSnapshot(rec)}
}

// CreateUser wraps a user record.
func (f *Factory) CreateUser(rec api.UserRecord) *User {
	return &User{link: f.link(), snap: newSnapshot(rec)}
}

// CreateDeviceGroup wraps a device group record.
func (f *Factory) CreateDeviceGroup(rec api.DeviceGroupRecord) *DeviceGroup {
	return &DeviceGroup{link: f.link(), snap: newSnapshot(rec)}
}

// CreateUserGroup wraps a user group record.
func (f *Factory) CreateUserGroup(rec api.UserGroupRecord) *UserGroup {
	return &UserGroup{link: f.link(), snap: newSnapshot(rec)}
}

// CreateLocation wraps a location record.
func (f *Factory) CreateLocation(rec api.LocationRecord) *Location {
	return &Location{link: f.link(), snap: newSnapshot(rec)}
}

// CreateApp wraps an app record.
func (f *Factory) CreateApp(rec api.AppRecord) *App {
	return &App{link: f.link(), snap: newSnapshot(rec)}
}

// CreateProfile wraps a profile record.
func (f *Factory) CreateProfile(rec api.ProfileRecord) *Profile {
	return &Profile{link: f.link(), snap: newSnapshot(rec)}
}

// CreateProfileSchedule returns nil when rec carries no schedule.
func (f *Factory) CreateProfileSchedule(rec api.ProfileRecord) *ProfileSchedule {
	if len(rec.DaysOfTheWeek) == 0 && rec.StartTime == nil && rec.EndTime == nil {
		return nil
	}
	return &ProfileSchedule{
		profileID:   rec.ID,
		days:        append([]string(nil), rec.DaysOfTheWeek...),
		startTime:   deref(rec.StartTime),
		endTime:     deref(rec.EndTime),
		useHolidays: rec.UseHolidays,
	}
}
