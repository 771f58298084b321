package api

import "context"

// API is one method per remote route. Inputs are validated before any
// network call; responses are schema-checked before they are decoded.
//
// Write methods return the service's acknowledgement message.
type API interface {
	GetUser(ctx context.Context, id int) (UserRecord, error)
	GetUsers(ctx context.Context, q UserQuery) ([]UserRecord, error)
	UpdateUser(ctx context.Context, id int, u UserUpdate) (string, error)
	MoveUser(ctx context.Context, id, locationID int, onlyUser *bool) (string, error)

	GetUserGroups(ctx context.Context, locationID *int) ([]UserGroupRecord, error)
	GetUserGroup(ctx context.Context, id int) (UserGroupRecord, error)
	UpdateUserGroup(ctx context.Context, id int, g GroupUpdate) (string, error)

	GetDevices(ctx context.Context, q DeviceQuery) ([]DeviceRecord, error)
	GetDevice(ctx context.Context, udid string, includeApps bool) (DeviceRecord, error)
	GetDeviceBySerial(ctx context.Context, serial string) (DeviceRecord, error)
	RestartDevice(ctx context.Context, udid string, clearPasscode *bool) (string, error)
	WipeDevice(ctx context.Context, udid string, clearActivationLock *bool) (string, error)
	SetDeviceOwner(ctx context.Context, udid string, userID int) (string, error)
	MoveDevice(ctx context.Context, udid string, locationID int, onlyDevice *bool) (string, error)
	MoveDevices(ctx context.Context, udids []string, locationID int, onlyDevice *bool) (string, error)
	SetDeviceDetails(ctx context.Context, udid string, d DeviceDetails) (string, error)

	GetDeviceGroups(ctx context.Context, locationID *int) ([]DeviceGroupRecord, error)
	GetDeviceGroup(ctx context.Context, id int) (DeviceGroupRecord, error)
	UpdateDeviceGroup(ctx context.Context, id int, g GroupUpdate) (string, error)

	GetApps(ctx context.Context, locationID *int) ([]AppRecord, error)
	GetApp(ctx context.Context, id int) (AppRecord, error)

	GetLocations(ctx context.Context) ([]LocationRecord, error)
	GetLocation(ctx context.Context, id int) (LocationRecord, error)

	GetProfiles(ctx context.Context, locationID *int) ([]ProfileRecord, error)
	GetProfile(ctx context.Context, id int) (ProfileRecord, error)
}
