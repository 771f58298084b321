package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aalemi-dev/mdm-client/schema"
	"github.com/aalemi-dev/mdm-client/transport"
)

// DeviceQuery filters GetDevices. IncludeApps is sent as 1/0.
type DeviceQuery struct {
	IncludeApps  *bool
	SerialNumber *string
	LocationID   *int
	OwnerID      *int
	GroupID      *int
}

// DeviceDetails lists the device fields to change.
type DeviceDetails struct {
	AssetTag *string `json:"assetTag,omitzero"`
	Notes    *string `json:"notes,omitzero"`
}

// GetDevices lists devices matching q. An empty query lists all devices.
func (c *Client) GetDevices(ctx context.Context, q DeviceQuery) ([]DeviceRecord, error) {
	const op = "get_devices"
	if err := checkOptionalID(op, "locationId", q.LocationID); err != nil {
		return nil, err
	}
	if err := checkOptionalID(op, "ownerId", q.OwnerID); err != nil {
		return nil, err
	}
	if err := checkOptionalID(op, "groupId", q.GroupID); err != nil {
		return nil, err
	}
	var out struct {
		Devices []DeviceRecord `json:"devices"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/devices",
		route:  schema.RouteGetDevices,
		query: transport.Query{
			"includeApps":  q.IncludeApps,
			"serialnumber": q.SerialNumber,
			"locationId":   q.LocationID,
			"ownerId":      q.OwnerID,
			"groupId":      q.GroupID,
		},
	}, &out)
	return out.Devices, err
}

// GetDevice fetches one device. With includeApps the query flag is
// spelled "true" and the response must carry the installed-app list.
func (c *Client) GetDevice(ctx context.Context, udid string, includeApps bool) (DeviceRecord, error) {
	const op = "get_device"
	if err := checkUDID(op, udid); err != nil {
		return DeviceRecord{}, err
	}
	cl := call{
		op:     op,
		method: http.MethodGet,
		path:   "/devices/" + udid,
		route:  schema.RouteGetDevice,
		target: udid,
	}
	if includeApps {
		cl.route = schema.RouteGetDeviceWithApps
		cl.query = transport.Query{"includeApps": transport.TrueFalse(true)}
	}
	var out struct {
		Device DeviceRecord `json:"device"`
	}
	err := c.invoke(ctx, cl, &out)
	return out.Device, err
}

// GetDeviceBySerial returns the first device listed for serial, or
// ErrNotFound.
func (c *Client) GetDeviceBySerial(ctx context.Context, serial string) (DeviceRecord, error) {
	if serial == "" {
		return DeviceRecord{}, invalid("get_device_by_serial", "serialnumber", `""`, ErrInvalidArgument)
	}
	devices, err := c.GetDevices(ctx, DeviceQuery{SerialNumber: &serial})
	if err != nil {
		return DeviceRecord{}, err
	}
	if len(devices) == 0 {
		return DeviceRecord{}, fmt.Errorf("%w: device with serial number %s", ErrNotFound, serial)
	}
	return devices[0], nil
}

// RestartDevice asks the device to restart, optionally clearing its passcode.
func (c *Client) RestartDevice(ctx context.Context, udid string, clearPasscode *bool) (string, error) {
	const op = "restart_device"
	if err := checkUDID(op, udid); err != nil {
		return "", err
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/devices/" + udid + "/restart",
		route:  schema.RouteRestartDevice,
		body: struct {
			ClearPasscode *bool `json:"clearPasscode,omitempty"`
		}{clearPasscode},
		target: udid,
	})
}

// WipeDevice erases the device, optionally clearing activation lock.
func (c *Client) WipeDevice(ctx context.Context, udid string, clearActivationLock *bool) (string, error) {
	const op = "wipe_device"
	if err := checkUDID(op, udid); err != nil {
		return "", err
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/devices/" + udid + "/wipe",
		route:  schema.RouteWipeDevice,
		body: struct {
			ClearActivationLock *bool `json:"clearActivationLock,omitempty"`
		}{clearActivationLock},
		target: udid,
	})
}

// SetDeviceOwner assigns the device to userID; 0 removes the owner.
func (c *Client) SetDeviceOwner(ctx context.Context, udid string, userID int) (string, error) {
	const op = "set_device_owner"
	if err := checkUDID(op, udid); err != nil {
		return "", err
	}
	if err := checkID(op, "user", userID); err != nil {
		return "", err
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPut,
		path:   "/devices/" + udid + "/owner",
		route:  schema.RouteSetDeviceOwner,
		body: struct {
			User int `json:"user"`
		}{userID},
		target: udid,
	})
}

// MoveDevice moves a device to another location. With onlyDevice set, the
// device's owner stays where they are; nil keeps the service default.
func (c *Client) MoveDevice(ctx context.Context, udid string, locationID int, onlyDevice *bool) (string, error) {
	const op = "move_device"
	if err := checkUDID(op, udid); err != nil {
		return "", err
	}
	if err := checkID(op, "locationId", locationID); err != nil {
		return "", err
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPut,
		path:   "/devices/" + udid + "/migrate",
		route:  schema.RouteMoveDevice,
		body: struct {
			LocationID int   `json:"locationId"`
			OnlyDevice *bool `json:"onlyDevice,omitempty"`
		}{locationID, onlyDevice},
		target: udid,
	})
}

// MoveDevices moves 1 to MaxBulkMove devices in one call.
func (c *Client) MoveDevices(ctx context.Context, udids []string, locationID int, onlyDevice *bool) (string, error) {
	const op = "move_devices"
	if len(udids) == 0 || len(udids) > MaxBulkMove {
		return "", invalid(op, "udids", len(udids), ErrInvalidBulkSize)
	}
	for _, udid := range udids {
		if err := checkUDID(op, udid); err != nil {
			return "", err
		}
	}
	if err := checkID(op, "locationId", locationID); err != nil {
		return "", err
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPut,
		path:   "/devices/migrate",
		route:  schema.RouteMoveDevices,
		body: struct {
			UDIDs      []string `json:"udids"`
			LocationID int      `json:"locationId"`
			OnlyDevice *bool    `json:"onlyDevice,omitempty"`
		}{udids, locationID, onlyDevice},
		target: strconv.Itoa(len(udids)) + " devices",
	})
}

// SetDeviceDetails writes the asset tag and notes present in d.
func (c *Client) SetDeviceDetails(ctx context.Context, udid string, d DeviceDetails) (string, error) {
	const op = "set_device_details"
	if err := checkUDID(op, udid); err != nil {
		return "", err
	}
	if d.AssetTag == nil && d.Notes == nil {
		return "", invalid(op, "details", "{}", ErrInvalidArgument)
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/devices/" + udid + "/details",
		route:  schema.RouteSetDeviceDetails,
		body:   d,
		target: udid,
	})
}

// GetDeviceGroups lists device groups, optionally filtered by location.
func (c *Client) GetDeviceGroups(ctx context.Context, locationID *int) ([]DeviceGroupRecord, error) {
	const op = "get_device_groups"
	if err := checkOptionalID(op, "locationId", locationID); err != nil {
		return nil, err
	}
	var out struct {
		DeviceGroups []DeviceGroupRecord `json:"deviceGroups"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/devices/groups",
		route:  schema.RouteGetDeviceGroups,
		query:  transport.Query{"locationId": locationID},
	}, &out)
	return out.DeviceGroups, err
}

// GetDeviceGroup fetches one device group by id.
func (c *Client) GetDeviceGroup(ctx context.Context, id int) (DeviceGroupRecord, error) {
	const op = "get_device_group"
	if err := checkID(op, "id", id); err != nil {
		return DeviceGroupRecord{}, err
	}
	var out struct {
		DeviceGroup DeviceGroupRecord `json:"deviceGroup"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/devices/groups/" + strconv.Itoa(id),
		route:  schema.RouteGetDeviceGroup,
		target: strconv.Itoa(id),
	}, &out)
	return out.DeviceGroup, err
}

// UpdateDeviceGroup renames or redescribes a device group.
func (c *Client) UpdateDeviceGroup(ctx context.Context, id int, g GroupUpdate) (string, error) {
	const op = "update_device_group"
	if err := checkID(op, "id", id); err != nil {
		return "", err
	}
	if g.Name == nil && g.Description == nil {
		return "", invalid(op, "update", "{}", ErrInvalidArgument)
	}
	return c.write(ctx, call{
		op:     op,
		method: http.MethodPut,
		path:   "/devices/groups/" + strconv.Itoa(id),
		route:  schema.RouteUpdateDeviceGroup,
		body:   g,
		target: strconv.Itoa(id),
	})
}
