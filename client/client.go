package client

import (
	"context"

	"github.com/aalemi-dev/mdm-client/api"
)

// Client is the entry point of the domain model. Its lookups propagate
// every error; only traversals on the returned objects are best-effort.
type Client struct {
	api     api.API
	factory *Factory
}

// New wraps an existing API surface.
func New(a api.API) *Client {
	return &Client{api: a, factory: NewFactory(a)}
}

// NewFromConfig builds the API surface from cfg.
func NewFromConfig(cfg api.Config) (*Client, error) {
	a, err := api.New(cfg)
	if err != nil {
		return nil, err
	}
	return New(a), nil
}

// API exposes the underlying API surface.
func (c *Client) API() api.API { return c.api }

// Factory exposes the factory shared by every object of this client.
func (c *Client) Factory() *Factory { return c.factory }

// GetDevice fetches a device by UDID, with its app list when includeApps is set.
func (c *Client) GetDevice(ctx context.Context, udid string, includeApps bool) (*Device, error) {
	rec, err := c.api.GetDevice(ctx, udid, includeApps)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateDevice(rec), nil
}

// GetDeviceBySerial fetches the device with the given serial number.
func (c *Client) GetDeviceBySerial(ctx context.Context, serial string) (*Device, error) {
	rec, err := c.api.GetDeviceBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateDevice(rec), nil
}

// GetDevices lists devices matching q.
func (c *Client) GetDevices(ctx context.Context, q api.DeviceQuery) ([]*Device, error) {
	recs, err := c.api.GetDevices(ctx, q)
	if err != nil {
		return nil, err
	}
	return wrapAll(recs, c.factory.CreateDevice), nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	rec, err := c.api.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateUser(rec), nil
}

// GetUsers lists users matching q.
func (c *Client) GetUsers(ctx context.Context, q api.UserQuery) ([]*User, error) {
	recs, err := c.api.GetUsers(ctx, q)
	if err != nil {
		return nil, err
	}
	return wrapAll(recs, c.factory.CreateUser), nil
}

// GetDeviceGroup fetches a device group by id.
func (c *Client) GetDeviceGroup(ctx context.Context, id int) (*DeviceGroup, error) {
	rec, err := c.api.GetDeviceGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateDeviceGroup(rec), nil
}

// GetDeviceGroups lists device groups, optionally in one location.
func (c *Client) GetDeviceGroups(ctx context.Context, locationID *int) ([]*DeviceGroup, error) {
	recs, err := c.api.GetDeviceGroups(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return wrapAll(recs, c.factory.CreateDeviceGroup), nil
}

// GetUserGroup fetches a user group by id.
func (c *Client) GetUserGroup(ctx context.Context, id int) (*UserGroup, error) {
	rec, err := c.api.GetUserGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateUserGroup(rec), nil
}

// GetUserGroups lists user groups, optionally in one location.
func (c *Client) GetUserGroups(ctx context.Context, locationID *int) ([]*UserGroup, error) {
	recs, err := c.api.GetUserGroups(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return wrapAll(recs, c.factory.CreateUserGroup), nil
}

// GetLocation fetches a location by id.
func (c *Client) GetLocation(ctx context.Context, id int) (*Location, error) {
	rec, err := c.api.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateLocation(rec), nil
}

// GetLocations lists every location.
func (c *Client) GetLocations(ctx context.Context) ([]*Location, error) {
	recs, err := c.api.GetLocations(ctx)
	if err != nil {
		return nil, err
	}
	return wrapAll(recs, c.factory.CreateLocation), nil
}

// GetApp fetches an app by id.
func (c *Client) GetApp(ctx context.Context, id int) (*App, error) {
	rec, err := c.api.GetApp(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateApp(rec), nil
}

// GetApps lists apps, optionally in one location.
func (c *Client) GetApps(ctx context.Context, locationID *int) ([]*App, error) {
	recs, err := c.api.GetApps(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return wrapAll(recs, c.factory.CreateApp), nil
}

// GetProfile fetches a profile by id.
func (c *Client) GetProfile(ctx context.Context, id int) (*Profile, error) {
	rec, err := c.api.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.factory.CreateProfile(rec), nil
}

// GetProfiles lists profiles, optionally in one location.
func (c *Client) GetProfiles(ctx context.Context, locationID *int) ([]*Profile, error) {
	recs, err := c.api.GetProfiles(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return wrapAll(recs, c.factory.CreateProfile), nil
}
