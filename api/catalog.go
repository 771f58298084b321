package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aalemi-dev/mdm-client/schema"
	"github.com/aalemi-dev/mdm-client/transport"
)

// GetApps lists the apps and books, optionally filtered by location.
func (c *Client) GetApps(ctx context.Context, locationID *int) ([]AppRecord, error) {
	const op = "get_apps"
	if err := checkOptionalID(op, "locationId", locationID); err != nil {
		return nil, err
	}
	var out struct {
		Apps []AppRecord `json:"apps"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/apps",
		route:  schema.RouteGetApps,
		query:  transport.Query{"locationId": locationID},
	}, &out)
	return out.Apps, err
}

// GetApp fetches one app by id.
func (c *Client) GetApp(ctx context.Context, id int) (AppRecord, error) {
	const op = "get_app"
	if err := checkID(op, "id", id); err != nil {
		return AppRecord{}, err
	}
	var out struct {
		App AppRecord `json:"app"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/apps/" + strconv.Itoa(id),
		route:  schema.RouteGetApp,
		target: strconv.Itoa(id),
	}, &out)
	return out.App, err
}

// GetLocations lists every location.
func (c *Client) GetLocations(ctx context.Context) ([]LocationRecord, error) {
	var out struct {
		Locations []LocationRecord `json:"locations"`
	}
	err := c.invoke(ctx, call{
		op:     "get_locations",
		method: http.MethodGet,
		path:   "/locations",
		route:  schema.RouteGetLocations,
	}, &out)
	return out.Locations, err
}

// GetLocation fetches one location by id.
func (c *Client) GetLocation(ctx context.Context, id int) (LocationRecord, error) {
	const op = "get_location"
	if err := checkID(op, "id", id); err != nil {
		return LocationRecord{}, err
	}
	var out struct {
		Location LocationRecord `json:"location"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/locations/" + strconv.Itoa(id),
		route:  schema.RouteGetLocation,
		target: strconv.Itoa(id),
	}, &out)
	return out.Location, err
}

// GetProfiles lists the profiles, optionally filtered by location.
func (c *Client) GetProfiles(ctx context.Context, locationID *int) ([]ProfileRecord, error) {
	const op = "get_profiles"
	if err := checkOptionalID(op, "locationId", locationID); err != nil {
		return nil, err
	}
	var out struct {
		Profiles []ProfileRecord `json:"profiles"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/profiles",
		route:  schema.RouteGetProfiles,
		query:  transport.Query{"locationId": locationID},
	}, &out)
	return out.Profiles, err
}

// GetProfile fetches one profile by id.
func (c *Client) GetProfile(ctx context.Context, id int) (ProfileRecord, error) {
	const op = "get_profile"
	if err := checkID(op, "id", id); err != nil {
		return ProfileRecord{}, err
	}
	var out struct {
		Profile ProfileRecord `json:"profile"`
	}
	err := c.invoke(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/profiles/" + strconv.Itoa(id),
		route:  schema.RouteGetProfile,
		target: strconv.Itoa(id),
	}, &out)
	return out.Profile, err
}
