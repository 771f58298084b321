package client

import (
	"context"
	"fmt"
	"slices"

	"github.com/aalemi-dev/mdm-client/api"
)

// App wraps an app or book record.
type App struct {
	link
	snap *snapshot[api.AppRecord]
}

func (*App) Kind() Kind { return KindApp }
func (*App) object()    {}

func (a *App) Record() api.AppRecord { return *a.snap.get() }

func (a *App) ID() int          { return a.snap.get().ID }
func (a *App) Name() string     { return a.snap.get().Name }
func (a *App) BundleID() string { return a.snap.get().BundleID }
func (a *App) IsBook() bool     { return a.snap.get().IsBook }
func (a *App) LocationID() int  { return a.snap.get().LocationID }
func (a *App) Vendor() string   { return deref(a.snap.get().Vendor) }
func (a *App) Version() string  { return deref(a.snap.get().Version) }
func (a *App) Platform() string { return deref(a.snap.get().Platform) }
func (a *App) Icon() string     { return deref(a.snap.get().Icon) }

// AdamID is the store id; ok is false for in-house apps, which have none.
func (a *App) AdamID() (id int64, ok bool) {
	if p := a.snap.get().AdamID; p != nil {
		return *p, true
	}
	return 0, false
}

// Update re-fetches the app and replaces its snapshot.
func (a *App) Update(ctx context.Context) error {
	rec, err := a.api.GetApp(ctx, a.ID())
	if err != nil {
		return err
	}
	if rec.ID != a.ID() {
		return fmt.Errorf("%w: app %d, got %d", ErrIdentityMismatch, a.ID(), rec.ID)
	}
	a.snap.swap(rec)
	return nil
}

// GetDevices returns the devices of the app's location that have it
// installed. Device app lists carry bundle ids only, so the match is on
// BundleID.
func (a *App) GetDevices(ctx context.Context) ([]*Device, error) {
	loc := a.LocationID()
	recs, err := a.api.GetDevices(ctx, api.DeviceQuery{IncludeApps: ptr(true), LocationID: &loc})
	if err != nil {
		return bestEffort([]*Device{}, err)
	}
	bundle := a.BundleID()
	recs = slices.DeleteFunc(recs, func(d api.DeviceRecord) bool {
		return !slices.ContainsFunc(d.Apps, func(app api.DeviceApp) bool {
			return app.Identifier == bundle
		})
	})
	return wrapAll(recs, a.factory.CreateDevice), nil
}

// GetLocation returns the app's location, nil when unavailable.
func (a *App) GetLocation(ctx context.Context) (*Location, error) {
	return fetchLocation(ctx, a.link, a.LocationID())
}
