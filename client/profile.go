package client

import (
	"context"
	"fmt"
	"slices"

	"github.com/aalemi-dev/mdm-client/api"
)

// Profile wraps a configuration profile record.
type Profile struct {
	link
	snap *snapshot[api.ProfileRecord]
}

func (*Profile) Kind() Kind { return KindProfile }
func (*Profile) object()    {}

func (p *Profile) Record() api.ProfileRecord { return *p.snap.get() }

func (p *Profile) ID() int             { return p.snap.get().ID }
func (p *Profile) Name() string        { return p.snap.get().Name }
func (p *Profile) Description() string { return deref(p.snap.get().Description) }
func (p *Profile) Identifier() string  { return p.snap.get().Identifier }
func (p *Profile) Platform() string    { return p.snap.get().Platform }
func (p *Profile) Type() string        { return p.snap.get().Type }
func (p *Profile) LocationID() int     { return p.snap.get().LocationID }
func (p *Profile) IsTemplate() bool    { return p.snap.get().IsTemplate }

// Schedule is nil for profiles that are always active.
func (p *Profile) Schedule() *ProfileSchedule {
	return p.factory.CreateProfileSchedule(*p.snap.get())
}

// Update re-fetches the profile and replaces its snapshot.
func (p *Profile) Update(ctx context.Context) error {
	rec, err := p.api.GetProfile(ctx, p.ID())
	if err != nil {
		return err
	}
	if rec.ID != p.ID() {
		return fmt.Errorf("%w: profile %d, got %d", ErrIdentityMismatch, p.ID(), rec.ID)
	}
	p.snap.swap(rec)
	return nil
}

// GetLocation returns the profile's location, nil when unavailable.
func (p *Profile) GetLocation(ctx context.Context) (*Location, error) {
	return fetchLocation(ctx, p.link, p.LocationID())
}

// ProfileSchedule is the time window a profile is active in. It is a
// value derived from its profile's snapshot at creation time.
type ProfileSchedule struct {
	profileID   int
	days        []string
	startTime   string
	endTime     string
	useHolidays bool
}

func (*ProfileSchedule) Kind() Kind { return KindProfileSchedule }
func (*ProfileSchedule) object()    {}

func (s *ProfileSchedule) ProfileID() int { return s.profileID }

// DaysOfTheWeek lists the active days as numbered by the service.
func (s *ProfileSchedule) DaysOfTheWeek() []string { return slices.Clone(s.days) }
func (s *ProfileSchedule) StartTime() string       { return s.startTime }
func (s *ProfileSchedule) EndTime() string         { return s.endTime }
func (s *ProfileSchedule) UseHolidays() bool       { return s.useHolidays }
