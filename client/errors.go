package client

import (
	"errors"

	"github.com/aalemi-dev/mdm-client/api"
)

var (
	// ErrCorruptRegion is returned when a device carries a region whose
	// coordinate string is not "lat,long". It is never swallowed.
	ErrCorruptRegion = errors.New("client: corrupt region coordinates")

	// ErrIdentityMismatch is returned by Update when the re-fetched record
	// belongs to a different entity.
	ErrIdentityMismatch = errors.New("client: refreshed record has a different identity")
)

func invalidArg(op, field string, value any, sentinel error) error {
	return &api.ValidationError{Op: op, Field: field, Value: value, Err: sentinel}
}
