package client

import (
	"slices"
	"sync/atomic"

	"github.com/aalemi-dev/mdm-client/api"
	"github.com/aalemi-dev/mdm-client/transport"
)

// Kind discriminates the domain object variants.
type Kind string

const (
	KindDevice          Kind = "device"
	KindUser            Kind = "user"
	KindDeviceGroup     Kind = "deviceGroup"
	KindUserGroup       Kind = "userGroup"
	KindLocation        Kind = "location"
	KindApp             Kind = "app"
	KindProfile         Kind = "profile"
	KindProfileSchedule Kind = "profileSchedule"
)

// Object is implemented by every domain object. The set is closed: only
// this package's Factory creates them.
type Object interface {
	Kind() Kind
	object()
}

// link holds the shared references every object carries.
type link struct {
	api     api.API
	factory *Factory
}

// snapshot is the record slot of an object. It is only ever replaced as a
// whole, never patched.
type snapshot[R any] struct {
	p atomic.Pointer[R]
}

func newSnapshot[R any](rec R) *snapshot[R] {
	s := &snapshot[R]{}
	s.p.Store(&rec)
	return s
}

func (s *snapshot[R]) get() *R { return s.p.Load() }

func (s *snapshot[R]) swap(rec R) { s.p.Store(&rec) }

// bestEffort turns a remote failure of a traversal into fallback.
// Validation and schema errors still propagate.
func bestEffort[T any](fallback T, err error) (T, error) {
	if transport.IsRemote(err) {
		return fallback, nil
	}
	var zero T
	return zero, err
}

func wrapAll[R any, O any](recs []R, create func(R) O) []O {
	out := make([]O, 0, len(recs))
	for _, r := range recs {
		out = append(out, create(r))
	}
	return out
}

func unchanged[T comparable](current, next T) bool {
	return current == next
}

// unchangedString treats a null field and "" as the same value.
func unchangedString(current *string, next string) bool {
	if current == nil {
		return next == ""
	}
	return *current == next
}

// unchangedSet compares id lists ignoring order.
func unchangedSet(current, next []int) bool {
	a, b := slices.Clone(current), slices.Clone(next)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T { return &v }
