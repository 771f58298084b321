package schema

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry holds one compiled validator per route key ("METHOD /path").
// It is built once and read-only afterwards.
type Registry struct {
	validators map[string]*Validator
}

// NewRegistry compiles the full route catalogue.
func NewRegistry() *Registry {
	return NewRegistryFrom(RouteSchemas())
}

// NewRegistryFrom compiles an arbitrary route → schema table.
func NewRegistryFrom(schemas map[string]*Schema) *Registry {
	r := &Registry{validators: make(map[string]*Validator, len(schemas))}
	for route, s := range schemas {
		r.validators[route] = Compile(route, s)
	}
	return r
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the process-wide registry, compiled on first use.
func Default() *Registry {
	return defaultRegistry()
}

// Compile returns the validator registered for route.
func (r *Registry) Compile(route string) (*Validator, error) {
	v, ok := r.validators[route]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, route)
	}
	return v, nil
}

// AssertValid returns a *SchemaError when candidate does not match the
// schema of route.
func (r *Registry) AssertValid(route string, candidate any) error {
	v, err := r.Compile(route)
	if err != nil {
		return err
	}
	if issues := v.Validate(candidate); len(issues) > 0 {
		return &SchemaError{Route: route, Issues: issues}
	}
	return nil
}

// Routes lists the registered route keys in sorted order.
func (r *Registry) Routes() []string {
	return slices.Sorted(maps.Keys(r.validators))
}
