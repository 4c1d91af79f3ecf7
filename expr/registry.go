package expr

import "github.com/flowglyph/flowglyph/value"

// FilterFunc implements a single filter: Apply(input, args, culture) →
// Value. Filters must be pure and side-effect free (spec §4.2).
type FilterFunc func(input value.Value, args FilterArguments, culture string) value.Value

// Registry is a name→filter table. Custom filters override defaults by
// name (case-sensitive), matching the teacher's copy-on-registration style
// used by the font cache/registry.
type Registry struct {
	filters map[string]FilterFunc
}

// NewRegistry returns a Registry pre-populated with the default filter set
// (spec §4.2's table).
func NewRegistry() *Registry {
	r := &Registry{filters: make(map[string]FilterFunc)}
	registerDefaultFilters(r)
	return r
}

// Register installs or overrides a filter by name.
func (r *Registry) Register(name string, fn FilterFunc) {
	if r.filters == nil {
		r.filters = make(map[string]FilterFunc)
	}
	r.filters[name] = fn
}

// Lookup returns the filter registered under name, if any.
func (r *Registry) Lookup(name string) (FilterFunc, bool) {
	if r == nil || r.filters == nil {
		return nil, false
	}
	fn, ok := r.filters[name]
	return fn, ok
}
