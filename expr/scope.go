package expr

import "github.com/flowglyph/flowglyph/value"

// Scope resolves bare identifiers against layered variable bindings (each's
// item_var/index_var) falling back to the root data object (spec §4.3:
// "Nesting: independent scopes layered").
type Scope struct {
	vars   map[string]value.Value
	parent *Scope
	root   value.Value
}

// NewRootScope creates the outermost scope bound to the template's root
// data object.
func NewRootScope(root value.Value) *Scope {
	return &Scope{root: root}
}

// Child creates a nested scope layering additional bindings (e.g. an each
// loop's item/index variables) over the parent.
func (s *Scope) Child(bindings map[string]value.Value) *Scope {
	return &Scope{vars: bindings, parent: s, root: s.root}
}

// Resolve looks up name: innermost-to-outermost bound variables first, then
// the root data object by case-insensitive key. The reserved name "self"
// always yields the nearest bound value (an each loop's item, or the root
// data object outside any loop) rather than a member lookup. Unknown names
// yield Null.
func (s *Scope) Resolve(name string) value.Value {
	if name == "self" {
		for f := s; f != nil; f = f.parent {
			if f.vars != nil {
				if v, ok := f.vars["self"]; ok {
					return v
				}
			}
		}
		if s == nil {
			return value.Null
		}
		return s.root
	}
	for f := s; f != nil; f = f.parent {
		if f.vars != nil {
			if v, ok := f.vars[name]; ok {
				return v
			}
		}
	}
	if s == nil {
		return value.Null
	}
	return value.Path(s.root, name)
}
