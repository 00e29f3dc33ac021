package types

import (
	"maps"
	"slices"
)

// Scope is a flat name table.
type Scope struct {
	elems map[string]Object
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{
		elems: make(map[string]Object),
	}
}

// Lookup returns the object with the given name, or nil.
func (s *Scope) Lookup(name string) Object {
	return s.elems[name]
}

// Insert inserts an object into the scope.
// If an object with the same name already exists, returns the existing object
// and leaves the scope unchanged. Otherwise, returns nil.
func (s *Scope) Insert(obj Object) Object {
	name := obj.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = obj
	return nil
}

// Names returns the names of all objects in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	return slices.Sorted(maps.Keys(s.elems))
}
