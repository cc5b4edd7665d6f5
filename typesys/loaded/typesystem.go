// Package loaded implements the type system over an in-process registry of
// already loaded types.  Types are defined up front through the builder
// methods and are read-only afterwards.
package loaded

import (
	"strings"
	"sync"

	"xamlx/typesys"
)

// TypeSystem is a live type system: all of its types are materialized objects
// linked directly to each other.
type TypeSystem struct {
	// m guards the type table: types may be defined while another goroutine is
	// already querying the type system.
	m *sync.RWMutex

	// types is the table of defined types organized by full name
	types map[string]*Type
}

// New creates a new, empty type system
func New() *TypeSystem {
	return &TypeSystem{
		m:     &sync.RWMutex{},
		types: make(map[string]*Type),
	}
}

// FindType implements typesys.TypeSystem
func (ts *TypeSystem) FindType(fullName string) (typesys.Type, error) {
	ts.m.RLock()
	defer ts.m.RUnlock()

	if t, ok := ts.types[fullName]; ok {
		return t, nil
	}

	return nil, typesys.TypeNotFound(fullName)
}

// Define returns the type with the given full name, creating it if it does not
// exist yet.  Newly created types are reference types deriving from nothing.
func (ts *TypeSystem) Define(fullName string) *Type {
	ts.m.Lock()
	defer ts.m.Unlock()

	if t, ok := ts.types[fullName]; ok {
		return t
	}

	t := &Type{fullName: fullName, name: fullName}
	if ndx := strings.LastIndexByte(fullName, '.'); ndx > -1 {
		t.namespace, t.name = fullName[:ndx], fullName[ndx+1:]
	}

	ts.types[fullName] = t
	return t
}

// Lookup returns a defined type by full name or nil if it does not exist.
func (ts *TypeSystem) Lookup(fullName string) *Type {
	ts.m.RLock()
	defer ts.m.RUnlock()

	return ts.types[fullName]
}

// Types returns all defined types in no particular order
func (ts *TypeSystem) Types() []*Type {
	ts.m.RLock()
	defer ts.m.RUnlock()

	types := make([]*Type, 0, len(ts.types))
	for _, t := range ts.types {
		types = append(types, t)
	}

	return types
}
