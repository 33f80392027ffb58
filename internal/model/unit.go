package model

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Unit is a named, independently re-executable block of source and its
// namespace. The Namespace pointer never changes after construction, so
// holders of the unit keep a valid reference across reloads.
type Unit struct {
	Name      string
	File      string // empty for units without a backing source
	Namespace *Namespace
}

// NewUnit returns a unit with an empty namespace.
func NewUnit(name, file string) *Unit {
	return &Unit{Name: name, File: file, Namespace: NewNamespace()}
}

// Top returns the first component of the unit's dotted name.
func (u *Unit) Top() string {
	top, _, _ := strings.Cut(u.Name, ".")
	return top
}

// GetAttr reads a top-level binding of the unit.
func (u *Unit) GetAttr(name string) (Value, error) {
	v, ok := u.Namespace.Get(name)
	if !ok {
		return nil, &AttributeError{Owner: "unit " + u.Name, Name: name}
	}

	return v, nil
}

func (u *Unit) String() string {
	return fmt.Sprintf("<unit %s>", u.Name)
}

// Units is the host's table of loaded units.
type Units struct {
	mu    sync.RWMutex
	units map[string]*Unit
}

// NewUnits returns an empty unit table.
func NewUnits() *Units {
	return &Units{units: make(map[string]*Unit)}
}

// Add registers u under its name, replacing any previous entry.
func (t *Units) Add(u *Unit) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.units[u.Name] = u
}

// Get returns the unit registered under name.
func (t *Units) Get(name string) (*Unit, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	u, ok := t.units[name]

	return u, ok
}

// Remove drops name from the table.
func (t *Units) Remove(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.units, name)
}

// Names returns every registered unit name, sorted.
func (t *Units) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.units))
	for name := range t.units {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
