package model

import "sync"

// Binding is one identifier and its value, as captured by Snapshot.
type Binding struct {
	Name  string
	Value Value
}

// Namespace is an ordered identifier to value mapping. The zero value is
// not usable; construct with NewNamespace.
type Namespace struct {
	mu      sync.RWMutex
	keys    []string
	values  map[string]Value
	forward *Namespace
}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{values: make(map[string]Value)}
}

// target follows Forward redirections to the namespace holding the data.
func (ns *Namespace) target() *Namespace {
	for {
		ns.mu.RLock()
		next := ns.forward
		ns.mu.RUnlock()

		if next == nil {
			return ns
		}

		ns = next
	}
}

// Get returns the value bound to name.
func (ns *Namespace) Get(name string) (Value, bool) {
	t := ns.target()

	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.values[name]

	return v, ok
}

// Has reports whether name is bound.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.Get(name)
	return ok
}

// Set binds name to v, keeping the original position of an existing name.
func (ns *Namespace) Set(name string, v Value) {
	t := ns.target()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.setLocked(name, v)
}

func (ns *Namespace) setLocked(name string, v Value) {
	if _, ok := ns.values[name]; !ok {
		ns.keys = append(ns.keys, name)
	}

	ns.values[name] = v
}

// Delete unbinds name and reports whether it was bound.
func (ns *Namespace) Delete(name string) bool {
	t := ns.target()

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.values[name]; !ok {
		return false
	}

	delete(t.values, name)

	for i, k := range t.keys {
		if k == name {
			t.keys = append(t.keys[:i:i], t.keys[i+1:]...)
			break
		}
	}

	return true
}

// Keys returns the bound identifiers in insertion order.
func (ns *Namespace) Keys() []string {
	t := ns.target()

	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]string(nil), t.keys...)
}

// Len returns the number of bindings.
func (ns *Namespace) Len() int {
	t := ns.target()

	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.keys)
}

// Snapshot returns a copy of every binding in insertion order.
func (ns *Namespace) Snapshot() []Binding {
	t := ns.target()

	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Binding, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Binding{Name: k, Value: t.values[k]})
	}

	return out
}

// Restore clears the namespace and repopulates it from snapshot, in order.
func (ns *Namespace) Restore(snapshot []Binding) {
	t := ns.target()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.keys = make([]string, 0, len(snapshot))
	t.values = make(map[string]Value, len(snapshot))

	for _, b := range snapshot {
		t.setLocked(b.Name, b.Value)
	}
}

// Replace makes the namespace hold exactly the bindings of src.
func (ns *Namespace) Replace(src *Namespace) {
	ns.Restore(src.Snapshot())
}

// Update binds every entry of src without removing existing names.
func (ns *Namespace) Update(src []Binding) {
	t := ns.target()

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, b := range src {
		t.setLocked(b.Name, b.Value)
	}
}

// Forward retires ns: every later read or write is redirected to live.
// Functions created while executing into ns keep resolving their globals
// through it, and so see the live namespace after a merge.
func (ns *Namespace) Forward(live *Namespace) {
	if live == nil || live.target() == ns {
		return
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	ns.forward = live
	ns.keys = nil
	ns.values = make(map[string]Value)
}
