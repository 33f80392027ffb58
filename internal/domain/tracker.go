package domain

import (
	"sync"

	m "github.com/mouse-blink/graft/internal/model"
)

type trackKey struct {
	unit string
	name string
}

// Tracker remembers, per unit and identifier, every distinct object that
// was ever bound there. It holds weak handles only, so patch history never
// keeps an object alive.
type Tracker struct {
	mu      sync.Mutex
	entries map[trackKey][]m.WeakRef
}

// NewTracker returns an empty table.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[trackKey][]m.WeakRef)}
}

// Record adds v under (unit, name). Primitives, values that cannot be
// weakly referenced and objects already recorded under the key are ignored.
func (t *Tracker) Record(unit, name string, v m.Value) {
	if m.IsPrimitive(v) {
		return
	}

	ref, ok := m.MakeWeak(v)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	k := trackKey{unit: unit, name: name}
	for _, existing := range t.entries[k] {
		if existing == ref {
			return
		}
	}

	t.entries[k] = append(t.entries[k], ref)
}

// Entries returns the live objects recorded under (unit, name), oldest
// first. Collected handles are pruned and an empty entry is removed.
func (t *Tracker) Entries(unit, name string) []m.Value {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := trackKey{unit: unit, name: name}

	refs, ok := t.entries[k]
	if !ok {
		return nil
	}

	live := refs[:0]
	out := make([]m.Value, 0, len(refs))

	for _, ref := range refs {
		if v, alive := ref.Value(); alive {
			live = append(live, ref)
			out = append(out, v)
		}
	}

	if len(live) == 0 {
		delete(t.entries, k)
		return nil
	}

	t.entries[k] = live

	return out
}

// Has reports whether anything was ever recorded under (unit, name) and
// is still alive.
func (t *Tracker) Has(unit, name string) bool {
	return len(t.Entries(unit, name)) > 0
}

// Len returns the number of keys currently held.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
