package model

import (
	"fmt"
	"strings"
	"sync"
)

// List is a mutable sequence.
type List struct {
	mu    sync.RWMutex
	items []Value
}

func NewList(items ...Value) *List {
	return &List{items: append([]Value(nil), items...)}
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.items)
}

func (l *List) Items() []Value {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Value(nil), l.items...)
}

func (l *List) Get(i int) (Value, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i < 0 {
		i += len(l.items)
	}

	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("list index %d out of range", i)
	}

	return l.items[i], nil
}

func (l *List) Set(i int, v Value) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 {
		i += len(l.items)
	}

	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("list assignment index %d out of range", i)
	}

	l.items[i] = v

	return nil
}

func (l *List) Append(v Value) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, v)
}

func (l *List) String() string {
	parts := make([]string, 0, l.Len())
	for _, v := range l.Items() {
		parts = append(parts, Repr(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Dict is an insertion-ordered string keyed mapping.
type Dict struct {
	ns *Namespace
}

func NewDict() *Dict {
	return &Dict{ns: NewNamespace()}
}

func (d *Dict) Get(key string) (Value, bool) { return d.ns.Get(key) }
func (d *Dict) Set(key string, v Value)     { d.ns.Set(key, v) }
func (d *Dict) Delete(key string) bool      { return d.ns.Delete(key) }
func (d *Dict) Keys() []string              { return d.ns.Keys() }
func (d *Dict) Len() int                    { return d.ns.Len() }

func (d *Dict) String() string {
	parts := make([]string, 0, d.Len())
	for _, b := range d.ns.Snapshot() {
		parts = append(parts, fmt.Sprintf("%q: %s", b.Name, Repr(b.Value)))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Array is a fixed numeric vector. Comparing two arrays with more than one
// element is ambiguous and fails, so arrays never silently compare equal.
type Array struct {
	items []float64
}

func NewArray(items ...float64) *Array {
	return &Array{items: append([]float64(nil), items...)}
}

func (a *Array) Len() int { return len(a.items) }

func (a *Array) Items() []float64 {
	return append([]float64(nil), a.items...)
}

// Equal compares element-wise when the result is a single truth value.
func (a *Array) Equal(other Value) (bool, error) {
	b, ok := other.(*Array)
	if !ok {
		return false, nil
	}

	if len(a.items) > 1 || len(b.items) > 1 {
		return false, fmt.Errorf("%w: array of length %d", ErrAmbiguousComparison, max(len(a.items), len(b.items)))
	}

	if len(a.items) != len(b.items) {
		return false, nil
	}

	return len(a.items) == 0 || a.items[0] == b.items[0], nil
}

func (a *Array) String() string {
	parts := make([]string, 0, len(a.items))
	for _, f := range a.items {
		parts = append(parts, fmt.Sprint(f))
	}

	return "array([" + strings.Join(parts, ", ") + "])"
}
