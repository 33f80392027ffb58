package domain

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultSkipped are the units never reloaded unless explicitly marked.
var DefaultSkipped = []string{"__main__", "__mp_main__", "builtins"}

// Registry keeps the bookkeeping of a reloader: which units may be
// reloaded, which are skipped, the last seen modification time of every
// unit and the modification time at which a unit last failed.
type Registry struct {
	mu         sync.Mutex
	reloadable map[string]struct{}
	skipped    map[string]struct{}
	modTimes   map[string]time.Time
	failed     map[string]time.Time
}

// NewRegistry returns a registry seeded with DefaultSkipped.
func NewRegistry() *Registry {
	r := &Registry{
		reloadable: make(map[string]struct{}),
		skipped:    make(map[string]struct{}),
		modTimes:   make(map[string]time.Time),
		failed:     make(map[string]time.Time),
	}

	for _, name := range DefaultSkipped {
		r.skipped[name] = struct{}{}
	}

	return r
}

// MarkSkipped moves name from the allow-list to the skip set.
func (r *Registry) MarkSkipped(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.reloadable, name)
	r.skipped[name] = struct{}{}
}

// MarkReloadable moves name from the skip set to the allow-list.
func (r *Registry) MarkReloadable(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.skipped, name)
	r.reloadable[name] = struct{}{}
}

// IsSkipped reports whether name, or any dotted parent of it, is in the
// skip set.
func (r *Registry) IsSkipped(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.skipped[name]; ok {
		return true
	}

	for i := strings.LastIndexByte(name, '.'); i > 0; i = strings.LastIndexByte(name[:i], '.') {
		if _, ok := r.skipped[name[:i]]; ok {
			return true
		}
	}

	return false
}

// Reloadable returns the allow-list, sorted.
func (r *Registry) Reloadable() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return sortedKeys(r.reloadable)
}

// Skipped returns the skip set, sorted.
func (r *Registry) Skipped() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return sortedKeys(r.skipped)
}

// ModTime returns the cached modification time of name.
func (r *Registry) ModTime(name string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.modTimes[name]

	return t, ok
}

// SetModTime caches the modification time of name.
func (r *Registry) SetModTime(name string, t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.modTimes[name] = t
}

// FailedAt returns the modification time at which name last failed.
func (r *Registry) FailedAt(name string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.failed[name]

	return t, ok
}

// SetFailed records that the version of name modified at t failed.
func (r *Registry) SetFailed(name string, t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failed[name] = t
}

// ClearFailed forgets a past failure of name.
func (r *Registry) ClearFailed(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.failed, name)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
