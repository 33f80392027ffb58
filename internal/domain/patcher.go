package domain

import (
	"log/slog"

	m "github.com/mouse-blink/graft/internal/model"
)

// Patcher grafts the behavior of a new object onto an old one in place.
type Patcher interface {
	// Patch reports whether a kind rule handled the pair. Identical
	// objects count as handled.
	Patch(old, new m.Value) bool
}

type rule struct {
	kind  string
	match func(m.Value) bool
	apply func(p *patcher, old, new m.Value)
}

// kindRules are tried in order. Classes come first so that a class is
// never mistaken for one of its callable attributes.
func kindRules() []rule {
	return []rule{
		{kind: "class", match: isA[*m.Class], apply: (*patcher).patchClass},
		{kind: "function", match: isA[*m.Function], apply: (*patcher).patchFunction},
		{kind: "method", match: isA[*m.BoundMethod], apply: (*patcher).patchMethod},
		{kind: "property", match: isA[*m.Property], apply: (*patcher).patchProperty},
		{kind: "partial", match: isA[*m.Partial], apply: (*patcher).patchPartial},
	}
}

func isA[T any](v m.Value) bool {
	_, ok := v.(T)
	return ok
}

// isCallableAttr reports the class attribute kinds that are replaced by a
// new version rather than preserved.
func isCallableAttr(v m.Value) bool {
	switch v.(type) {
	case *m.Function, *m.BoundMethod, *m.Property, *m.Partial:
		return true
	}

	return false
}

type patcher struct {
	logger *slog.Logger
	rules  []rule
}

// NewPatcher returns the kind-dispatching Patcher.
func NewPatcher(logger *slog.Logger) Patcher {
	if logger == nil {
		logger = discardLogger()
	}

	return &patcher{logger: logger, rules: kindRules()}
}

func (p *patcher) Patch(old, new m.Value) bool {
	if m.Same(old, new) {
		return true
	}

	for _, r := range p.rules {
		if r.match(old) && r.match(new) {
			r.apply(p, old, new)
			return true
		}
	}

	return false
}

// skipped logs a best-effort write that the target refused.
func (p *patcher) skipped(what string, err error) {
	if err != nil {
		p.logger.Debug("patch step skipped", "step", what, "error", err)
	}
}

func (p *patcher) patchFunction(oldV, newV m.Value) {
	old, new := oldV.(*m.Function), newV.(*m.Function)

	p.skipped("code", old.SetCode(new.Params(), new.Code()))
	p.skipped("defaults", old.SetDefaults(new.Defaults()))
	p.skipped("closure", old.SetClosure(new.Closure()))
	p.skipped("doc", old.SetDoc(new.Doc()))
	p.skipped("meta", old.SetMeta(new.Meta()))
	p.skipped("globals", old.SetGlobals(new.Globals()))
}

// patchMethod upgrades the underlying functions. The receiver binding is
// left as it was.
func (p *patcher) patchMethod(oldV, newV m.Value) {
	old, new := oldV.(*m.BoundMethod), newV.(*m.BoundMethod)

	oldFn, ok := old.Func.(*m.Function)
	if !ok {
		return
	}

	newFn, ok := new.Func.(*m.Function)
	if !ok {
		return
	}

	p.patchFunction(oldFn, newFn)
}

// patchProperty patches each accessor pair. A pair where only one side is
// present is left alone.
func (p *patcher) patchProperty(oldV, newV m.Value) {
	old, new := oldV.(*m.Property), newV.(*m.Property)

	for _, pair := range [][2]m.Value{{old.Del, new.Del}, {old.Get, new.Get}, {old.Set, new.Set}} {
		if pair[0] == nil || pair[1] == nil {
			continue
		}

		p.Patch(pair[0], pair[1])
	}
}

// patchPartial patches the wrapped callable. Bound arguments and keywords
// are not merged.
func (p *patcher) patchPartial(oldV, newV m.Value) {
	old, new := oldV.(*m.Partial), newV.(*m.Partial)

	if old.Func == nil || new.Func == nil {
		return
	}

	p.Patch(old.Func, new.Func)
}

// patchClass merges the attribute table of new into old and retargets the
// live instances of old to new.
func (p *patcher) patchClass(oldV, newV m.Value) {
	old, new := oldV.(*m.Class), newV.(*m.Class)

	for _, key := range old.OwnKeys() {
		oldAttr, ok := old.Own(key)
		if !ok {
			continue
		}

		newAttr, found := new.Lookup(key)

		if !found {
			if isCallableAttr(oldAttr) {
				p.skipped("remove "+key, old.DelAttr(key))
			} else {
				p.skipped("keep "+key, new.SetAttr(key, oldAttr))
			}

			continue
		}

		if eq, err := m.Equal(oldAttr, newAttr); err == nil && eq {
			continue
		}

		if isCallableAttr(oldAttr) && isCallableAttr(newAttr) {
			if !p.Patch(oldAttr, newAttr) {
				p.skipped("replace "+key, old.SetAttr(key, newAttr))
			}

			continue
		}

		// Data keeps its accumulated value. Nested classes still get patched.
		p.skipped("keep "+key, new.SetAttr(key, oldAttr))
		p.Patch(oldAttr, newAttr)
	}

	for _, key := range new.OwnKeys() {
		if _, exists := old.Own(key); exists {
			continue
		}

		if v, ok := new.Own(key); ok {
			p.skipped("add "+key, old.SetAttr(key, v))
		}
	}

	heap := old.Heap()
	if heap == nil {
		heap = new.Heap()
	}

	if heap == nil {
		return
	}

	n, err := heap.Retarget(old, new)
	if err != nil {
		p.logger.Warn("instance retarget skipped", "class", old.Name(), "error", err)
		return
	}

	p.logger.Debug("instances retargeted", "class", old.Name(), "count", n)
}
