package model

import (
	"sync"
	"sync/atomic"
	"weak"
)

// Heap is an owning registry of live instances keyed by exact class. It
// stands in for a garbage-collector referrer scan: only instances built
// through Class.New on a class bound to this heap are known to it.
type Heap struct {
	mu       sync.Mutex
	byClass  map[*Class][]weak.Pointer[Instance]
	scanning atomic.Bool
}

// NewHeap returns an empty registry.
func NewHeap() *Heap {
	return &Heap{byClass: make(map[*Class][]weak.Pointer[Instance])}
}

func (h *Heap) register(inst *Instance) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cls := inst.Class()
	h.byClass[cls] = append(h.byClass[cls], weak.Make(inst))
}

// Instances returns the live instances whose exact class is cls.
func (h *Heap) Instances(cls *Class) []*Instance {
	h.mu.Lock()
	defer h.mu.Unlock()

	live := h.prune(cls)
	out := make([]*Instance, 0, len(live))

	for _, p := range live {
		if inst := p.Value(); inst != nil {
			out = append(out, inst)
		}
	}

	return out
}

// prune drops collected handles for cls. Callers hold h.mu.
func (h *Heap) prune(cls *Class) []weak.Pointer[Instance] {
	handles := h.byClass[cls]
	live := handles[:0]

	for _, p := range handles {
		if inst := p.Value(); inst != nil && inst.Class() == cls {
			live = append(live, p)
		}
	}

	if len(live) == 0 {
		delete(h.byClass, cls)
		return nil
	}

	h.byClass[cls] = live

	return live
}

// Retarget rewrites the type pointer of every live instance whose exact
// class is from so that it reports to instead. Subclass instances are left
// alone. Instance registration blocks until the scan completes, and a scan
// started while another is running fails with ErrScanInProgress.
func (h *Heap) Retarget(from, to *Class) (int, error) {
	if from == to {
		return 0, nil
	}

	if !h.scanning.CompareAndSwap(false, true) {
		return 0, ErrScanInProgress
	}
	defer h.scanning.Store(false)

	h.mu.Lock()
	defer h.mu.Unlock()

	handles := h.byClass[from]
	delete(h.byClass, from)

	moved := 0

	for _, p := range handles {
		inst := p.Value()
		if inst == nil {
			continue
		}

		if inst.retarget(from, to) {
			moved++
		}

		cur := inst.Class()
		h.byClass[cur] = append(h.byClass[cur], p)
	}

	return moved, nil
}
