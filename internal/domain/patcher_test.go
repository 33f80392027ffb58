package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/graft/internal/model"
)

func constant(v m.Value) m.CodeFunc {
	return func(*m.Frame) (m.Value, error) { return v, nil }
}

func fn(name string, v m.Value, params ...string) *m.Function {
	return m.NewFunction(m.FunctionDef{Name: name, Home: "m", Params: params, Code: constant(v)})
}

func invoke(t *testing.T, v m.Value, args ...m.Value) m.Value {
	t.Helper()

	got, err := m.Call(v, args...)
	require.NoError(t, err)

	return got
}

func TestPatcher_Patch_Identical(t *testing.T) {
	f := fn("f", 1)
	assert.True(t, NewPatcher(nil).Patch(f, f))
}

func TestPatcher_Patch_KindMismatch(t *testing.T) {
	p := NewPatcher(nil)

	tests := []struct {
		name     string
		old, new m.Value
	}{
		{name: "function and class", old: fn("f", 1), new: m.NewClass(m.ClassDef{Name: "C"})},
		{name: "primitives", old: 1, new: 2},
		{name: "list and list", old: m.NewList(1), new: m.NewList(2)},
		{name: "property and function", old: &m.Property{}, new: fn("f", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, p.Patch(tt.old, tt.new))
		})
	}
}

func TestPatcher_Patch_FunctionKeepsIdentity(t *testing.T) {
	old := fn("f", 1)
	new := m.NewFunction(m.FunctionDef{
		Name:     "f",
		Home:     "m",
		Params:   []string{"x"},
		Defaults: []m.Value{5},
		Doc:      "new doc",
		Meta:     map[string]m.Value{"tag": "v2"},
		Closure:  map[string]m.Value{"k": 1},
		Code: m.CodeFunc(func(fr *m.Frame) (m.Value, error) {
			v, _ := fr.Lookup("x")
			return v, nil
		}),
	})

	require.True(t, NewPatcher(nil).Patch(old, new))

	assert.Equal(t, 5, invoke(t, old))
	assert.Equal(t, 7, invoke(t, old, 7))
	assert.Equal(t, "new doc", old.Doc())
	assert.Equal(t, map[string]m.Value{"tag": "v2"}, old.Meta())
	assert.Equal(t, map[string]m.Value{"k": 1}, old.Closure())
}

func TestPatcher_Patch_FunctionSealedSlotSkipped(t *testing.T) {
	old := m.NewFunction(m.FunctionDef{Name: "f", Doc: "old", Code: constant(1)})
	old.Seal(m.SlotDoc)

	new := m.NewFunction(m.FunctionDef{Name: "f", Doc: "new", Code: constant(2)})

	require.True(t, NewPatcher(nil).Patch(old, new))
	assert.Equal(t, "old", old.Doc())
	assert.Equal(t, 2, invoke(t, old))
}

func TestPatcher_Patch_BoundMethodKeepsReceiver(t *testing.T) {
	old := &m.BoundMethod{Func: fn("f", 1, "self"), Self: "a"}
	new := &m.BoundMethod{Func: fn("f", 2, "self"), Self: "b"}

	require.True(t, NewPatcher(nil).Patch(old, new))
	assert.Equal(t, 2, invoke(t, old))
	assert.Equal(t, "a", old.Self)
}

func TestPatcher_Patch_PropertyPairwise(t *testing.T) {
	oldGet := fn("get", 1, "self")
	old := &m.Property{Get: oldGet}
	new := &m.Property{Get: fn("get", 2, "self"), Set: fn("set", nil, "self", "v")}

	require.True(t, NewPatcher(nil).Patch(old, new))

	assert.Same(t, oldGet, old.Get)
	assert.Equal(t, 2, invoke(t, old.Get, "self"))
	assert.Nil(t, old.Set, "an accessor only present on the new side is not carried over")
}

func TestPatcher_Patch_PartialKeepsBoundArgs(t *testing.T) {
	body := func(v int) m.CodeFunc {
		return func(fr *m.Frame) (m.Value, error) {
			a, _ := fr.Lookup("a")
			return a.(int) * v, nil
		}
	}

	oldFn := m.NewFunction(m.FunctionDef{Name: "f", Params: []string{"a"}, Code: body(1)})
	old := &m.Partial{Func: oldFn, Args: []m.Value{3}}
	new := &m.Partial{
		Func: m.NewFunction(m.FunctionDef{Name: "f", Params: []string{"a"}, Code: body(10)}),
		Args: []m.Value{9},
	}

	require.True(t, NewPatcher(nil).Patch(old, new))

	assert.Same(t, oldFn, old.Func)
	assert.Equal(t, []m.Value{3}, old.Args)
	assert.Equal(t, 30, invoke(t, old))
}

func TestPatcher_Patch_ClassMergesAttributes(t *testing.T) {
	heap := m.NewHeap()

	old := m.NewClass(m.ClassDef{Name: "C", Home: "m", Heap: heap})
	oldF := fn("f", 1, "self")
	require.NoError(t, old.SetAttr("f", oldF))
	require.NoError(t, old.SetAttr("gone", fn("gone", 0, "self")))
	require.NoError(t, old.SetAttr("limit", 10))
	require.NoError(t, old.SetAttr("stale", "x"))
	require.NoError(t, old.SetAttr("same", 5))

	inst, err := old.New()
	require.NoError(t, err)

	new := m.NewClass(m.ClassDef{Name: "C", Home: "m", Heap: heap})
	require.NoError(t, new.SetAttr("f", fn("f", 2, "self")))
	require.NoError(t, new.SetAttr("limit", 20))
	require.NoError(t, new.SetAttr("same", 5))
	require.NoError(t, new.SetAttr("added", fn("added", 3, "self")))

	require.True(t, NewPatcher(nil).Patch(old, new))

	assert.Same(t, new, inst.Class())

	got, err := inst.CallMethod("f")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = inst.CallMethod("added")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = inst.GetAttr("gone")
	require.ErrorIs(t, err, m.ErrNoAttribute)

	_, ok := old.Own("gone")
	assert.False(t, ok, "obsolete callables are removed from the old class")

	limit, _ := new.Own("limit")
	assert.Equal(t, 10, limit, "data keeps the old value")

	stale, _ := new.Own("stale")
	assert.Equal(t, "x", stale)

	f, _ := old.Own("f")
	assert.Same(t, oldF, f)
	assert.Equal(t, 2, invoke(t, oldF, inst))

	_, ok = old.Own("added")
	assert.True(t, ok)
}

func TestPatcher_Patch_ClassAmbiguousComparison(t *testing.T) {
	oldWeights := m.NewArray(1, 2)

	old := m.NewClass(m.ClassDef{Name: "C"})
	require.NoError(t, old.SetAttr("weights", oldWeights))

	new := m.NewClass(m.ClassDef{Name: "C"})
	require.NoError(t, new.SetAttr("weights", m.NewArray(1, 2)))

	require.True(t, NewPatcher(nil).Patch(old, new))

	got, _ := new.Own("weights")
	assert.Same(t, oldWeights, got)
}

func TestPatcher_Patch_ClassSealedAttributeSkipped(t *testing.T) {
	old := m.NewClass(m.ClassDef{Name: "C"})
	require.NoError(t, old.SetAttr("kind", "a"))

	new := m.NewClass(m.ClassDef{Name: "C"})
	require.NoError(t, new.SetAttr("kind", "b"))
	require.NoError(t, new.SetAttr("g", fn("g", 1, "self")))
	new.Seal("kind")

	require.True(t, NewPatcher(nil).Patch(old, new))

	kind, _ := new.Own("kind")
	assert.Equal(t, "b", kind)

	_, ok := old.Own("g")
	assert.True(t, ok, "a refused write does not stop the merge")
}

func TestPatcher_Patch_ClassRetargetsExactClassOnly(t *testing.T) {
	heap := m.NewHeap()

	old := m.NewClass(m.ClassDef{Name: "C", Heap: heap})
	sub := m.NewClass(m.ClassDef{Name: "D", Bases: []*m.Class{old}, Heap: heap})
	new := m.NewClass(m.ClassDef{Name: "C", Heap: heap})

	direct, err := old.New()
	require.NoError(t, err)

	derived, err := sub.New()
	require.NoError(t, err)

	require.True(t, NewPatcher(nil).Patch(old, new))

	assert.Same(t, new, direct.Class())
	assert.Same(t, sub, derived.Class())
}

func TestPatcher_Patch_NestedClassData(t *testing.T) {
	innerOld := m.NewClass(m.ClassDef{Name: "Inner"})
	require.NoError(t, innerOld.SetAttr("f", fn("f", 1, "self")))

	innerNew := m.NewClass(m.ClassDef{Name: "Inner"})
	require.NoError(t, innerNew.SetAttr("f", fn("f", 2, "self")))

	old := m.NewClass(m.ClassDef{Name: "Outer"})
	require.NoError(t, old.SetAttr("Inner", innerOld))

	new := m.NewClass(m.ClassDef{Name: "Outer"})
	require.NoError(t, new.SetAttr("Inner", innerNew))

	require.True(t, NewPatcher(nil).Patch(old, new))

	got, _ := new.Own("Inner")
	assert.Same(t, innerOld, got)

	f, _ := innerOld.Own("f")
	assert.Equal(t, 2, invoke(t, f, "self"), "the nested class is patched in place")
}

func TestPatcher_Rules_DispatchOrder(t *testing.T) {
	p, ok := NewPatcher(nil).(*patcher)
	require.True(t, ok)

	kinds := make([]string, 0, len(p.rules))
	for _, r := range p.rules {
		kinds = append(kinds, r.kind)
	}

	assert.Equal(t, []string{"class", "function", "method", "property", "partial"}, kinds)
}
