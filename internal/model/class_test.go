package model

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v Value) CodeFunc {
	return func(*Frame) (Value, error) { return v, nil }
}

func method(name string, v Value) *Function {
	return NewFunction(FunctionDef{Name: name, Home: "m", Params: []string{"self"}, Code: constant(v)})
}

func TestClass_LookupFollowsBases(t *testing.T) {
	t.Parallel()

	base := NewClass(ClassDef{Name: "Base", Home: "m"})
	require.NoError(t, base.SetAttr("f", method("f", 1)))
	require.NoError(t, base.SetAttr("g", method("g", 2)))

	derived := NewClass(ClassDef{Name: "Derived", Home: "m", Bases: []*Class{base}})
	require.NoError(t, derived.SetAttr("g", method("g", 3)))

	inst, err := derived.New()
	require.NoError(t, err)

	got, err := inst.CallMethod("f")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = inst.CallMethod("g")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	assert.True(t, derived.IsSubclassOf(base))
	assert.False(t, base.IsSubclassOf(derived))
	assert.Equal(t, []*Class{derived, base}, derived.MRO())
}

func TestClass_SealedAttributes(t *testing.T) {
	t.Parallel()

	cls := NewClass(ClassDef{Name: "C"})
	require.NoError(t, cls.SetAttr("kind", "a"))
	cls.Seal("kind")

	require.ErrorIs(t, cls.SetAttr("kind", "b"), ErrReadOnly)
	require.ErrorIs(t, cls.DelAttr("kind"), ErrReadOnly)

	v, _ := cls.Own("kind")
	assert.Equal(t, "a", v)
}

func TestClass_NewRunsInit(t *testing.T) {
	t.Parallel()

	cls := NewClass(ClassDef{Name: "Point"})
	init := NewFunction(FunctionDef{
		Name:   "__init__",
		Params: []string{"self", "x"},
		Code: CodeFunc(func(fr *Frame) (Value, error) {
			self := fr.Locals["self"].(*Instance)
			return nil, self.SetAttr("x", fr.Locals["x"])
		}),
	})
	require.NoError(t, cls.SetAttr("__init__", init))

	p, err := cls.New(7)
	require.NoError(t, err)

	x, err := p.GetAttr("x")
	require.NoError(t, err)
	assert.Equal(t, 7, x)

	_, err = cls.New()
	require.ErrorIs(t, err, ErrArity)
}

func TestInstance_GetAttrOrder(t *testing.T) {
	t.Parallel()

	cls := NewClass(ClassDef{Name: "C"})
	require.NoError(t, cls.SetAttr("shadow", "class"))
	require.NoError(t, cls.SetAttr("prop", &Property{Get: method("prop", "computed")}))

	inst := NewInstance(cls)
	inst.Attrs().Set("shadow", "instance")
	inst.Attrs().Set("prop", "ignored")

	v, err := inst.GetAttr("shadow")
	require.NoError(t, err)
	assert.Equal(t, "instance", v)

	v, err = inst.GetAttr("prop")
	require.NoError(t, err)
	assert.Equal(t, "computed", v)

	_, err = inst.GetAttr("nope")

	var attrErr *AttributeError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "nope", attrErr.Name)
}

func TestInstance_PropertyWithoutSetter(t *testing.T) {
	t.Parallel()

	cls := NewClass(ClassDef{Name: "C"})
	require.NoError(t, cls.SetAttr("p", &Property{Get: method("p", 1)}))

	inst := NewInstance(cls)
	require.ErrorIs(t, inst.SetAttr("p", 2), ErrReadOnly)
}

func TestInstance_MethodPartialBindsReceiverFirst(t *testing.T) {
	t.Parallel()

	var seen []Value

	fn := NewFunction(FunctionDef{
		Name:   "f",
		Params: []string{"self", "a", "b"},
		Code: CodeFunc(func(fr *Frame) (Value, error) {
			seen = []Value{fr.Locals["self"], fr.Locals["a"], fr.Locals["b"]}
			return nil, nil
		}),
	})

	cls := NewClass(ClassDef{Name: "C"})
	require.NoError(t, cls.SetAttr("g", &Partial{Func: fn, Args: []Value{1}, Method: true}))

	inst := NewInstance(cls)
	_, err := inst.CallMethod("g", 2)
	require.NoError(t, err)

	assert.Equal(t, []Value{inst, 1, 2}, seen)
}

func TestHeap_RetargetExactClassOnly(t *testing.T) {
	t.Parallel()

	heap := NewHeap()
	old := NewClass(ClassDef{Name: "C", Heap: heap})
	sub := NewClass(ClassDef{Name: "D", Bases: []*Class{old}, Heap: heap})
	replacement := NewClass(ClassDef{Name: "C", Heap: heap})

	a, err := old.New()
	require.NoError(t, err)
	b, err := sub.New()
	require.NoError(t, err)

	n, err := heap.Retarget(old, replacement)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Same(t, replacement, a.Class())
	assert.Same(t, sub, b.Class())
	assert.Equal(t, []*Instance{a}, heap.Instances(replacement))
	assert.Empty(t, heap.Instances(old))
}

func TestHeap_RetargetRejectsReentrantScan(t *testing.T) {
	t.Parallel()

	heap := NewHeap()
	heap.scanning.Store(true)

	_, err := heap.Retarget(NewClass(ClassDef{Name: "A"}), NewClass(ClassDef{Name: "B"}))
	require.ErrorIs(t, err, ErrScanInProgress)
}

func TestHeap_PrunesCollectedInstances(t *testing.T) {
	heap := NewHeap()
	cls := NewClass(ClassDef{Name: "C", Heap: heap})

	for range 10 {
		_, err := cls.New()
		require.NoError(t, err)
	}

	runtime.GC()
	runtime.GC()

	assert.Empty(t, heap.Instances(cls))
}

func TestEnum_MembersAreIdentitySensitive(t *testing.T) {
	t.Parallel()

	color := NewEnum(ClassDef{Name: "Color", Home: "m"}, []Binding{{Name: "A", Value: "a"}, {Name: "B", Value: "b"}})
	again := NewEnum(ClassDef{Name: "Color", Home: "m"}, []Binding{{Name: "A", Value: "a"}})

	members := color.Members()
	require.Len(t, members, 2)
	assert.True(t, IsIdentitySensitive(members[0]))
	assert.False(t, IsIdentitySensitive(color))

	eq, err := Equal(members[0], again.Members()[0])
	require.NoError(t, err)
	assert.False(t, eq)

	require.ErrorIs(t, color.SetAttr("A", 1), ErrReadOnly)

	_, err = color.CallWith(nil, nil)
	require.ErrorIs(t, err, ErrNotCallable)
}
