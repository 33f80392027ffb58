package lang

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	m "github.com/mouse-blink/graft/internal/model"
)

// BuiltinsUnit is the name of the native unit holding the builtins.
const BuiltinsUnit = "builtins"

var builtins = sync.OnceValue(func() *m.Namespace {
	ns := m.NewNamespace()

	def := func(name string, body m.CodeFunc, params ...string) {
		ns.Set(name, m.NewNative(name, body, params...))
	}

	def("len", builtinLen, "x")
	def("str", func(fr *m.Frame) (m.Value, error) { return Str(fr.Locals["x"]), nil }, "x")
	def("repr", func(fr *m.Frame) (m.Value, error) { return m.Repr(fr.Locals["x"]), nil }, "x")
	def("int", builtinInt, "x")
	def("float", builtinFloat, "x")
	def("getattr", builtinGetattr, "obj", "name", "*default")
	def("setattr", func(fr *m.Frame) (m.Value, error) {
		name, err := nameArg(fr)
		if err != nil {
			return nil, err
		}

		return nil, setAttr(fr.Locals["obj"], name, fr.Locals["value"])
	}, "obj", "name", "value")
	def("hasattr", func(fr *m.Frame) (m.Value, error) {
		name, err := nameArg(fr)
		if err != nil {
			return nil, err
		}

		_, err = getAttr(fr.Locals["obj"], name)

		return err == nil, nil
	}, "obj", "name")
	def("isinstance", builtinIsinstance, "obj", "cls")
	def("type", func(fr *m.Frame) (m.Value, error) {
		if inst, ok := fr.Locals["obj"].(*m.Instance); ok {
			return inst.Class(), nil
		}

		return m.TypeName(fr.Locals["obj"]), nil
	}, "obj")
	def("partial", builtinPartial, "func", "*args", "**keywords")
	def("list", func(fr *m.Frame) (m.Value, error) { return fr.Locals["items"], nil }, "*items")
	def("dict", func(fr *m.Frame) (m.Value, error) { return fr.Locals["entries"], nil }, "**entries")
	def("array", builtinArray, "*items")

	return ns
})

// Builtins returns the shared namespace of native functions. Every
// function in it is sealed.
func Builtins() *m.Namespace {
	return builtins()
}

// Str converts v to its display string; strings are returned unquoted.
func Str(v m.Value) string {
	if s, ok := v.(string); ok {
		return s
	}

	return m.Repr(v)
}

func nameArg(fr *m.Frame) (string, error) {
	name, ok := fr.Locals["name"].(string)
	if !ok {
		return "", fmt.Errorf("attribute name must be a string, not %s", m.TypeName(fr.Locals["name"]))
	}

	return name, nil
}

func builtinLen(fr *m.Frame) (m.Value, error) {
	switch x := fr.Locals["x"].(type) {
	case string:
		return len([]rune(x)), nil
	case *m.List:
		return x.Len(), nil
	case *m.Dict:
		return x.Len(), nil
	case *m.Array:
		return x.Len(), nil
	case *m.Class:
		if x.IsEnum() {
			return len(x.Members()), nil
		}
	}

	return nil, fmt.Errorf("object of type %s has no len()", m.TypeName(fr.Locals["x"]))
}

func builtinInt(fr *m.Frame) (m.Value, error) {
	x := fr.Locals["x"]

	switch v := x.(type) {
	case bool:
		if v {
			return 1, nil
		}

		return 0, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid literal for int(): %q", v)
		}

		return n, nil
	}

	if i, ok := m.AsInt(x); ok {
		return int(i), nil
	}

	if f, ok := m.AsFloat(x); ok {
		return int(f), nil
	}

	return nil, fmt.Errorf("int() argument must be a string or a number, not %s", m.TypeName(x))
}

func builtinFloat(fr *m.Frame) (m.Value, error) {
	x := fr.Locals["x"]

	if s, ok := x.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("could not convert string to float: %q", s)
		}

		return f, nil
	}

	if f, ok := m.AsFloat(x); ok {
		return f, nil
	}

	return nil, fmt.Errorf("float() argument must be a string or a number, not %s", m.TypeName(x))
}

func builtinGetattr(fr *m.Frame) (m.Value, error) {
	name, err := nameArg(fr)
	if err != nil {
		return nil, err
	}

	v, err := getAttr(fr.Locals["obj"], name)
	if err == nil {
		return v, nil
	}

	if dflt := fr.Locals["default"].(*m.List); dflt.Len() > 0 {
		return dflt.Get(0)
	}

	return nil, err
}

func builtinIsinstance(fr *m.Frame) (m.Value, error) {
	cls, ok := fr.Locals["cls"].(*m.Class)
	if !ok {
		return nil, fmt.Errorf("isinstance() arg 2 must be a class")
	}

	switch obj := fr.Locals["obj"].(type) {
	case *m.Instance:
		return obj.Class().IsSubclassOf(cls), nil
	case *m.EnumMember:
		return obj.Enum == cls, nil
	}

	return false, nil
}

func builtinPartial(fr *m.Frame) (m.Value, error) {
	args := fr.Locals["args"].(*m.List)
	kw := fr.Locals["keywords"].(*m.Dict)

	var keywords map[string]m.Value

	if kw.Len() > 0 {
		keywords = make(map[string]m.Value, kw.Len())

		for _, k := range kw.Keys() {
			keywords[k], _ = kw.Get(k)
		}
	}

	return &m.Partial{Func: fr.Locals["func"], Args: args.Items(), Keywords: keywords}, nil
}

func builtinArray(fr *m.Frame) (m.Value, error) {
	items := fr.Locals["items"].(*m.List).Items()

	if len(items) == 1 {
		if inner, ok := items[0].(*m.List); ok {
			items = inner.Items()
		}
	}

	out := make([]float64, 0, len(items))

	for i, it := range items {
		f, ok := m.AsFloat(it)
		if !ok {
			return nil, fmt.Errorf("array element %d is not a number", i)
		}

		out = append(out, f)
	}

	return m.NewArray(out...), nil
}

// Names lists the builtin identifiers in sorted order.
func Names() []string {
	keys := Builtins().Keys()
	sort.Strings(keys)

	return keys
}
