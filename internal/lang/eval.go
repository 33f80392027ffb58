package lang

import (
	"fmt"
	"math"
	"strings"

	m "github.com/mouse-blink/graft/internal/model"
)

type attrGetter interface {
	GetAttr(name string) (m.Value, error)
}

type attrSetter interface {
	SetAttr(name string, v m.Value) error
}

func eval(fr *m.Frame, e expr) (m.Value, error) {
	switch e := e.(type) {
	case *literal:
		return e.v, nil
	case *ident:
		if v, ok := fr.Lookup(e.name); ok {
			return v, nil
		}

		if v, ok := Builtins().Get(e.name); ok {
			return v, nil
		}

		return nil, failAt(e.pos, fmt.Errorf("%w: %s", ErrUndefined, e.name))
	case *listLit:
		items := make([]m.Value, 0, len(e.elems))

		for _, x := range e.elems {
			v, err := eval(fr, x)
			if err != nil {
				return nil, err
			}

			items = append(items, v)
		}

		return m.NewList(items...), nil
	case *dictLit:
		d := m.NewDict()

		for _, entry := range e.entries {
			v, err := eval(fr, entry.val)
			if err != nil {
				return nil, err
			}

			d.Set(entry.key, v)
		}

		return d, nil
	case *attrExpr:
		x, err := eval(fr, e.x)
		if err != nil {
			return nil, err
		}

		v, err := getAttr(x, e.name)
		if err != nil {
			return nil, failAt(e.pos, err)
		}

		return v, nil
	case *indexExpr:
		return evalIndex(fr, e)
	case *callExpr:
		return evalCall(fr, e)
	case *unaryExpr:
		return evalUnary(fr, e)
	case *binaryExpr:
		return evalBinary(fr, e)
	case *condExpr:
		c, err := eval(fr, e.cond)
		if err != nil {
			return nil, err
		}

		if Truthy(c) {
			return eval(fr, e.then)
		}

		return eval(fr, e.orElse)
	}

	return nil, fmt.Errorf("unsupported expression %T", e)
}

func assign(fr *m.Frame, target expr, v m.Value) error {
	switch t := target.(type) {
	case *ident:
		fr.Assign(t.name, v)
		return nil
	case *attrExpr:
		x, err := eval(fr, t.x)
		if err != nil {
			return err
		}

		if err := setAttr(x, t.name, v); err != nil {
			return failAt(t.pos, err)
		}

		return nil
	case *indexExpr:
		x, err := eval(fr, t.x)
		if err != nil {
			return err
		}

		idx, err := eval(fr, t.index)
		if err != nil {
			return err
		}

		if err := setIndex(x, idx, v); err != nil {
			return failAt(t.pos, err)
		}

		return nil
	}

	return fmt.Errorf("cannot assign to %T", target)
}

func getAttr(x m.Value, name string) (m.Value, error) {
	switch v := x.(type) {
	case attrGetter:
		return v.GetAttr(name)
	case *m.Function:
		switch name {
		case "__name__":
			return v.Name(), nil
		case "__doc__":
			return v.Doc(), nil
		case "__module__":
			return v.Home(), nil
		}
	case *m.BoundMethod:
		switch name {
		case "__func__":
			return v.Func, nil
		case "__self__":
			return v.Self, nil
		}
	case *m.Partial:
		switch name {
		case "func":
			return v.Func, nil
		case "args":
			return m.NewList(v.Args...), nil
		}
	case *m.List:
		if name == "append" {
			return m.NewNative("append", func(fr *m.Frame) (m.Value, error) {
				v.Append(fr.Locals["item"])
				return nil, nil
			}, "item"), nil
		}
	case *m.Dict:
		if name == "keys" {
			return m.NewNative("keys", func(*m.Frame) (m.Value, error) {
				keys := v.Keys()
				items := make([]m.Value, 0, len(keys))

				for _, k := range keys {
					items = append(items, k)
				}

				return m.NewList(items...), nil
			}), nil
		}
	}

	return nil, &m.AttributeError{Owner: m.TypeName(x) + " object", Name: name}
}

func setAttr(x m.Value, name string, v m.Value) error {
	switch t := x.(type) {
	case attrSetter:
		return t.SetAttr(name, v)
	case *m.Unit:
		t.Namespace.Set(name, v)
		return nil
	}

	return fmt.Errorf("%w: %s object attributes cannot be assigned", m.ErrReadOnly, m.TypeName(x))
}

func evalIndex(fr *m.Frame, e *indexExpr) (m.Value, error) {
	x, err := eval(fr, e.x)
	if err != nil {
		return nil, err
	}

	idx, err := eval(fr, e.index)
	if err != nil {
		return nil, err
	}

	var out m.Value

	switch c := x.(type) {
	case *m.List:
		i, ok := m.AsInt(idx)
		if !ok {
			return nil, failAt(e.pos, fmt.Errorf("list indices must be integers, not %s", m.TypeName(idx)))
		}

		out, err = c.Get(int(i))
	case *m.Dict:
		k, ok := idx.(string)
		if !ok {
			return nil, failAt(e.pos, fmt.Errorf("dict keys must be strings, not %s", m.TypeName(idx)))
		}

		v, found := c.Get(k)
		if !found {
			return nil, failAt(e.pos, fmt.Errorf("key %q not found", k))
		}

		out = v
	case string:
		i, ok := m.AsInt(idx)
		if !ok {
			return nil, failAt(e.pos, fmt.Errorf("string indices must be integers"))
		}

		r := []rune(c)
		if i < 0 {
			i += int64(len(r))
		}

		if i < 0 || int(i) >= len(r) {
			return nil, failAt(e.pos, fmt.Errorf("string index %d out of range", i))
		}

		out = string(r[i])
	default:
		return nil, failAt(e.pos, fmt.Errorf("%s object is not subscriptable", m.TypeName(x)))
	}

	if err != nil {
		return nil, failAt(e.pos, err)
	}

	return out, nil
}

func setIndex(x, idx, v m.Value) error {
	switch c := x.(type) {
	case *m.List:
		i, ok := m.AsInt(idx)
		if !ok {
			return fmt.Errorf("list indices must be integers, not %s", m.TypeName(idx))
		}

		return c.Set(int(i), v)
	case *m.Dict:
		k, ok := idx.(string)
		if !ok {
			return fmt.Errorf("dict keys must be strings, not %s", m.TypeName(idx))
		}

		c.Set(k, v)

		return nil
	}

	return fmt.Errorf("%s object does not support item assignment", m.TypeName(x))
}

func evalCall(fr *m.Frame, e *callExpr) (m.Value, error) {
	fn, err := eval(fr, e.fn)
	if err != nil {
		return nil, err
	}

	args := make([]m.Value, 0, len(e.args))

	for _, a := range e.args {
		v, err := eval(fr, a)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	var kwargs map[string]m.Value

	if len(e.kwargs) > 0 {
		kwargs = make(map[string]m.Value, len(e.kwargs))

		for _, kw := range e.kwargs {
			v, err := eval(fr, kw.val)
			if err != nil {
				return nil, err
			}

			kwargs[kw.name] = v
		}
	}

	out, err := m.CallWith(fn, args, kwargs)
	if err != nil {
		return nil, failAt(e.pos, err)
	}

	return out, nil
}

func evalUnary(fr *m.Frame, e *unaryExpr) (m.Value, error) {
	x, err := eval(fr, e.x)
	if err != nil {
		return nil, err
	}

	if e.op == "not" {
		return !Truthy(x), nil
	}

	if i, ok := m.AsInt(x); ok {
		return int(-i), nil
	}

	if f, ok := m.AsFloat(x); ok {
		return -f, nil
	}

	return nil, failAt(e.pos, fmt.Errorf("bad operand type for unary -: %s", m.TypeName(x)))
}

func evalBinary(fr *m.Frame, e *binaryExpr) (m.Value, error) {
	l, err := eval(fr, e.l)
	if err != nil {
		return nil, err
	}

	switch e.op {
	case "and":
		if !Truthy(l) {
			return l, nil
		}

		return eval(fr, e.r)
	case "or":
		if Truthy(l) {
			return l, nil
		}

		return eval(fr, e.r)
	}

	r, err := eval(fr, e.r)
	if err != nil {
		return nil, err
	}

	out, err := binary(e.op, l, r)
	if err != nil {
		return nil, failAt(e.pos, err)
	}

	return out, nil
}

func binary(op string, l, r m.Value) (m.Value, error) {
	switch op {
	case "==", "!=":
		eq, err := m.Equal(l, r)
		if err != nil {
			return nil, err
		}

		return eq == (op == "=="), nil
	}

	li, lInt := m.AsInt(l)
	ri, rInt := m.AsInt(r)

	if lInt && rInt {
		return intOp(op, li, ri)
	}

	lf, lNum := m.AsFloat(l)
	rf, rNum := m.AsFloat(r)

	if lNum && rNum {
		return floatOp(op, lf, rf)
	}

	if ls, ok := l.(string); ok {
		if rs, ok := r.(string); ok {
			return stringOp(op, ls, rs)
		}

		if op == "*" && rInt {
			return strings.Repeat(ls, max(int(ri), 0)), nil
		}
	}

	if ll, ok := l.(*m.List); ok && op == "+" {
		if rl, ok := r.(*m.List); ok {
			return m.NewList(append(ll.Items(), rl.Items()...)...), nil
		}
	}

	return nil, fmt.Errorf("unsupported operand types for %s: %s and %s", op, m.TypeName(l), m.TypeName(r))
}

func intOp(op string, a, b int64) (m.Value, error) {
	switch op {
	case "+":
		return int(a + b), nil
	case "-":
		return int(a - b), nil
	case "*":
		return int(a * b), nil
	case "/":
		if b == 0 {
			return nil, fmt.Errorf("division by zero")
		}

		return float64(a) / float64(b), nil
	case "%":
		if b == 0 {
			return nil, fmt.Errorf("integer modulo by zero")
		}

		mod := a % b
		if mod != 0 && (mod < 0) != (b < 0) {
			mod += b
		}

		return int(mod), nil
	}

	return compare(op, a, b)
}

func floatOp(op string, a, b float64) (m.Value, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return nil, fmt.Errorf("division by zero")
		}

		return a / b, nil
	case "%":
		if b == 0 {
			return nil, fmt.Errorf("float modulo by zero")
		}

		return a - b*math.Floor(a/b), nil
	}

	return compare(op, a, b)
}

func stringOp(op string, a, b string) (m.Value, error) {
	if op == "+" {
		return a + b, nil
	}

	return compare(op, a, b)
}

func compare[T int64 | float64 | string](op string, a, b T) (m.Value, error) {
	switch op {
	case "<":
		return a < b, nil
	case "<=":
		return a <= b, nil
	case ">":
		return a > b, nil
	case ">=":
		return a >= b, nil
	}

	return nil, fmt.Errorf("unsupported operator %s", op)
}

// Truthy reports the boolean value of v.
func Truthy(v m.Value) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case *m.List:
		return x.Len() > 0
	case *m.Dict:
		return x.Len() > 0
	}

	if f, ok := m.AsFloat(v); ok {
		return f != 0
	}

	return true
}
