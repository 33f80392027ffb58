package model

import "fmt"

// Comparer lets a value define its own equality. An error means the
// comparison is not well defined.
type Comparer interface {
	Equal(other Value) (bool, error)
}

// Equal reports structural equality. Numbers compare numerically, lists
// and dicts element-wise, Comparers by delegation, everything else by
// identity. An error is returned when a nested comparison is ambiguous.
func Equal(a, b Value) (bool, error) {
	if IsPrimitive(a) || IsPrimitive(b) {
		return primitiveEqual(a, b), nil
	}

	if Same(a, b) {
		return true, nil
	}

	switch x := a.(type) {
	case Comparer:
		return x.Equal(b)
	case *List:
		y, ok := b.(*List)
		if !ok {
			return false, nil
		}

		return sequenceEqual(x.Items(), y.Items())
	case *Dict:
		y, ok := b.(*Dict)
		if !ok || x.Len() != y.Len() {
			return false, nil
		}

		for _, k := range x.Keys() {
			xv, _ := x.Get(k)

			yv, found := y.Get(k)
			if !found {
				return false, nil
			}

			eq, err := Equal(xv, yv)
			if err != nil || !eq {
				return false, err
			}
		}

		return true, nil
	}

	return false, nil
}

func sequenceEqual(xs, ys []Value) (bool, error) {
	if len(xs) != len(ys) {
		return false, nil
	}

	for i := range xs {
		eq, err := Equal(xs[i], ys[i])
		if err != nil {
			return false, fmt.Errorf("element %d: %w", i, err)
		}

		if !eq {
			return false, nil
		}
	}

	return true, nil
}

func primitiveEqual(a, b Value) bool {
	if ai, ok := AsInt(a); ok {
		if bi, ok := AsInt(b); ok {
			return ai == bi
		}
	}

	if af, ok := AsFloat(a); ok {
		if bf, ok := AsFloat(b); ok {
			return af == bf
		}

		return false
	}

	return a == b
}

// AsInt converts Go integer kinds to int64.
func AsInt(v Value) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}

	return 0, false
}

// AsFloat converts any Go numeric kind to float64.
func AsFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}

	if i, ok := AsInt(v); ok {
		return float64(i), true
	}

	return 0, false
}
