package model

import "weak"

// WeakRef is a handle that does not keep its referent alive. Two handles
// made from the same object compare equal with ==, even after collection.
type WeakRef interface {
	Value() (Value, bool)
}

type weakHandle[T any] struct {
	p weak.Pointer[T]
}

func (h weakHandle[T]) Value() (Value, bool) {
	v := h.p.Value()
	if v == nil {
		return nil, false
	}

	return v, true
}

func makeWeak[T any](v *T) WeakRef {
	return weakHandle[T]{p: weak.Make(v)}
}

// MakeWeak returns a weak handle for the pointer entity kinds of this
// package. Other values cannot be weakly referenced.
func MakeWeak(v Value) (WeakRef, bool) {
	switch x := v.(type) {
	case *Class:
		return makeWeak(x), x != nil
	case *Instance:
		return makeWeak(x), x != nil
	case *Function:
		return makeWeak(x), x != nil
	case *BoundMethod:
		return makeWeak(x), x != nil
	case *Property:
		return makeWeak(x), x != nil
	case *Partial:
		return makeWeak(x), x != nil
	case *EnumMember:
		return makeWeak(x), x != nil
	case *List:
		return makeWeak(x), x != nil
	case *Dict:
		return makeWeak(x), x != nil
	case *Array:
		return makeWeak(x), x != nil
	case *Unit:
		return makeWeak(x), x != nil
	}

	return nil, false
}
