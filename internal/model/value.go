// Package model defines the live object model that units execute into and
// that the patch engine mutates in place.
//
// Every entity with identity (classes, instances, functions, bound methods,
// properties, partials, enum members, containers) is a pointer type, so
// reference identity is pointer identity and survives in-place patching.
package model

import (
	"fmt"
	"reflect"
)

// Value is any object bound in a namespace.
type Value = any

// IsPrimitive reports whether v is an immutable primitive (nil, bool,
// number or string). Primitives are never tracked or patched.
func IsPrimitive(v Value) bool {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}

	return false
}

// Same reports whether a and b are the same reference. Unlike a plain ==
// it never panics on non-comparable values.
func Same(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Struct, reflect.Array, reflect.Interface, reflect.Slice, reflect.Func:
		return false
	default:
		return a == b
	}
}

// TypeName returns a short, user-facing name for the kind of v.
func TypeName(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case string:
		return "str"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case *Class:
		return "class"
	case *Instance:
		return x.Class().Name()
	case *Function:
		return "function"
	case *BoundMethod:
		return "method"
	case *Property:
		return "property"
	case *Partial:
		if x.Method {
			return "partialmethod"
		}

		return "partial"
	case *EnumMember:
		return x.Enum.Name()
	case *List:
		return "list"
	case *Dict:
		return "dict"
	case *Array:
		return "array"
	case *Unit:
		return "unit"
	}

	return fmt.Sprintf("%T", v)
}

// Repr renders v for display in the interactive host.
func Repr(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", x)
	case fmt.Stringer:
		return x.String()
	}

	return fmt.Sprint(v)
}
