package model

import (
	"fmt"
	"sync/atomic"
)

// Instance is an object constructed from a Class. Its type pointer is the
// only thing the referrer rescan rewrites.
type Instance struct {
	class atomic.Pointer[Class]
	attrs *Namespace
}

// NewInstance allocates an instance of c without registering it with any
// heap and without running __init__. Use Class.New for construction.
func NewInstance(c *Class) *Instance {
	inst := &Instance{attrs: NewNamespace()}
	inst.class.Store(c)

	return inst
}

// Class returns the current type of the instance.
func (i *Instance) Class() *Class {
	return i.class.Load()
}

// Attrs exposes the per-instance attribute namespace.
func (i *Instance) Attrs() *Namespace {
	return i.attrs
}

func (i *Instance) retarget(from, to *Class) bool {
	return i.class.CompareAndSwap(from, to)
}

// GetAttr resolves name: a class property first, then instance state,
// then class attributes with functions bound to the receiver.
func (i *Instance) GetAttr(name string) (Value, error) {
	cls := i.Class()

	if name == "__class__" {
		return cls, nil
	}

	if v, ok := cls.Lookup(name); ok {
		if p, isProp := v.(*Property); isProp {
			if p.Get == nil {
				return nil, fmt.Errorf("%w: property %q of %s is not readable", ErrNoAttribute, name, cls.Name())
			}

			return Call(p.Get, i)
		}
	}

	if v, ok := i.attrs.Get(name); ok {
		return v, nil
	}

	v, ok := cls.Lookup(name)
	if !ok {
		return nil, &AttributeError{Owner: cls.Name() + " object", Name: name}
	}

	switch x := v.(type) {
	case *Function:
		return &BoundMethod{Func: x, Self: i}, nil
	case *Partial:
		if x.Method {
			return &BoundMethod{Func: x, Self: i}, nil
		}
	}

	return v, nil
}

// HasAttr reports whether GetAttr would succeed.
func (i *Instance) HasAttr(name string) bool {
	_, err := i.GetAttr(name)
	return err == nil
}

// SetAttr assigns instance state, or calls a property setter.
func (i *Instance) SetAttr(name string, v Value) error {
	cls := i.Class()

	if attr, ok := cls.Lookup(name); ok {
		if p, isProp := attr.(*Property); isProp {
			if p.Set == nil {
				return fmt.Errorf("%w: property %q of %s has no setter", ErrReadOnly, name, cls.Name())
			}

			_, err := Call(p.Set, i, v)

			return err
		}
	}

	i.attrs.Set(name, v)

	return nil
}

// DelAttr removes instance state, or calls a property deleter.
func (i *Instance) DelAttr(name string) error {
	cls := i.Class()

	if attr, ok := cls.Lookup(name); ok {
		if p, isProp := attr.(*Property); isProp {
			if p.Del == nil {
				return fmt.Errorf("%w: property %q of %s has no deleter", ErrReadOnly, name, cls.Name())
			}

			_, err := Call(p.Del, i)

			return err
		}
	}

	if !i.attrs.Delete(name) {
		return &AttributeError{Owner: cls.Name() + " object", Name: name}
	}

	return nil
}

// CallMethod looks up name and calls it.
func (i *Instance) CallMethod(name string, args ...Value) (Value, error) {
	fn, err := i.GetAttr(name)
	if err != nil {
		return nil, err
	}

	return Call(fn, args...)
}

func (i *Instance) String() string {
	cls := i.Class()
	if v, ok := cls.Lookup("__str__"); ok {
		if out, err := Call(&BoundMethod{Func: v, Self: i}); err == nil {
			if s, ok := out.(string); ok {
				return s
			}
		}
	}

	return fmt.Sprintf("<%s object at %p>", cls.Name(), i)
}
