package model

import (
	"fmt"
	"maps"
)

// BoundMethod is a callable bound to a receiver.
type BoundMethod struct {
	Func Value
	Self Value
}

// CallWith calls the underlying callable with Self first.
func (b *BoundMethod) CallWith(args []Value, kwargs map[string]Value) (Value, error) {
	return CallWith(b.Func, append([]Value{b.Self}, args...), kwargs)
}

func (b *BoundMethod) String() string {
	return fmt.Sprintf("<bound method %s of %s>", Repr(b.Func), Repr(b.Self))
}

// Property is a computed attribute. Absent accessors are nil.
type Property struct {
	Get Value
	Set Value
	Del Value
}

func (p *Property) String() string {
	return "<property>"
}

// Partial is a callable pre-bound to leading arguments and keywords. A
// Method partial expects the receiver as its first call argument and is
// bound to instances on attribute access.
type Partial struct {
	Func     Value
	Args     []Value
	Keywords map[string]Value
	Method   bool
}

// CallWith appends args to the bound arguments; call-time keywords win.
func (p *Partial) CallWith(args []Value, kwargs map[string]Value) (Value, error) {
	kw := maps.Clone(p.Keywords)
	if kw == nil {
		kw = make(map[string]Value, len(kwargs))
	}

	maps.Copy(kw, kwargs)

	full := make([]Value, 0, len(p.Args)+len(args))

	if p.Method {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: partialmethod called without a receiver", ErrArity)
		}

		full = append(full, args[0])
		args = args[1:]
	}

	full = append(full, p.Args...)
	full = append(full, args...)

	return CallWith(p.Func, full, kw)
}

func (p *Partial) String() string {
	if p.Method {
		return fmt.Sprintf("partialmethod(%s)", Repr(p.Func))
	}

	return fmt.Sprintf("partial(%s)", Repr(p.Func))
}
