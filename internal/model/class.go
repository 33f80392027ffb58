package model

import (
	"fmt"
	"sync"
)

// ClassDef describes a composite type to construct.
type ClassDef struct {
	Name  string
	Home  string
	Bases []*Class
	Heap  *Heap // instances are registered here when set
}

// Class is a composite type. Its attribute table is an indirection cell:
// patching a class mutates the table in place and never replaces the
// *Class handle that instances and aliases hold.
type Class struct {
	mu     sync.RWMutex
	name   string
	home   string
	bases  []*Class
	attrs  *Namespace
	sealed map[string]bool
	heap   *Heap
	enum   bool
}

// NewClass returns an empty class.
func NewClass(def ClassDef) *Class {
	return &Class{
		name:   def.Name,
		home:   def.Home,
		bases:  append([]*Class(nil), def.Bases...),
		attrs:  NewNamespace(),
		sealed: make(map[string]bool),
		heap:   def.Heap,
	}
}

func (c *Class) Name() string { return c.name }
func (c *Class) Home() string { return c.home }
func (c *Class) Heap() *Heap  { return c.heap }

// IsEnum reports whether c was built by NewEnum.
func (c *Class) IsEnum() bool { return c.enum }

func (c *Class) Bases() []*Class {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]*Class(nil), c.bases...)
}

// Own returns an attribute defined directly on c.
func (c *Class) Own(name string) (Value, bool) {
	return c.attrs.Get(name)
}

// OwnKeys lists the attributes defined directly on c in definition order.
func (c *Class) OwnKeys() []string {
	return c.attrs.Keys()
}

// MRO returns c followed by its bases, depth first, each class once.
func (c *Class) MRO() []*Class {
	var (
		order []*Class
		seen  = make(map[*Class]bool)
		walk  func(*Class)
	)

	walk = func(k *Class) {
		if seen[k] {
			return
		}

		seen[k] = true
		order = append(order, k)

		for _, b := range k.Bases() {
			walk(b)
		}
	}
	walk(c)

	return order
}

// Lookup finds name on c or its bases.
func (c *Class) Lookup(name string) (Value, bool) {
	for _, k := range c.MRO() {
		if v, ok := k.Own(name); ok {
			return v, true
		}
	}

	return nil, false
}

// IsSubclassOf reports whether other appears in c's MRO.
func (c *Class) IsSubclassOf(other *Class) bool {
	for _, k := range c.MRO() {
		if k == other {
			return true
		}
	}

	return false
}

// Seal makes the named attributes read-only.
func (c *Class) Seal(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range names {
		c.sealed[n] = true
	}
}

// IsSealed reports whether name is read-only.
func (c *Class) IsSealed(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.sealed[name]
}

// SetAttr binds name on the class itself.
func (c *Class) SetAttr(name string, v Value) error {
	if c.IsSealed(name) {
		return fmt.Errorf("%w: attribute %q of class %s", ErrReadOnly, name, c.name)
	}

	c.attrs.Set(name, v)

	return nil
}

// DelAttr removes an attribute defined directly on c.
func (c *Class) DelAttr(name string) error {
	if c.IsSealed(name) {
		return fmt.Errorf("%w: attribute %q of class %s", ErrReadOnly, name, c.name)
	}

	if !c.attrs.Delete(name) {
		return &AttributeError{Owner: "class " + c.name, Name: name}
	}

	return nil
}

// GetAttr reads an attribute of the class object, searching bases.
func (c *Class) GetAttr(name string) (Value, error) {
	switch name {
	case "__name__":
		return c.name, nil
	case "__module__":
		return c.home, nil
	}

	v, ok := c.Lookup(name)
	if !ok {
		return nil, &AttributeError{Owner: "class " + c.name, Name: name}
	}

	return v, nil
}

// New constructs an instance and runs __init__ when one is defined.
func (c *Class) New(args ...Value) (*Instance, error) {
	return c.construct(args, nil)
}

// CallWith makes classes callable from the expression language.
func (c *Class) CallWith(args []Value, kwargs map[string]Value) (Value, error) {
	if c.enum {
		return nil, fmt.Errorf("%w: enum %s cannot be instantiated", ErrNotCallable, c.name)
	}

	return c.construct(args, kwargs)
}

func (c *Class) construct(args []Value, kwargs map[string]Value) (*Instance, error) {
	inst := NewInstance(c)
	if c.heap != nil {
		c.heap.register(inst)
	}

	init, ok := c.Lookup("__init__")
	if !ok {
		if len(args) > 0 || len(kwargs) > 0 {
			return nil, fmt.Errorf("%w: %s() takes no arguments", ErrArity, c.name)
		}

		return inst, nil
	}

	if _, err := CallWith(init, append([]Value{inst}, args...), kwargs); err != nil {
		return nil, fmt.Errorf("%s.__init__: %w", c.name, err)
	}

	return inst, nil
}

func (c *Class) String() string {
	if c.home == "" {
		return fmt.Sprintf("<class %s>", c.name)
	}

	return fmt.Sprintf("<class %s.%s>", c.home, c.name)
}
