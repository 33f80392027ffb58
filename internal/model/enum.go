package model

import "fmt"

// EnumMember is a named constant of an enum class. Members compare by
// identity only, so a re-executed enum yields members that are equal in
// content but distinct from the ones the host already holds.
type EnumMember struct {
	Enum  *Class
	Name  string
	Value Value
}

func (e *EnumMember) String() string {
	return fmt.Sprintf("%s.%s", e.Enum.Name(), e.Name)
}

// GetAttr exposes the member's name and value.
func (e *EnumMember) GetAttr(name string) (Value, error) {
	switch name {
	case "name":
		return e.Name, nil
	case "value":
		return e.Value, nil
	}

	return nil, &AttributeError{Owner: e.Enum.Name() + " member", Name: name}
}

// NewEnum builds an enum class with one member attribute per binding.
// Member attributes are sealed.
func NewEnum(def ClassDef, members []Binding) *Class {
	cls := NewClass(def)
	cls.enum = true

	for _, b := range members {
		cls.attrs.Set(b.Name, &EnumMember{Enum: cls, Name: b.Name, Value: b.Value})
		cls.sealed[b.Name] = true
	}

	return cls
}

// Members lists the enum's members in definition order.
func (c *Class) Members() []*EnumMember {
	var out []*EnumMember

	for _, k := range c.OwnKeys() {
		if v, ok := c.Own(k); ok {
			if m, isMember := v.(*EnumMember); isMember {
				out = append(out, m)
			}
		}
	}

	return out
}

// IsIdentitySensitive reports values whose meaning depends on reference
// identity. Such values are never injected into a host scope as new names.
func IsIdentitySensitive(v Value) bool {
	_, ok := v.(*EnumMember)
	return ok
}
