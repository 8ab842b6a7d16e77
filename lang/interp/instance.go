package interp

import (
	"github.com/dolthub/swiss"

	"github.com/loxscript/glox/lang/types"
)

// Instance is a runtime object constructed from a Class: a back-pointer to
// its class plus its own field table. Fields are resolved dynamically (not
// by the resolver, which only tracks local variables), so a swiss.Map keyed
// by field name is a close match for the class's own method table.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, types.Value]
}

var (
	_ types.Value       = (*Instance)(nil)
	_ types.HasAttrs    = (*Instance)(nil)
	_ types.HasSetField = (*Instance)(nil)
)

func newInstance(class *Class) *Instance {
	return &Instance{class: class, fields: swiss.NewMap[string, types.Value](uint32(4))}
}

func (i *Instance) String() string { return i.class.name + " instance" }
func (i *Instance) Type() string   { return i.class.name }
func (i *Instance) Truth() bool    { return true }

// Attr looks up a field first, then a method bound to this instance. A
// (nil, nil) return means no such property, which the interpreter turns
// into a RuntimeError carrying the accessing expression's position.
func (i *Instance) Attr(name string) (types.Value, error) {
	if v, ok := i.fields.Get(name); ok {
		return v, nil
	}
	if method := i.class.FindMethod(name); method != nil {
		return method.Bind(i), nil
	}
	return nil, nil
}

func (i *Instance) SetField(name string, val types.Value) error {
	i.fields.Put(name, val)
	return nil
}
