package interp

import "github.com/loxscript/glox/lang/types"

// Class is a Lox class value: a name and a table of methods, shared by
// every instance constructed from it. Lox has no class-level (static)
// fields or inheritance, so this is deliberately just a method table.
type Class struct {
	name    string
	methods map[string]*Function
}

var _ Callable = (*Class)(nil)

func newClass(name string, methods map[string]*Function) *Class {
	return &Class{name: name, methods: methods}
}

func (c *Class) String() string { return c.name }
func (c *Class) Type() string   { return "class" }
func (c *Class) Truth() bool    { return true }

// FindMethod returns the method named name, or nil if the class has none by
// that name.
func (c *Class) FindMethod(name string) *Function {
	return c.methods[name]
}

// Arity is the arity of "init", or 0 for a class with no initializer.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance of c and, if c declares an "init" method,
// runs it against the new instance with args.
func (c *Class) Call(in *Interpreter, args []types.Value) (types.Value, error) {
	instance := newInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
