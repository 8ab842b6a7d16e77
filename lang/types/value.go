// Package types defines the runtime value model shared by every Lox value:
// numbers, strings, booleans, nil, and the optional capabilities (property
// access, in particular) that some of them support. It deliberately knows
// nothing about how values are produced or combined — that belongs to the
// interpreter, which type-switches over these concrete types rather than
// double-dispatching through a visitor.
package types

// Value is the interface implemented by every value a Lox program can
// produce or manipulate.
type Value interface {
	// String returns the value's representation as printed by the "print"
	// statement or the REPL.
	String() string

	// Type returns a short name for the value's type (an instance reports
	// its class name). The interpreter's runtime error messages do not
	// include it.
	Type() string

	// Truth reports whether the value is "truthy": everything is truthy
	// except nil and the boolean false.
	Truth() bool
}

// HasAttrs is implemented by values whose properties can be read with a dot
// expression (obj.field). Only class instances implement it; accessing a
// property on any other value is a runtime error.
type HasAttrs interface {
	Value
	// Attr returns the field or method named name. A return of (nil, nil)
	// means no such property exists.
	Attr(name string) (Value, error)
}

// HasSetField is implemented by values whose properties can be assigned with
// a dot expression (obj.field = value).
type HasSetField interface {
	HasAttrs
	SetField(name string, val Value) error
}
