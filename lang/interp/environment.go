package interp

import (
	"fmt"

	"github.com/dolthub/swiss"

	"github.com/loxscript/glox/lang/types"
)

// Environment is a chained variable scope: a hash table of names to values
// with a link to the enclosing scope. The global scope is the Environment
// with a nil parent.
type Environment struct {
	vars   *swiss.Map[string, types.Value]
	parent *Environment
}

// NewEnvironment returns a fresh scope enclosed by parent. parent is nil for
// the global scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{vars: swiss.NewMap[string, types.Value](uint32(8)), parent: parent}
}

// Define binds name to val in this scope, shadowing any binding of the same
// name in an enclosing scope. Re-declaring a name already defined in this
// same scope is allowed, matching the resolver, which only rejects that at
// the block level when it can prove it statically.
func (e *Environment) Define(name string, val types.Value) {
	e.vars.Put(name, val)
}

// Get looks up name starting in this scope and walking out through parents.
func (e *Environment) Get(name string) (types.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// GetAt looks up name exactly distance scopes out from this one, per the
// resolver's static analysis. It panics if distance is wrong, since that
// would mean the resolver and interpreter have disagreed about scoping.
func (e *Environment) GetAt(distance int, name string) types.Value {
	env := e.ancestor(distance)
	v, ok := env.vars.Get(name)
	if !ok {
		panic(fmt.Sprintf("interp: resolved variable %q not found at distance %d", name, distance))
	}
	return v
}

// Assign rebinds the nearest existing binding of name, walking out through
// parents. It reports false if name is not defined anywhere in the chain.
func (e *Environment) Assign(name string, val types.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars.Get(name); ok {
			env.vars.Put(name, val)
			return true
		}
	}
	return false
}

// AssignAt rebinds name exactly distance scopes out, per the resolver.
func (e *Environment) AssignAt(distance int, name string, val types.Value) {
	e.ancestor(distance).vars.Put(name, val)
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}
