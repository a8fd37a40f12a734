package matcha

import "fmt"

// Environment is one lexical scope: a mapping from name to Value plus a link
// to the enclosing scope. A root environment is created once per session; a
// child is created on entering a block, an if branch, or each while
// iteration, and is dropped when that construct completes. The parent chain
// is acyclic and its depth is bounded by the static nesting of the program.
type Environment struct {
	parent *Environment
	values map[string]Value
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewChildEnvironment creates a scope nested inside parent.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: make(map[string]Value)}
}

// Declare binds name in this exact scope. Redeclaring a name already bound
// here is an error; shadowing an outer binding is not.
func (e *Environment) Declare(name string, v Value) error {
	if _, ok := e.values[name]; ok {
		return fmt.Errorf("variable %q already declared in this scope", name)
	}
	e.values[name] = v
	return nil
}

// Assign overwrites the nearest existing binding of name, searching outward
// through the parent chain. It never creates a new binding.
func (e *Environment) Assign(name string, v Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, v)
	}
	return fmt.Errorf("variable not found: %q", name)
}

// Get retrieves the nearest visible binding of name.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, fmt.Errorf("variable not found: %q", name)
}

// Has reports whether name resolves anywhere in the chain.
func (e *Environment) Has(name string) bool {
	if _, ok := e.values[name]; ok {
		return true
	}
	if e.parent != nil {
		return e.parent.Has(name)
	}
	return false
}
