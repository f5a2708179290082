/*
File    : vivjson/environment/environment.go

Package environment implements VivJson's lexically nested scope chain
(spec 4.4): every function call, and every if/while/for/do body, opens a
fresh child scope whose parent is the enclosing scope at definition time.
Grounded on the teacher's scope.Scope{Variables, Parent} shape, trimmed of
its const/let type-tracking (VivJson has no variable-declaration keywords
to track) and extended with the root distinction and public-name
enumeration spec 4.4's "." trick needs.
*/
package environment

import "github.com/vivjson/vivjson/value"

// Environment is one scope frame: a set of name-to-value bindings plus a
// link to the enclosing scope. Bindings keep insertion order so the scope
// can be read back as a Block (spec 3.3: Block key order is insertion
// order) via AsBlock.
type Environment struct {
	vars   map[string]value.Value
	order  []string
	parent *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// NewChild opens a scope nested inside e. Implements value.Scope so a
// CallableValue's Closure field can hold an *Environment without this
// package needing to import value.CallableValue (it already imports
// value.Value, so there's no cycle — value never imports environment).
func (e *Environment) NewChild() value.Scope {
	return e.Child()
}

// Child is the typed equivalent of NewChild, used internally where the
// concrete type is needed rather than the value.Scope interface.
func (e *Environment) Child() *Environment {
	return &Environment{vars: make(map[string]value.Value), parent: e}
}

// IsRoot reports whether e has no parent.
func (e *Environment) IsRoot() bool {
	return e.parent == nil
}

// Root walks up the parent chain and returns the outermost environment.
func (e *Environment) Root() *Environment {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Lookup searches e and its ancestors for name, returning the bound value
// and whether it was found.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in e itself, shadowing any outer binding of the same
// name. Used for function parameters and for-loop induction variables,
// which always start a fresh binding in the new scope.
func (e *Environment) Define(name string, v value.Value) {
	if _, ok := e.vars[name]; !ok {
		e.order = append(e.order, name)
	}
	e.vars[name] = v
}

// Assign updates name in the innermost scope that already owns it,
// walking up the parent chain; if no scope owns it, it is defined in e
// (spec 4.4: "writes inside the body resolve by walking up the parent
// chain if the name exists, otherwise they create a binding in the
// innermost scope"). Returns the scope the binding ended up in.
func (e *Environment) Assign(name string, v value.Value) *Environment {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = v
			return cur
		}
	}
	e.Define(name, v)
	return e
}

// Owner returns the innermost environment in the chain that has a binding
// for name, or nil if none does. Used by `remove` (spec 9's open question
// (c): remove targets the innermost binding).
func (e *Environment) Owner(name string) *Environment {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			return cur
		}
	}
	return nil
}

// Delete removes name from e's own bindings (not the chain). Returns
// whether it was present.
func (e *Environment) Delete(name string) bool {
	if _, ok := e.vars[name]; !ok {
		return false
	}
	delete(e.vars, name)
	for i, k := range e.order {
		if k == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true
}

// Names returns every name bound directly in e, in insertion order.
func (e *Environment) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// AsBlock renders e's own bindings (not ancestors) as a Block, in
// insertion order, used both for a function's implicit return value
// (spec 4.6) and for reading the current scope through the "." token
// (spec 4.4). Private names (single leading underscore) are included;
// PublicKeys on the result excludes them for callers that need the "."
// trick's filtered view.
func (e *Environment) AsBlock() *value.BlockValue {
	b := value.NewBlock()
	for _, k := range e.order {
		b.Set(k, e.vars[k])
	}
	return b
}
