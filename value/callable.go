/*
File    : vivjson/value/callable.go

Callable covers user-defined functions, anonymous function literals, and
built-ins (spec 3.1, 4.6). Body and Closure are held as opaque interfaces so
this package never imports the parser or environment packages — both of
which import value — avoiding an import cycle.
*/
package value

import "fmt"

// ParamModifier tags how a parameter receives its argument.
type ParamModifier int

const (
	// ParamByValue is the default: the argument is deep-cloned into the
	// parameter binding.
	ParamByValue ParamModifier = iota
	// ParamByReference shares the caller's binding; mutations through the
	// parameter are visible to the caller after the call returns.
	ParamByReference
	// ParamFunction requires the argument to be a Callable.
	ParamFunction
)

func (m ParamModifier) String() string {
	switch m {
	case ParamByReference:
		return "reference"
	case ParamFunction:
		return "function"
	default:
		return "value"
	}
}

// Param is one formal parameter of a user-defined function.
type Param struct {
	Name     string
	Modifier ParamModifier
}

// Scope is the minimal capability a closure needs from its captured
// environment: the ability to open a child scope when the function is
// called. environment.Environment implements this interface structurally.
type Scope interface {
	NewChild() Scope
}

// Builtin is the Go-native implementation of a standard-library callable.
// Arguments arrive already evaluated.
type Builtin func(args []Value) (Value, error)

// CallableValue is a user function, an anonymous function, or a built-in.
// Exactly one of Body (with Closure) or Builtin is set.
type CallableValue struct {
	Name    string
	Params  []Param
	Body    interface{} // *parser.BlockStmtNode, type-asserted by eval
	Closure Scope
	Builtin Builtin
}

// NewBuiltin wraps a Go function as a callable with the given name, used
// for the standard library's registration into the root scope.
func NewBuiltin(name string, fn Builtin) *CallableValue {
	return &CallableValue{Name: name, Builtin: fn}
}

func (c *CallableValue) Type() Tag    { return TagCallable }
func (c *CallableValue) Truthy() bool { return true }

func (c *CallableValue) String() string {
	name := c.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function %s>", name)
}

// Clone returns the receiver itself. Callables are shared by reference even
// under value semantics — copying a function value copies the handle, not
// its closure.
func (c *CallableValue) Clone() Value { return c }

func (c *CallableValue) Equal(other Value) bool {
	o, ok := other.(*CallableValue)
	return ok && o == c
}

// IsBuiltin reports whether this callable wraps a Go function rather than
// a user-defined body.
func (c *CallableValue) IsBuiltin() bool { return c.Builtin != nil }
