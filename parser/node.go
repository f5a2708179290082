/*
File    : vivjson/parser/node.go

AST node shapes for every statement case spec 3.2 lists. Node is the single
interface every case implements; VivJson does not separate a Stmt/Expr
hierarchy the way many languages do because almost anything (an `if` chain,
a block literal, a function call) can appear where an expression is
expected. Grounded on the teacher's node.go StatementNode/ExpressionNode
split, collapsed into one interface since VivJson's grammar doesn't need
the distinction.
*/
package parser

import (
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/value"
)

// Node is any parsed AST node. Pos reports its source position for
// diagnostics (spec 3.3: "every statement has a (line, column) span").
type Node interface {
	Pos() (line, col int)
}

type pos struct {
	Line, Col int
}

func (p pos) Pos() (int, int) { return p.Line, p.Col }

// LiteralNode holds a constant Null/Bool/Int/Float/String value baked in
// at parse time.
type LiteralNode struct {
	pos
	Val value.Value
}

// IdentifierNode is a bare name reference.
type IdentifierNode struct {
	pos
	Name string
}

// ArrayLitNode is an ordered list of element expressions.
type ArrayLitNode struct {
	pos
	Elems []Node
}

// BlockEntry is one key/value pair of a Block literal. Keys are always
// static: an identifier, a number token, or a string literal, per spec 3.2.
type BlockEntry struct {
	Key   string
	Value Node
}

// BlockLitNode is an ordered list of key/value pairs.
type BlockLitNode struct {
	pos
	Entries []BlockEntry
}

// BinaryNode is a two-operand operator application.
type BinaryNode struct {
	pos
	Left  Node
	Op    lexer.TokenType
	Right Node
}

// UnaryNode is `+`, `-`, or `not` applied to one operand.
type UnaryNode struct {
	pos
	Op      lexer.TokenType
	Operand Node
}

// GetNode reads through a chain of segments starting at Base. Each segment
// is itself a Node that evaluates to the String or Int key/index to read;
// an identifier segment (`.name`), a literal-integer segment (`.0`, `.-1`),
// and a string-literal segment are all syntactic sugar collapsed into a
// LiteralNode at parse time, so the evaluator only ever needs to evaluate
// a segment, never inspect its syntax (spec 4.8).
type GetNode struct {
	pos
	Base     Node
	Segments []Node
}

// AssignNode is `target op value`. Target is an IdentifierNode or a
// GetNode rooted at one (spec 4.2's lvalue production); Op is one of
// `=`, `+=`, `-=`, `*=`, `/=`, `%=`.
type AssignNode struct {
	pos
	Target Node
	Op     lexer.TokenType
	Value  Node
}

// YieldNode is the `:= expr` statement that sets a Block's yield value
// (spec 4.3).
type YieldNode struct {
	pos
	Value Node
}

// CallNode applies Callee to Args, evaluated left to right.
type CallNode struct {
	pos
	Callee Node
	Args   []Node
}

// Param is one formal parameter of a function definition.
type Param struct {
	Name     string
	Modifier value.ParamModifier
}

// FuncDefNode defines a function, named or anonymous (spec 4.6).
type FuncDefNode struct {
	pos
	Name   string // "" for an anonymous function literal
	Params []Param
	Body   *BlockStmtNode
}

// BlockStmtNode is an ordered sequence of statements, used for function
// bodies and every control-flow body.
type BlockStmtNode struct {
	pos
	Stmts []Node
}

// IfBranch is one `if`/`elseif` condition-body pair.
type IfBranch struct {
	Cond Node
	Body *BlockStmtNode
}

// IfNode is the full if/elseif/else chain. Branches[0] is the leading
// `if`; any further entries are `elseif`s. Else is nil when absent.
type IfNode struct {
	pos
	Branches []IfBranch
	Else     *BlockStmtNode
}

// WhileNode re-evaluates Cond before every iteration of Body.
type WhileNode struct {
	pos
	Cond Node
	Body *BlockStmtNode
}

// ForNode covers both for-loop shapes spec 4.3 names. IsForIn selects
// between them; the C-style fields are nil when unused and vice versa.
type ForNode struct {
	pos
	IsForIn bool

	// C-style: for (Init; Cond; Step) { Body }
	Init Node
	Cond Node
	Step Node

	// for-in: for (IterVar in Iterable) { Body }
	IterVar  string
	Iterable Node

	Body *BlockStmtNode
}

// DoNode runs Body once; `continue` inside it starts Body again, and
// break/return leave it.
type DoNode struct {
	pos
	Body *BlockStmtNode
}

// BreakNode exits the nearest enclosing loop or do-block.
type BreakNode struct{ pos }

// ContinueNode restarts the nearest enclosing loop or do-block.
type ContinueNode struct{ pos }

// ReturnNode propagates a Return signal, optionally carrying Value.
type ReturnNode struct {
	pos
	Value    Node
	HasValue bool
}

// RemoveNode deletes the slot Target names: a variable, a Block key, or
// an Array index.
type RemoveNode struct {
	pos
	Target Node
}

// InjectionNode binds a host-provided value to Name before the script
// runs. Never produced by the parser itself; constructed by the host API
// layer (spec 3.2, 6.2).
type InjectionNode struct {
	pos
	Name string
	Val  value.Value
}

// ValueNode wraps a host value inserted directly by the API, standing in
// for a literal at a position the parser never visited.
type ValueNode struct {
	pos
	Val value.Value
}

// BlankNode is a no-op, produced for blank lines and comments that the
// parser chooses to keep as placeholders rather than discard silently.
type BlankNode struct{ pos }

// CurrentScopeNode is the bare `.` that may appear only as the iterable of
// a for-in loop (spec 4.3): it evaluates to the current scope's public
// key-value pairs as a Block.
type CurrentScopeNode struct{ pos }
