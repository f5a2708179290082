/*
File    : vivjson/eval/evaluator.go

Package eval walks the parser's Node tree (spec 4.3-4.8): the tree-walking
heart of VivJson. Grounded on the teacher's Evaluator{Par,Scp,Builtins,Writer}
shape (eval/evaluator.go), generalized from the teacher's single-return
GoMixObject dispatch into Go's (value, error) convention already used by
this rewrite's environment and parser packages. Control-flow propagation
(break/continue/return) is adapted from the teacher's ReturnValue/Break/
Continue sentinel objects (eval/eval_controls.go, eval/eval_loops.go) into a
small unexported signal type carried through the error channel instead of
through the value channel, so ordinary evaluation errors and control-flow
signals both short-circuit the same way without a third return value.
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/vivjson/vivjson/config"
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
	"github.com/vivjson/vivjson/verror"
)

// Evaluator holds the state shared across one run: configured ceilings, the
// host's output sink, and the current recursion depth (spec 5's depth
// ceiling is a property of the call stack, tracked here rather than per
// Environment since every nested scope shares one logical call stack).
type Evaluator struct {
	Cfg    *config.Config
	Stdout io.Writer
	Stderr io.Writer

	depth int
}

// New returns an Evaluator configured with cfg (or config.Default() if nil)
// and stdout wired to os.Stdout.
func New(cfg *config.Config) *Evaluator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Evaluator{Cfg: cfg, Stdout: os.Stdout, Stderr: os.Stderr}
}

// flowKind tags which non-local control-flow signal a sentinel error
// carries.
type flowKind int

const (
	flowBreak flowKind = iota
	flowContinue
	flowReturn
)

// flowSignal is returned through the error channel by break/continue/return
// statements. It is never a user-visible error; every loop, do-block, and
// function-call site that can terminate a signal intercepts it with
// asFlow before it would otherwise propagate as a failure.
type flowSignal struct {
	kind  flowKind
	value value.Value
}

func (f *flowSignal) Error() string {
	return fmt.Sprintf("unhandled control-flow signal (kind=%d)", f.kind)
}

// asFlow reports whether err is a flowSignal of kind want, returning it if
// so.
func asFlow(err error, want flowKind) (*flowSignal, bool) {
	sig, ok := err.(*flowSignal)
	if !ok || sig.kind != want {
		return nil, false
	}
	return sig, true
}

// enterCall increments the recursion depth, returning an error if the
// configured ceiling (spec 5, default 200) would be exceeded. The caller
// must invoke the returned leave func (typically via defer) on every path.
func (e *Evaluator) enterCall(n parser.Node) (func(), error) {
	e.depth++
	if e.depth > e.Cfg.MaxDepth {
		e.depth--
		return func() {}, e.errorf(n, "maximum recursion depth (%d) exceeded", e.Cfg.MaxDepth)
	}
	return func() { e.depth-- }, nil
}

// errorf builds an Evaluator-stage verror.Error positioned at n.
func (e *Evaluator) errorf(n parser.Node, format string, a ...interface{}) *verror.Error {
	line, col := 0, 0
	if n != nil {
		line, col = n.Pos()
	}
	return verror.New(verror.Evaluate, line, col, format, a...)
}

// Eval dispatches on the concrete Node type and evaluates it in env,
// returning either its result value or an error. A *flowSignal is returned
// through err for break/continue/return; callers that cannot handle a given
// signal kind simply propagate it further up the call stack.
func (e *Evaluator) Eval(n parser.Node, env *environment.Environment) (value.Value, error) {
	switch node := n.(type) {
	case *parser.LiteralNode:
		return node.Val, nil
	case *parser.IdentifierNode:
		return e.evalIdentifier(node, env)
	case *parser.ArrayLitNode:
		return e.evalArrayLit(node, env)
	case *parser.BlockLitNode:
		return e.evalBlockLit(node, env)
	case *parser.BinaryNode:
		return e.evalBinaryNode(node, env)
	case *parser.UnaryNode:
		return e.evalUnaryNode(node, env)
	case *parser.GetNode:
		return e.evalGet(node, env)
	case *parser.AssignNode:
		return e.evalAssign(node, env)
	case *parser.YieldNode:
		return nil, e.errorf(node, "':=' yield is only valid as a direct block statement")
	case *parser.CallNode:
		return e.evalCall(node, env)
	case *parser.FuncDefNode:
		return e.evalFuncDef(node, env)
	case *parser.BlockStmtNode:
		return e.evalBlockStmt(node, env)
	case *parser.IfNode:
		return e.evalIf(node, env)
	case *parser.WhileNode:
		return e.evalWhile(node, env)
	case *parser.ForNode:
		return e.evalFor(node, env)
	case *parser.DoNode:
		return e.evalDo(node, env)
	case *parser.BreakNode:
		return nil, &flowSignal{kind: flowBreak}
	case *parser.ContinueNode:
		return nil, &flowSignal{kind: flowContinue}
	case *parser.ReturnNode:
		return e.evalReturn(node, env)
	case *parser.RemoveNode:
		return e.evalRemove(node, env)
	case *parser.InjectionNode:
		env.Define(node.Name, node.Val)
		return node.Val, nil
	case *parser.ValueNode:
		return node.Val, nil
	case *parser.BlankNode:
		return value.Null, nil
	case *parser.CurrentScopeNode:
		return publicBlock(env), nil
	default:
		return nil, e.errorf(n, "unsupported node type %T", n)
	}
}

// publicBlock renders env's own bindings, filtered to public names, as a
// Block (spec 4.4's "." trick).
func publicBlock(env *environment.Environment) *value.BlockValue {
	full := env.AsBlock()
	out := value.NewBlock()
	for _, k := range full.PublicKeys() {
		v, _ := full.Get(k)
		out.Set(k, v)
	}
	return out
}

func (e *Evaluator) evalIdentifier(node *parser.IdentifierNode, env *environment.Environment) (value.Value, error) {
	v, ok := env.Lookup(node.Name)
	if !ok {
		return nil, e.errorf(node, "identifier not found: %s", node.Name)
	}
	return v, nil
}
