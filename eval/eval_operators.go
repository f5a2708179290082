/*
File    : vivjson/eval/eval_operators.go

The binary and unary operator tables (spec 4.5): each operator is a total
function Value x Value -> Value|Error, dispatched by a type switch per spec
9's "keep the table explicit and data-driven" design note rather than a
shared arithmetic-promotion helper, since the rules genuinely differ per
operator (Block+Null is a no-op but Block%anything has no such case).
Grounded on the teacher's evalInfixExpression type-switch shape
(eval/evaluator_expressions.go), generalized from the teacher's int/float-
only table to the full Null/Bool/Array/Block matrix spec 4.5 specifies.
*/
package eval

import (
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func (e *Evaluator) evalUnaryNode(node *parser.UnaryNode, env *environment.Environment) (value.Value, error) {
	v, err := e.Eval(node.Operand, env)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case lexer.NOT:
		return value.NewBool(!v.Truthy()), nil
	case lexer.MINUS:
		switch n := v.(type) {
		case *value.IntValue:
			return value.NewInt(-n.Val), nil
		case *value.FloatValue:
			return value.NewFloat(-n.Val), nil
		default:
			return nil, e.errorf(node, "unary '-' requires a numeric operand, got %s", value.TypeName(v))
		}
	case lexer.PLUS:
		switch v.(type) {
		case *value.IntValue, *value.FloatValue:
			return v, nil
		default:
			return nil, e.errorf(node, "unary '+' requires a numeric operand, got %s", value.TypeName(v))
		}
	default:
		return nil, e.errorf(node, "unsupported unary operator %q", node.Op)
	}
}

func (e *Evaluator) evalBinaryNode(node *parser.BinaryNode, env *environment.Environment) (value.Value, error) {
	if node.Op == lexer.AND || node.Op == lexer.OR {
		return e.evalShortCircuit(node, env)
	}

	left, err := e.Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right, env)
	if err != nil {
		return nil, err
	}
	return e.evalBinary(node, node.Op, left, right)
}

func (e *Evaluator) evalShortCircuit(node *parser.BinaryNode, env *environment.Environment) (value.Value, error) {
	left, err := e.Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	if node.Op == lexer.OR && left.Truthy() {
		return value.NewBool(true), nil
	}
	if node.Op == lexer.AND && !left.Truthy() {
		return value.NewBool(false), nil
	}
	right, err := e.Eval(node.Right, env)
	if err != nil {
		return nil, err
	}
	return value.NewBool(right.Truthy()), nil
}

func (e *Evaluator) evalBinary(node parser.Node, op lexer.TokenType, left, right value.Value) (value.Value, error) {
	switch op {
	case lexer.PLUS:
		return e.evalAdd(node, left, right)
	case lexer.MINUS:
		return e.evalSub(node, left, right)
	case lexer.STAR:
		return e.evalMul(node, left, right)
	case lexer.SLASH:
		return e.evalDiv(node, left, right)
	case lexer.PERCENT:
		return e.evalMod(node, left, right)
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return e.evalCompare(node, op, left, right)
	case lexer.EQ:
		return value.NewBool(e.valuesEqual(left, right)), nil
	case lexer.NE:
		return value.NewBool(!e.valuesEqual(left, right)), nil
	case lexer.IN:
		return e.evalIn(node, left, right)
	default:
		return nil, e.errorf(node, "unsupported binary operator %q", op)
	}
}

// valuesEqual implements spec 4.5.6: deep structural equality for same-
// tagged operands, truthiness equivalence otherwise.
func (e *Evaluator) valuesEqual(left, right value.Value) bool {
	if left.Type() == right.Type() {
		return left.Equal(right)
	}
	return left.Truthy() == right.Truthy()
}

func isNumeric(v value.Value) bool {
	switch v.(type) {
	case *value.IntValue, *value.FloatValue:
		return true
	default:
		return false
	}
}

func asFloat(v value.Value) float64 {
	switch n := v.(type) {
	case *value.IntValue:
		return float64(n.Val)
	case *value.FloatValue:
		return n.Val
	default:
		return 0
	}
}

func isNull(v value.Value) bool {
	_, ok := v.(*value.NullValue)
	return ok
}

func cloneElems(in []value.Value) []value.Value {
	out := make([]value.Value, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
