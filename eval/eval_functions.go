/*
File    : vivjson/eval/eval_functions.go

Function definition and invocation (spec 4.6). Grounded on the teacher's
evalCallExpression closure-scope handling (eval/eval_controls.go): a call
opens a child of the function's *closure* scope (captured at definition
time), not of the call site's scope, which is what makes the enclosure
scenario (spec 8.2 #3) return independent counters per call.

Reference parameters (spec 4.6, 9's "mutating captured variables... other
than via the explicit reference parameter modifier") are implemented by
binding the callee's parameter directly to the caller's container pointer
(no Clone), so member writes through the parameter are immediately visible
to the caller, plus a write-back of the parameter's final value to the
caller-side lvalue after the call returns, so whole-parameter reassignment
inside the callee is visible too.
*/
package eval

import (
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func (e *Evaluator) evalFuncDef(node *parser.FuncDefNode, env *environment.Environment) (value.Value, error) {
	params := make([]value.Param, len(node.Params))
	for i, p := range node.Params {
		params[i] = value.Param{Name: p.Name, Modifier: p.Modifier}
	}
	fn := &value.CallableValue{Name: node.Name, Params: params, Body: node.Body, Closure: env}
	if node.Name != "" {
		env.Define(node.Name, fn)
	}
	return fn, nil
}

func (e *Evaluator) evalCall(node *parser.CallNode, env *environment.Environment) (value.Value, error) {
	calleeVal, err := e.Eval(node.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*value.CallableValue)
	if !ok {
		return nil, e.errorf(node, "cannot call a value of type %s", value.TypeName(calleeVal))
	}

	argVals := make([]value.Value, len(node.Args))
	for i, a := range node.Args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		argVals[i] = v
	}

	result, callEnv, err := e.invoke(fn, argVals, node)
	if err != nil {
		return nil, err
	}

	if callEnv != nil {
		for i, param := range fn.Params {
			if param.Modifier != value.ParamByReference || i >= len(node.Args) {
				continue
			}
			switch node.Args[i].(type) {
			case *parser.IdentifierNode, *parser.GetNode:
				finalVal, _ := callEnv.Lookup(param.Name)
				if err := e.assignTo(node.Args[i], finalVal, env); err != nil {
					return nil, err
				}
			}
		}
	}

	return result, nil
}

// CallValue invokes fn (user-defined or built-in) with already-evaluated
// args, the entry point the host-facing API uses to call a callable value
// it obtained from a scope without an AST call site of its own. Reference
// parameters still share the caller's argument pointer (so in-place
// container mutation is visible to the caller), but there is no lvalue to
// write the final value back to, since there is no call-site expression.
func (e *Evaluator) CallValue(fn *value.CallableValue, args []value.Value) (value.Value, error) {
	result, _, err := e.invoke(fn, args, nil)
	return result, err
}

// invoke runs fn against argVals, returning the call's result and (for a
// non-builtin call) the call scope the caller may still need for
// reference-parameter write-back. errCtx positions any error raised; it
// may be nil when there is no AST call site (CallValue).
func (e *Evaluator) invoke(fn *value.CallableValue, argVals []value.Value, errCtx parser.Node) (value.Value, *environment.Environment, error) {
	if fn.IsBuiltin() {
		v, err := fn.Builtin(argVals)
		if err != nil {
			return nil, nil, e.errorf(errCtx, "%s", err.Error())
		}
		return v, nil, nil
	}

	leave, err := e.enterCall(errCtx)
	if err != nil {
		return nil, nil, err
	}
	defer leave()

	callEnv := environment.New()
	if fn.Closure != nil {
		if boxed, ok := fn.Closure.NewChild().(*environment.Environment); ok {
			callEnv = boxed
		}
	}

	variadic := make([]value.Value, len(argVals))
	for i, v := range argVals {
		variadic[i] = v.Clone()
	}
	callEnv.Define("_", value.NewArray(variadic...))

	for i, param := range fn.Params {
		var argVal value.Value = value.Null
		hasArg := i < len(argVals)
		if hasArg {
			argVal = argVals[i]
		}
		switch param.Modifier {
		case value.ParamByReference:
			callEnv.Define(param.Name, argVal)
		case value.ParamFunction:
			if hasArg {
				if _, ok := argVal.(*value.CallableValue); !ok {
					return nil, nil, e.errorf(errCtx, "parameter %q requires a function argument", param.Name)
				}
			}
			callEnv.Define(param.Name, argVal)
		default:
			callEnv.Define(param.Name, argVal.Clone())
		}
	}

	body, ok := fn.Body.(*parser.BlockStmtNode)
	if !ok {
		return nil, nil, e.errorf(errCtx, "internal error: function body is not a block")
	}

	result, err := e.evalBlockStmt(body, callEnv)
	if sig, ok := asFlow(err, flowReturn); ok {
		result, err = sig.value, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return result, callEnv, nil
}
