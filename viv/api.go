/*
File    : vivjson/viv/api.go

Package viv is VivJson's host-facing façade (spec 6.2): the Run API a Go
program embeds VivJson through. Grounded on the teacher's main.go/repl.go
pattern of "build a Parser, check HasErrors, build an Evaluator, Eval" —
generalized here into a reusable entry point instead of one inlined per
call site, and extended with the multi-source / `_` implicit-variable
machinery spec 6.2 and the GLOSSARY describe, which the teacher's
single-script CLI never needed.
*/
package viv

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vivjson/vivjson/config"
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/eval"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/stdlib"
	"github.com/vivjson/vivjson/value"
	"github.com/vivjson/vivjson/verror"
)

// concatMarker is the literal source argument that glues its two string
// neighbors together before parsing (spec 6.2's "+" convenience).
const concatMarker = "+"

// Parsed is a source or set of sources already reduced to a single
// program, ready to evaluate one or more times without re-parsing.
type Parsed struct {
	cfg  *config.Config
	prog *parser.BlockStmtNode
}

// Instance is a host-held, long-lived VivJson program: it keeps the
// top-level scope alive across calls so a host can run a setup script
// once, then repeatedly reach into it (spec 6.2's makeInstance /
// runOnInstance pair).
type Instance struct {
	env    *environment.Environment
	parsed *Parsed
	stdout io.Writer
}

// Parse reduces sources to a single Parsed program. Every source must be
// a string or the literal concatenation marker "+"; host variable maps are
// only meaningful at Run/MakeInstance time, where there is a scope to
// populate.
func Parse(cfg *config.Config, sources ...interface{}) (*Parsed, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	prog := &parser.BlockStmtNode{}
	texts, err := resolveTextSegments(sources)
	if err != nil {
		return nil, err
	}
	for _, text := range texts {
		seg, perr := parseSegment(text, cfg)
		if perr != nil {
			return nil, perr
		}
		prog.Stmts = append(prog.Stmts, seg.Stmts...)
	}
	return &Parsed{cfg: cfg, prog: prog}, nil
}

// newProgramScope builds the root/user scope pair every entry point runs a
// program in: built-ins live in a root environment, and the program itself
// runs in a Child() of it. This keeps `.` (spec 4.4's current-scope token)
// and a function's/program's implicit Block result (both built on
// Environment.AsBlock, which only ever renders a scope's own bindings)
// limited to the user's own names — a root scope's built-ins never stand a
// chance of shadowing, nor show up in, either one.
func newProgramScope(cfg *config.Config, stdout io.Writer) *environment.Environment {
	root := environment.New()
	stdlib.Register(root, stdout, cfg)
	return root.Child()
}

// Run parses and evaluates sources in order against a fresh top-level
// scope, merges variables into that scope first, and returns the final
// source's value translated to a host value (spec 6.2).
func Run(cfg *config.Config, variables map[string]interface{}, sources ...interface{}) (interface{}, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	env := newProgramScope(cfg, os.Stdout)
	if err := mergeVariables(env, variables); err != nil {
		return nil, err
	}
	ev := eval.New(cfg)
	result, _, err := runSources(ev, env, cfg, sources)
	if err != nil {
		return nil, err
	}
	return FromValue(result), nil
}

// MakeInstance parses and evaluates sources once, keeping the resulting
// scope alive in the returned Instance for later RunScript/GetMember/
// CallMethod calls.
func MakeInstance(cfg *config.Config, sources ...interface{}) (*Instance, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	env := newProgramScope(cfg, os.Stdout)
	ev := eval.New(cfg)
	_, prog, err := runSources(ev, env, cfg, sources)
	if err != nil {
		return nil, err
	}
	return &Instance{env: env, parsed: &Parsed{cfg: cfg, prog: prog}, stdout: os.Stdout}, nil
}

// RunScript re-runs the instance's own program against its persistent
// scope, picking up whatever state earlier calls left behind.
func (inst *Instance) RunScript(cfg *config.Config) (interface{}, error) {
	if cfg == nil {
		cfg = inst.parsed.cfg
	}
	ev := eval.New(cfg)
	ev.Stdout = inst.stdout
	result, err := ev.EvalProgram(inst.parsed.prog, inst.env)
	if err != nil {
		return nil, toHostError(err, cfg)
	}
	return FromValue(result), nil
}

// GetMember reads a dotted member path out of the instance's top-level
// scope: path[0] is a variable name, the rest are Block keys or Array
// indices read the way `.`/`[]` already evaluate them.
func (inst *Instance) GetMember(path []string, cfg *config.Config) (interface{}, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("viv: GetMember requires a non-empty path")
	}
	cur, ok := inst.env.Lookup(path[0])
	if !ok {
		return nil, fmt.Errorf("viv: no member %q on instance", path[0])
	}
	for _, key := range path[1:] {
		switch v := cur.(type) {
		case *value.BlockValue:
			next, present := v.Get(key)
			if !present {
				return nil, fmt.Errorf("viv: no member %q on instance", key)
			}
			cur = next
		case *value.ArrayValue:
			idx, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("viv: %q is not a valid array index", key)
			}
			n, ok := v.Normalize(idx)
			if !ok {
				return nil, fmt.Errorf("viv: index %q out of range", key)
			}
			cur = v.Get(int64(n))
		default:
			return nil, fmt.Errorf("viv: %q is not a block or array, cannot read member %q", key, key)
		}
	}
	return FromValue(cur), nil
}

// CallMethod invokes a root-scope callable by name with host-supplied
// arguments, translated through the value bridge both ways.
func (inst *Instance) CallMethod(name string, args []interface{}, cfg *config.Config) (interface{}, error) {
	target, ok := inst.env.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("viv: no method %q on instance", name)
	}
	fn, ok := target.(*value.CallableValue)
	if !ok {
		return nil, fmt.Errorf("viv: %q is not callable", name)
	}
	if cfg == nil {
		cfg = inst.parsed.cfg
	}
	vargs := make([]value.Value, len(args))
	for i, a := range args {
		v, err := ToValue(a)
		if err != nil {
			return nil, err
		}
		vargs[i] = v
	}
	ev := eval.New(cfg)
	ev.Stdout = inst.stdout
	v, err := ev.CallValue(fn, vargs)
	if err != nil {
		return nil, toHostError(err, cfg)
	}
	return FromValue(v), nil
}

// runSources walks sources left to right against env, merging host
// variable maps in place, parsing and evaluating each string (or "+"-
// joined run of strings) as one segment, and implementing the `_`
// implicit-variable rule (spec 4.2, GLOSSARY) across every segment whose
// top-level value is not a Block. It returns the final segment's value
// together with the concatenation of every parsed text segment's
// statements, which MakeInstance keeps as the instance's replayable
// program.
func runSources(ev *eval.Evaluator, env *environment.Environment, cfg *config.Config, sources []interface{}) (value.Value, *parser.BlockStmtNode, error) {
	var (
		last      value.Value = value.Null
		nonBlocks []value.Value
		prog                 = &parser.BlockStmtNode{}
	)

	i := 0
	for i < len(sources) {
		switch s := sources[i].(type) {
		case map[string]interface{}:
			if err := mergeVariables(env, s); err != nil {
				return nil, nil, err
			}
			i++
		case *Parsed:
			v, err := ev.EvalProgram(s.prog, env)
			if err != nil {
				return nil, nil, toHostError(err, cfg)
			}
			prog.Stmts = append(prog.Stmts, s.prog.Stmts...)
			last = recordResult(env, &nonBlocks, v)
			i++
		case string:
			if s == concatMarker {
				return nil, nil, fmt.Errorf("viv: %q must appear between two string sources", concatMarker)
			}
			text := s
			i++
			for i+1 < len(sources) {
				marker, isMarker := sources[i].(string)
				next, isNext := sources[i+1].(string)
				if !isMarker || marker != concatMarker || !isNext {
					break
				}
				text += next
				i += 2
			}
			seg, err := parseSegment(text, cfg)
			if err != nil {
				return nil, nil, err
			}
			v, err := ev.EvalProgram(seg, env)
			if err != nil {
				return nil, nil, toHostError(err, cfg)
			}
			prog.Stmts = append(prog.Stmts, seg.Stmts...)
			last = recordResult(env, &nonBlocks, v)
		default:
			return nil, nil, fmt.Errorf("viv: unsupported source type %T", s)
		}
	}

	switch len(nonBlocks) {
	case 0:
	case 1:
		env.Define("_", nonBlocks[0])
	default:
		env.Define("_", value.NewArray(nonBlocks...))
	}

	return last, prog, nil
}

// recordResult merges v's keys into env when v is a Block (spec 8.2
// scenario 1/2's host-data-injection behavior), otherwise appends it to
// nonBlocks and rebinds `_` at once (the single value, or an Array of all
// of them once there are several) so later sources can read it, and
// returns v as the running "last value".
func recordResult(env *environment.Environment, nonBlocks *[]value.Value, v value.Value) value.Value {
	if blk, ok := v.(*value.BlockValue); ok {
		for _, k := range blk.Keys() {
			bv, _ := blk.Get(k)
			env.Define(k, bv)
		}
		return v
	}
	*nonBlocks = append(*nonBlocks, v)
	if len(*nonBlocks) == 1 {
		env.Define("_", v)
	} else {
		env.Define("_", value.NewArray(append([]value.Value(nil), (*nonBlocks)...)...))
	}
	return v
}

// resolveTextSegments reduces a Parse-only source list (strings and "+"
// markers, no host variable maps) into the distinct program texts to
// parse, applying the "+" concatenation rule.
func resolveTextSegments(sources []interface{}) ([]string, error) {
	var out []string
	i := 0
	for i < len(sources) {
		s, ok := sources[i].(string)
		if !ok {
			return nil, fmt.Errorf("viv: Parse only accepts string sources and %q, got %T", concatMarker, sources[i])
		}
		if s == concatMarker {
			return nil, fmt.Errorf("viv: %q must appear between two string sources", concatMarker)
		}
		text := s
		i++
		for i+1 < len(sources) {
			marker, isMarker := sources[i].(string)
			next, isNext := sources[i+1].(string)
			if !isMarker || marker != concatMarker || !isNext {
				break
			}
			text += next
			i += 2
		}
		out = append(out, text)
	}
	return out, nil
}

// parseSegment parses one source text under cfg's JSON-only/infinity/NaN
// options, surfacing the first collected parse error.
func parseSegment(text string, cfg *config.Config) (*parser.BlockStmtNode, error) {
	opts := []parser.Option{parser.WithJSONOnly(cfg.EnableOnlyJson)}
	if cfg.AllowsInfinity() {
		opts = append(opts, parser.WithInfinityLexeme(cfg.Infinity))
	}
	if cfg.AllowsNaN() {
		opts = append(opts, parser.WithNaNLexeme(cfg.NaN))
	}
	prog, errs := parser.Parse(text, opts...)
	if len(errs) > 0 {
		return nil, toHostError(errs[0], cfg)
	}
	return prog, nil
}

// mergeVariables translates a host variable mapping through the value
// bridge and defines each entry directly in env.
func mergeVariables(env *environment.Environment, variables map[string]interface{}) error {
	for k, hv := range variables {
		v, err := ToValue(hv)
		if err != nil {
			return fmt.Errorf("viv: variable %q: %w", k, err)
		}
		env.Define(k, v)
	}
	return nil
}

// toHostError renders a *verror.Error the way spec 7 documents
// (optionally writing the stderr-sink copy spec 6.4's enableStderr asks
// for) and returns it as a plain error for the (value, error) façade.
func toHostError(err error, cfg *config.Config) error {
	ve, ok := err.(*verror.Error)
	if !ok {
		return err
	}
	detail := cfg != nil && cfg.EnableTagDetail
	msg := ve.Format(detail)
	if cfg != nil && cfg.EnableStderr {
		fmt.Fprintln(os.Stderr, msg)
	}
	return fmt.Errorf("%s", msg)
}
