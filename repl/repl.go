/*
File    : vivjson/repl/repl.go

Package repl implements an interactive read-eval-print loop for VivJson,
grounded nearly line-for-line on the teacher's repl/repl.go: a readline
prompt with history, a persistent evaluator/environment pair reused across
lines, colored banner/result/error output, panic recovery around each
line, and a textual exit command. Generalized from the teacher's
single-language evaluator to VivJson's parser/eval/config/verror split and
its script-vs-JSON-only mode switch.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/vivjson/vivjson/config"
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/eval"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/stdlib"
	"github.com/vivjson/vivjson/value"
	"github.com/vivjson/vivjson/verror"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the display strings and configuration for one interactive
// session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Cfg     *config.Config
}

// NewRepl builds a Repl ready to Start. cfg may be nil, in which case
// config.Default() is used.
func NewRepl(banner, version, author, line, license, prompt string, cfg *config.Config) *Repl {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Cfg: cfg}
}

// PrintBannerInfo prints the startup banner, version line, and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to VivJson!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or readline hits EOF.
// reader is accepted to mirror the host-facing signature of a one-shot
// run, but readline reads its own line editor input; writer receives the
// banner, results, and errors.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	root := environment.New()
	stdlib.Register(root, writer, r.Cfg)
	env := root.Child()
	ev := eval.New(r.Cfg)
	ev.Stdout = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, ev, env)
	}
}

// executeWithRecovery parses and evaluates one line against the session's
// persistent environment, printing a colored result or error and never
// letting a panic escape the loop.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, ev *eval.Evaluator, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[Viv] Error: %v\n", recovered)
		}
	}()

	opts := []parser.Option{parser.WithJSONOnly(r.Cfg.EnableOnlyJson)}
	if r.Cfg.AllowsInfinity() {
		opts = append(opts, parser.WithInfinityLexeme(r.Cfg.Infinity))
	}
	if r.Cfg.AllowsNaN() {
		opts = append(opts, parser.WithNaNLexeme(r.Cfg.NaN))
	}

	prog, errs := parser.Parse(line, opts...)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e.Format(r.Cfg.EnableTagDetail))
		}
		return
	}

	result, err := ev.EvalProgram(prog, env)
	if err != nil {
		if ve, ok := err.(*verror.Error); ok {
			redColor.Fprintf(writer, "%s\n", ve.Format(r.Cfg.EnableTagDetail))
		} else {
			redColor.Fprintf(writer, "[Viv] Error: %v\n", err)
		}
		return
	}

	if result != nil && result != value.Null {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
