/*
File    : vivjson/verror/error.go

Package verror defines VivJson's single structured error type, carried
through all three pipeline stages (spec 7). Grounded on the teacher
parser's Errors []string / addError idiom, generalized into a typed value
instead of a bare string so (kind, message, line, column) survive past the
parser into the host-facing API.
*/
package verror

import "fmt"

// Stage identifies which pipeline stage raised the error.
type Stage string

const (
	Lex      Stage = "Lexer"
	Parse    Stage = "Parser"
	Evaluate Stage = "Evaluator"
)

// Error is VivJson's structured error: a stage, a one-line reason, and a
// source position. Position is (0, 0) when a stage has none to offer (for
// example an error raised at the host API boundary before any source was
// touched).
type Error struct {
	Stage   Stage
	Message string
	Line    int
	Column  int
	// LineText, when non-empty, is the offending source line, rendered
	// under the message with a caret under Column (spec 7).
	LineText string
}

// New builds an Error at the given stage and position.
func New(stage Stage, line, column int, format string, a ...interface{}) *Error {
	return &Error{Stage: stage, Message: fmt.Sprintf(format, a...), Line: line, Column: column}
}

// Error implements the error interface with a plain
// "stage: message (line L, column C)" form;
// Format produces the full user-visible rendering with the [Viv] prefix.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (line %d, column %d)", e.Stage, e.Message, e.Line, e.Column)
}

// Format renders e the way a host-facing failure is shown to a user (spec
// 7): "[Viv] Error: <reason>" by default, or "[Viv:<Stage>] Error: <reason>"
// when detail is requested (the enableTagDetail config option), followed
// by the source line and a caret when LineText is available.
func (e *Error) Format(detail bool) string {
	prefix := "[Viv]"
	if detail {
		prefix = fmt.Sprintf("[Viv:%s]", e.Stage)
	}
	out := fmt.Sprintf("%s Error: %s", prefix, e.Message)
	if e.LineText != "" {
		caret := ""
		for i := 1; i < e.Column; i++ {
			caret += " "
		}
		caret += "^"
		out += "\n" + e.LineText + "\n" + caret
	}
	return out
}

// WithLineText attaches the offending source line for caret rendering and
// returns e for chaining.
func (e *Error) WithLineText(text string) *Error {
	e.LineText = text
	return e
}
