package verror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDefaultPrefix(t *testing.T) {
	e := New(Evaluate, 3, 5, "division by zero")
	assert.Equal(t, "[Viv] Error: division by zero", e.Format(false))
}

func TestFormatDetailPrefixNamesStage(t *testing.T) {
	e := New(Parse, 1, 1, "unexpected token '}'")
	assert.Equal(t, "[Viv:Parser] Error: unexpected token '}'", e.Format(true))
}

func TestFormatWithLineTextDrawsCaret(t *testing.T) {
	e := New(Lex, 1, 3, "invalid escape sequence").WithLineText(`"\q"`)
	out := e.Format(false)
	assert.Contains(t, out, `"\q"`)
	assert.Contains(t, out, "^")
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(Evaluate, 1, 1, "boom")
	assert.EqualError(t, err, "Evaluator: boom (line 1, column 1)")
}
