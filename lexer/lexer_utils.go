/*
File    : vivjson/lexer/lexer_utils.go

Scanning helpers for string, number, and identifier literals (spec §4.1).
*/
package lexer

import (
	"strings"
)

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// readIdentifier scans an identifier or keyword: letters, digits, and
// underscore, not starting with a digit (spec §3.3).
func (l *Lexer) readIdentifier(line, col int) (Token, error) {
	var b strings.Builder
	for isIdentPart(l.current) {
		b.WriteRune(l.current)
		l.Advance()
	}
	name := b.String()
	return NewAt(LookupIdent(name), name, line, col), nil
}

// readNumber scans `digits (. digits)? ([eE][+-]?digits)?` (spec §4.1). A
// leading sign is never consumed here — it is handled as a unary operator
// at parse time. A trailing dot with no fractional digits is a lex error.
func (l *Lexer) readNumber(line, col int) (Token, error) {
	var b strings.Builder
	isFloat := false

	for isDigit(l.current) {
		b.WriteRune(l.current)
		l.Advance()
	}

	if l.current == '.' {
		// Only consume the dot if at least one digit follows; otherwise
		// this is the member-access/range '.' and not part of the number.
		if !isDigit(l.Peek()) {
			return NewAt(INT, b.String(), line, col), nil
		}
		isFloat = true
		b.WriteRune('.')
		l.Advance()
		if !isDigit(l.current) {
			return Token{}, l.errorf("malformed number literal: trailing '.' with no fractional digits")
		}
		for isDigit(l.current) {
			b.WriteRune(l.current)
			l.Advance()
		}
	}

	if l.current == 'e' || l.current == 'E' {
		lookPos := l.pos + 1
		hasSign := false
		if lookPos < len(l.src) && (l.src[lookPos] == '+' || l.src[lookPos] == '-') {
			hasSign = true
			lookPos++
		}
		if lookPos < len(l.src) && isDigit(l.src[lookPos]) {
			isFloat = true
			b.WriteRune(l.current)
			l.Advance()
			if hasSign {
				b.WriteRune(l.current)
				l.Advance()
			}
			for isDigit(l.current) {
				b.WriteRune(l.current)
				l.Advance()
			}
		}
	}

	if isFloat {
		return NewAt(FLOAT, b.String(), line, col), nil
	}
	return NewAt(INT, b.String(), line, col), nil
}

// readString scans a quoted string literal. Opening and closing quotes
// must match (" or '). Escapes: \\ \/ \" \' \b \f \n \r \t \uXXXX (exactly
// four hex digits). Any other \X is a lex error (spec §4.1).
func (l *Lexer) readString(line, col int) (Token, error) {
	quote := l.current
	l.Advance() // consume opening quote

	var b strings.Builder
	for {
		if l.current == eof {
			return Token{}, &LexError{Message: "unterminated string literal", Line: line, Column: col}
		}
		if l.current == quote {
			l.Advance()
			break
		}
		if l.current == '\\' {
			l.Advance()
			switch l.current {
			case '\\':
				b.WriteRune('\\')
			case '/':
				b.WriteRune('/')
			case '"':
				b.WriteRune('"')
			case '\'':
				b.WriteRune('\'')
			case 'b':
				b.WriteRune('\b')
			case 'f':
				b.WriteRune('\f')
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			case 't':
				b.WriteRune('\t')
			case 'u':
				r, err := l.readUnicodeEscape()
				if err != nil {
					return Token{}, err
				}
				b.WriteRune(r)
				continue
			default:
				return Token{}, l.errorf("invalid escape sequence '\\%c'", l.current)
			}
			l.Advance()
			continue
		}
		b.WriteRune(l.current)
		l.Advance()
	}

	return NewAt(STRING, b.String(), line, col), nil
}

// readUnicodeEscape reads exactly four hex digits following `\u` and
// returns the decoded rune. l.current is 'u' on entry.
func (l *Lexer) readUnicodeEscape() (rune, error) {
	l.Advance() // consume 'u'
	var val rune
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(l.current)
		if !ok {
			return 0, l.errorf("invalid unicode escape: expected 4 hex digits")
		}
		val = val*16 + rune(d)
		l.Advance()
	}
	return val, nil
}

func hexDigit(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}
