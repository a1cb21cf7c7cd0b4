package lexer

import (
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/common"
)

// TokString represents a string token. Raw keeps the escapes as written so the
// text can be passed through to C unchanged.
type TokString struct {
	Raw  string
	span common.Span
}

func (t TokString) isToken() {}

func (t TokString) Span() common.Span {
	return t.span
}

func (t TokString) String() string {
	return t.Raw
}

func (t TokString) Is(_ string) bool {
	return false
}

func (t TokString) AsString() string {
	return ""
}

func (t TokString) Kind() string {
	return "string literal"
}

func NewTokString(s string, span common.Span) TokString {
	return TokString{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) string() (Token, *diagnostic) {
	if !lx.isCur('"') {
		return nil, nil
	}
	lx.advance() // opening quote

	var sb strings.Builder
	for {
		c, ok := lx.cur()
		if !ok || c == '\n' {
			return nil, lx.error("unterminated string literal")
		}

		if c == '"' {
			lx.advance()
			return NewTokString(sb.String(), lx.currentSpan()), nil
		}

		if c == '\\' {
			lx.advance()
			e, ok := lx.cur()
			if !ok {
				return nil, lx.error("unterminated string literal")
			}
			switch e {
			case 'n', 't', 'r', '0', '\\', '"', '\'':
			default:
				return nil, lx.error(fmt.Sprintf("invalid escape sequence: \\%c", e))
			}
			sb.WriteRune('\\')
			sb.WriteRune(e)
			lx.advance()
			continue
		}

		sb.WriteRune(c)
		lx.advance()
	}
}
