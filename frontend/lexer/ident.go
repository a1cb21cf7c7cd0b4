package lexer

import (
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/common"
	"github.com/trust-lang/trustc/frontend"
)

type TokIdent struct {
	Raw  string
	span common.Span
}

func (t TokIdent) isToken() {}

func (t TokIdent) Span() common.Span {
	return t.span
}

func (t TokIdent) String() string {
	return t.Raw
}

func (t TokIdent) Is(_ string) bool {
	return false
}

func (t TokIdent) AsString() string {
	return ""
}

func (t TokIdent) Kind() string {
	return "identifier"
}

func NewTokIdent(s string, span common.Span) TokIdent {
	return TokIdent{Raw: s, span: span}
}

func IsIdentStr(t Token, s string) bool {
	if ident, ok := t.(TokIdent); ok {
		return ident.Raw == s
	}
	return false
}

/* Lexing */

// word scans an identifier, keyword or the `println!` macro name.
func (lx *lexer) word() (Token, *diagnostic) {
	c, _ := lx.cur()
	if !isIdentStart(c) {
		return nil, lx.error(fmt.Sprintf("unexpected character: %c", c))
	}

	var sb strings.Builder
	for c, ok := lx.cur(); ok && isIdentContinue(c); c, ok = lx.cur() {
		sb.WriteRune(c)
		lx.advance()
	}
	raw := sb.String()

	if raw == "println" && lx.isCur('!') && !lx.isPeek('=') {
		lx.advance()
		raw += "!"
	}

	if strings.HasPrefix(raw, frontend.PreservedPrefix) {
		return nil, lx.error(fmt.Sprintf("cannot have identifier starting with %s", frontend.PreservedPrefix))
	}

	if kw, ok := lookupKeyword(raw); ok {
		return newTokKeyword(kw, raw, lx.currentSpan()), nil
	}
	return NewTokIdent(raw, lx.currentSpan()), nil
}

func isIdentStart(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || r == '_'
}

func isIdentContinue(r rune) bool {
	return isAsciiDigit(r) || isIdentStart(r)
}

func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if i > 0 && !isIdentContinue(r) {
			return false
		}
	}
	_, kw := lookupKeyword(s)
	return !kw
}
