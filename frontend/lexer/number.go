package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trust-lang/trustc/common"
)

type TokNumber struct {
	Raw  string
	span common.Span
}

func (t TokNumber) isToken() {}

func (t TokNumber) Span() common.Span {
	return t.span
}

func (t TokNumber) String() string {
	return t.Raw
}

func (t TokNumber) Is(_ string) bool {
	return false
}

func (t TokNumber) AsString() string {
	return ""
}

func (t TokNumber) Kind() string {
	return "number"
}

// Value returns the numeric value of the literal.
func (t TokNumber) Value() (int64, error) {
	return ParseNumber(t.Raw)
}

// ParseNumber parses a decimal or 0x-prefixed hexadecimal literal.
func ParseNumber(raw string) (int64, error) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		return strconv.ParseInt(raw[2:], 16, 64)
	}
	return strconv.ParseInt(raw, 10, 64)
}

func newTokNumber(s string, span common.Span) TokNumber {
	return TokNumber{Raw: s, span: span}
}

/* Lexing */

func (lx *lexer) number() (Token, *diagnostic) {
	c, ok := lx.cur()
	if !ok || !isAsciiDigit(c) {
		return nil, nil
	}

	var sb strings.Builder
	hex := c == '0' && (lx.isPeek('x') || lx.isPeek('X'))
	if hex {
		sb.WriteRune(c)
		lx.advance()
		x, _ := lx.cur()
		sb.WriteRune(x)
		lx.advance()
	}

	digits := 0
	for c, ok := lx.cur(); ok && (isAsciiDigit(c) || (hex && isHexDigit(c))); c, ok = lx.cur() {
		sb.WriteRune(c)
		digits++
		lx.advance()
	}

	if hex && digits == 0 {
		return nil, lx.error("malformed hexadecimal literal")
	}
	if c, ok := lx.cur(); ok && isIdentStart(c) {
		return nil, lx.error(fmt.Sprintf("invalid character %q in number literal", c))
	}

	return newTokNumber(sb.String(), lx.currentSpan()), nil
}

func isAsciiDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isAsciiDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
