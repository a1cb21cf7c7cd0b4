package lexer

import "github.com/trust-lang/trustc/common"

// Punct represents a punctuation token.
type Punct int

const (
	_ Punct = iota

	// PunctPlus is `+`
	PunctPlus
	// PunctMinus is `-`
	PunctMinus
	// PunctAsterisk is `*`
	PunctAsterisk
	// PunctSlash is `/`
	PunctSlash
	// PunctPercent is `%`
	PunctPercent
	// PunctEqual is `=`
	PunctEqual
	// PunctEqualEqual is `==`
	PunctEqualEqual
	// PunctNotEqual is `!=`
	PunctNotEqual
	// PunctLessThan is `<`
	PunctLessThan
	// PunctLessThanEqual is `<=`
	PunctLessThanEqual
	// PunctGreaterThan is `>`
	PunctGreaterThan
	// PunctGreaterThanEqual is `>=`
	PunctGreaterThanEqual
	// PunctBang is `!`
	PunctBang
	// PunctAndAnd is `&&`
	PunctAndAnd
	// PunctOrOr is `||`
	PunctOrOr
	// PunctSemicolon is `;`
	PunctSemicolon
	// PunctColon is `:`
	PunctColon
	// PunctComma is `,`
	PunctComma
	// PunctArrow is `->`
	PunctArrow
	// PunctOpenParen is `(`
	PunctOpenParen
	// PunctCloseParen is `)`
	PunctCloseParen
	// PunctOpenBrace is `{`
	PunctOpenBrace
	// PunctCloseBrace is `}`
	PunctCloseBrace
	// PunctOpenBracket is `[`
	PunctOpenBracket
	// PunctCloseBracket is `]`
	PunctCloseBracket
)

var puncts = map[string]Punct{
	"+":  PunctPlus,
	"-":  PunctMinus,
	"*":  PunctAsterisk,
	"/":  PunctSlash,
	"%":  PunctPercent,
	"=":  PunctEqual,
	"==": PunctEqualEqual,
	"!=": PunctNotEqual,
	"<":  PunctLessThan,
	"<=": PunctLessThanEqual,
	">":  PunctGreaterThan,
	">=": PunctGreaterThanEqual,
	"!":  PunctBang,
	"&&": PunctAndAnd,
	"||": PunctOrOr,
	";":  PunctSemicolon,
	":":  PunctColon,
	",":  PunctComma,
	"->": PunctArrow,
	"(":  PunctOpenParen,
	")":  PunctCloseParen,
	"{":  PunctOpenBrace,
	"}":  PunctCloseBrace,
	"[":  PunctOpenBracket,
	"]":  PunctCloseBracket,
}

var punctNames = func() []string {
	var max Punct
	for _, p := range puncts {
		if p > max {
			max = p
		}
	}
	names := make([]string, max+1)
	for lit, p := range puncts {
		names[p] = lit
	}
	return names
}()

type TokPunct struct {
	Punct Punct
	span  common.Span
}

func (t TokPunct) isToken() {}

func (t TokPunct) Span() common.Span {
	return t.span
}

func (t TokPunct) String() string {
	return punctNames[t.Punct]
}

func (t TokPunct) Is(other string) bool {
	return puncts[other] == t.Punct
}

func (t TokPunct) AsString() string {
	return t.String()
}

func (t TokPunct) Kind() string {
	return "'" + t.String() + "'"
}

func newTokPunct(p Punct, span common.Span) TokPunct {
	return TokPunct{Punct: p, span: span}
}

/* Lexing */

// punct scans the longest punctuation starting at the current rune.
func (lx *lexer) punct() Token {
	c, ok := lx.cur()
	if !ok {
		return nil
	}
	if n, ok := lx.peek(); ok {
		two := string([]rune{c, n})
		if p, ok := puncts[two]; ok {
			lx.advance()
			lx.advance()
			return newTokPunct(p, lx.currentSpan())
		}
	}
	if p, ok := puncts[string(c)]; ok {
		lx.advance()
		return newTokPunct(p, lx.currentSpan())
	}
	return nil
}
