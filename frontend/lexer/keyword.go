package lexer

import "github.com/trust-lang/trustc/common"

// Keyword represents a reserved keyword.
type Keyword int

const (
	_ Keyword = iota
	KwFn
	KwLet
	KwMut
	KwIf
	KwElse
	KwLoop
	KwBreak
	KwContinue
	KwReturn
	KwTrue
	KwFalse
	KwI32
	KwBool
	KwPrintln
	KwReserved // C reserved below
)

var keywordTable = map[string]Keyword{
	"fn":       KwFn,
	"let":      KwLet,
	"mut":      KwMut,
	"if":       KwIf,
	"else":     KwElse,
	"loop":     KwLoop,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"true":     KwTrue,
	"false":    KwFalse,
	"i32":      KwI32,
	"bool":     KwBool,
	"println!": KwPrintln,
}

// Words of the C output that may not be used as Trust identifiers.
var reservedTable = map[string]struct{}{
	"auto": {}, "case": {}, "char": {}, "const": {}, "default": {}, "do": {},
	"double": {}, "enum": {}, "extern": {}, "float": {}, "for": {}, "goto": {},
	"inline": {}, "int": {}, "long": {}, "register": {}, "restrict": {},
	"short": {}, "signed": {}, "sizeof": {}, "static": {}, "struct": {},
	"switch": {}, "typedef": {}, "union": {}, "unsigned": {}, "void": {},
	"volatile": {}, "while": {}, "printf": {},
}

var keywordNames = func() []string {
	names := make([]string, KwReserved+1)
	for lit, kw := range keywordTable {
		names[kw] = lit
	}
	return names
}()

func lookupKeyword(lit string) (Keyword, bool) {
	if kw, ok := keywordTable[lit]; ok {
		return kw, true
	}
	if _, ok := reservedTable[lit]; ok {
		return KwReserved, true
	}
	return 0, false
}

type TokKeyword struct {
	Keyword Keyword
	Raw     string
	span    common.Span
}

func (t TokKeyword) isToken() {}

func (t TokKeyword) Span() common.Span {
	return t.span
}

func (t TokKeyword) String() string {
	return t.Raw
}

func (t TokKeyword) Is(other string) bool {
	return t.Raw == other
}

func (t TokKeyword) AsString() string {
	return t.Raw
}

func (t TokKeyword) Kind() string {
	if t.Keyword == KwReserved {
		return "reserved word '" + t.Raw + "'"
	}
	return "'" + t.Raw + "'"
}

func newTokKeyword(k Keyword, raw string, span common.Span) TokKeyword {
	if k != KwReserved {
		raw = keywordNames[k]
	}
	return TokKeyword{Keyword: k, Raw: raw, span: span}
}
