package lexer

import (
	"testing"

	"github.com/nalgeon/be"
)

func kinds(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind()
	}
	return out
}

func TestLexKinds(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			"let",
			"let mut x = 0x1F;",
			[]string{"'let'", "'mut'", "identifier", "'='", "number", "';'", "end of input"},
		},
		{
			"println",
			`println!("a {}", x)`,
			[]string{"'println!'", "'('", "string literal", "','", "identifier", "')'", "end of input"},
		},
		{
			"println not equal",
			"println!=x",
			[]string{"identifier", "'!='", "identifier", "end of input"},
		},
		{
			"two char puncts",
			"a<=b->c&&d||e",
			[]string{"identifier", "'<='", "identifier", "'->'", "identifier", "'&&'", "identifier", "'||'", "identifier", "end of input"},
		},
		{
			"comments",
			"a // line\n b /* block\n */ c",
			[]string{"identifier", "identifier", "identifier", "end of input"},
		},
		{
			"reserved word",
			"int x",
			[]string{"reserved word 'int'", "identifier", "end of input"},
		},
		{
			"types",
			"fn f(a: [i32; 3]) -> (bool, i32) {}",
			[]string{
				"'fn'", "identifier", "'('", "identifier", "':'", "'['", "'i32'", "';'", "number", "']'", "')'",
				"'->'", "'('", "'bool'", "','", "'i32'", "')'", "'{'", "'}'", "end of input",
			},
		},
		{
			"empty",
			"   \n\t",
			[]string{"end of input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, diag := Lex("test.trust", tt.code)
			be.True(t, diag == nil)
			be.Equal(t, kinds(tokens), tt.want)
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"__trust_x", "cannot have identifier starting with __trust"},
		{"0x", "malformed hexadecimal literal"},
		{"12ab", "invalid character 'a' in number literal"},
		{`"abc`, "unterminated string literal"},
		{"\"ab\ncd\"", "unterminated string literal"},
		{`"\q"`, `invalid escape sequence: \q`},
		{"/* open", "unterminated multiline comment"},
		{"@", "unexpected character: @"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			tokens, diag := Lex("test.trust", tt.code)
			be.True(t, diag != nil)
			be.Equal(t, diag.Message, tt.want)
			be.Equal(t, len(tokens), 0)
		})
	}
}

func TestLexValues(t *testing.T) {
	tokens, diag := Lex("test.trust", `let s = "a\"b\n"; 0xff 42`)
	be.True(t, diag == nil)

	str, ok := tokens[3].(TokString)
	be.True(t, ok)
	be.Equal(t, str.Raw, `a\"b\n`)

	hex, ok := tokens[5].(TokNumber)
	be.True(t, ok)
	v, err := hex.Value()
	be.Err(t, err, nil)
	be.Equal(t, v, int64(255))

	dec, ok := tokens[6].(TokNumber)
	be.True(t, ok)
	v, err = dec.Value()
	be.Err(t, err, nil)
	be.Equal(t, v, int64(42))

	kw, ok := tokens[0].(TokKeyword)
	be.True(t, ok)
	be.Equal(t, kw.Keyword, KwLet)
}

func TestLexSpans(t *testing.T) {
	tokens, diag := Lex("test.trust", "let x\r\n  bc")
	be.True(t, diag == nil)

	x := tokens[1].Span()
	be.Equal(t, x.Pos(), "1:5")
	be.Equal(t, x.ColumnEnd, uint32(5))
	be.Equal(t, x.Source, "test.trust")

	bc := tokens[2].Span()
	be.Equal(t, bc.Pos(), "2:3")
	be.Equal(t, bc.ColumnEnd, uint32(4))
}

func TestIsValidIdent(t *testing.T) {
	be.True(t, IsValidIdent("foo_1"))
	be.True(t, IsValidIdent("_"))
	be.True(t, !IsValidIdent(""))
	be.True(t, !IsValidIdent("1a"))
	be.True(t, !IsValidIdent("let"))
	be.True(t, !IsValidIdent("while"))
}
