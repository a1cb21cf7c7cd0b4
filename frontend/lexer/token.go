// Package lexer turns Trust source text into a token stream terminated by
// TokEOF. Comments and whitespace never appear in the stream.
package lexer

import (
	"github.com/trust-lang/trustc/common"
)

type Token interface {
	isToken()
	Span() common.Span
	String() string
	Is(string) bool
	// AsString used for keywords and punctuations, to make it easier to switch on tokens for them
	AsString() string
	// Kind describes the token class for diagnostics, e.g. "identifier" or "';'".
	Kind() string
}
