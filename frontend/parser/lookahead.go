package parser

import "github.com/trust-lang/trustc/frontend/lexer"

// hasTopLevel scans from the opening delimiter under the cursor to its
// matching closer and reports whether sep appears directly inside it.
func (p *parser) hasTopLevel(sep string) bool {
	depth := 0
	for i := p.Pos; i < len(p.TokenStream); i++ {
		tok := p.TokenStream[i]
		if lexer.IsEOF(tok) {
			return false
		}
		switch tok.AsString() {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth == 0 {
				return false
			}
		default:
			if depth == 1 && tok.Is(sep) {
				return true
			}
		}
	}
	return false
}
