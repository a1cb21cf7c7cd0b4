package parser

import (
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

// parseType parses `i32`, `bool`, `[T]`, `[T; N]` or `(T, ...)`.
func (p *parser) parseType() ast.NodeID {
	spanStart := p.span()
	switch p.Token.AsString() {
	case "i32":
		p.advance()
		return p.tree.Add(ast.KindTypeI32, spanStart)
	case "bool":
		p.advance()
		return p.tree.Add(ast.KindTypeBool, spanStart)
	case "[":
		p.advance()
		arr := p.tree.Add(ast.KindTypeArray, spanStart)
		p.tree.SetType(arr, p.parseType())
		if p.tryConsume(";") {
			if n, ok := p.Token.(lexer.TokNumber); ok {
				p.tree.Node(arr).Value = n.Raw
				p.advance()
			} else {
				p.errorExpected("array size")
			}
		}
		p.expect("]")
		return p.finish(arr, spanStart)
	case "(":
		p.advance()
		tuple := p.tree.Add(ast.KindTypeTuple, spanStart)
		p.parseCommaSeparatedDelimited(")", "type", FlagTrailingComma, func(p *parser) {
			p.tree.AddKid(tuple, p.parseType())
		})
		return p.finish(tuple, spanStart)
	}
	return p.errorNode("type")
}
