package parser

import (
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

// parseFunction parses `fn name(params) [-> Type] { ... }`.
func (p *parser) parseFunction() ast.NodeID {
	spanStart := p.span()
	p.advance() // skip `fn`

	name, _ := p.expectIdent()
	fn := p.tree.AddValue(ast.KindFunctionDecl, name.Raw, spanStart)

	if p.expect("(") {
		p.parseCommaSeparatedDelimited(")", "parameter", FlagTrailingComma, func(p *parser) {
			p.tree.AddKid(fn, p.parseParam())
		})
	}

	if p.tryConsume("->") {
		p.tree.SetType(fn, p.parseType())
	}

	p.tree.SetBody(fn, p.parseBlock())
	return p.finish(fn, spanStart)
}

func (p *parser) parseParam() ast.NodeID {
	ident, ok := p.Token.(lexer.TokIdent)
	if !ok {
		return p.errorNode("parameter")
	}
	p.advance()
	param := p.tree.AddValue(ast.KindParam, ident.Raw, ident.Span())
	if p.tryConsume(":") {
		p.tree.SetType(param, p.parseType())
	}
	return p.finish(param, ident.Span())
}
