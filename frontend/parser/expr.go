package parser

import (
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

func (p *parser) parseExpr() ast.NodeID {
	return p.parseBinaryExpr(precLowest)
}

func (p *parser) parsePrimaryExpr() ast.NodeID {
	switch v := p.Token.(type) {
	case lexer.TokNumber:
		p.advance()
		return p.tree.AddValue(ast.KindNumber, v.Raw, v.Span())
	case lexer.TokString:
		p.advance()
		return p.tree.AddValue(ast.KindString, v.Raw, v.Span())
	case lexer.TokIdent:
		return p.parseIdentExpr()
	case lexer.TokKeyword:
		if v.Keyword == lexer.KwTrue || v.Keyword == lexer.KwFalse {
			p.advance()
			return p.tree.AddValue(ast.KindBool, v.Raw, v.Span())
		}
	}

	switch p.Token.AsString() {
	case "(":
		return p.parseParenthesizedExpr()
	case "[":
		return p.parseArrayExpr()
	}

	return p.errorNode("expression")
}

// parseIdentExpr classifies an identifier by the next token: a call, an
// index chain or a plain reference.
func (p *parser) parseIdentExpr() ast.NodeID {
	ident, ok := p.expectIdent()
	if !ok {
		return p.tree.Add(ast.KindError, ident.Span())
	}
	spanStart := ident.Span()

	if p.Token.Is("(") {
		p.advance()
		call := p.tree.AddValue(ast.KindCall, ident.Raw, spanStart)
		p.parseCommaSeparatedDelimited(")", "expression", FlagTrailingComma, func(p *parser) {
			p.tree.AddKid(call, p.parseExpr())
		})
		return p.finish(call, spanStart)
	}

	expr := p.tree.AddValue(ast.KindId, ident.Raw, spanStart)
	for p.Token.Is("[") {
		p.advance()
		index := p.tree.AddValue(ast.KindIndex, ident.Raw, spanStart)
		p.tree.AddKid(index, expr)
		p.tree.AddKid(index, p.parseExpr())
		p.expect("]")
		expr = p.finish(index, spanStart)
	}
	return expr
}

// parseParenthesizedExpr tells `(e)` from a tuple literal by looking for a
// comma before the matching `)`.
func (p *parser) parseParenthesizedExpr() ast.NodeID {
	spanStart := p.span()

	if p.peek().Is(")") || p.hasTopLevel(",") {
		p.advance() // skip `(`
		tuple := p.tree.Add(ast.KindTupleLiteral, spanStart)
		p.parseCommaSeparatedDelimited(")", "expression", FlagTrailingComma, func(p *parser) {
			p.tree.AddKid(tuple, p.parseExpr())
		})
		return p.finish(tuple, spanStart)
	}

	p.advance() // skip `(`
	inner := p.parseExpr()
	p.expect(")")
	return inner
}

// parseArrayExpr tells `[a, b]` from `[e; n]` by looking for a `;` before the
// matching `]`.
func (p *parser) parseArrayExpr() ast.NodeID {
	spanStart := p.span()

	if p.hasTopLevel(";") {
		p.advance() // skip `[`
		repeat := p.tree.Add(ast.KindArrayRepeat, spanStart)
		p.tree.AddKid(repeat, p.parseExpr())
		p.expect(";")
		p.tree.AddKid(repeat, p.parseExpr())
		p.expect("]")
		return p.finish(repeat, spanStart)
	}

	p.advance() // skip `[`
	array := p.tree.Add(ast.KindArrayLiteral, spanStart)
	p.parseCommaSeparatedDelimited("]", "expression", FlagTrailingComma, func(p *parser) {
		p.tree.AddKid(array, p.parseExpr())
	})
	return p.finish(array, spanStart)
}
