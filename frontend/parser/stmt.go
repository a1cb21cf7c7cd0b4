package parser

import (
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

func (p *parser) parseStmt(flags Flags) ast.NodeID {
	switch p.Token.AsString() {
	case "let":
		return p.terminated(p.parseLet(), flags)
	case "if":
		return p.parseIf()
	case "loop":
		return p.parseLoop()
	case "{":
		return p.parseBlock()
	case "break":
		return p.terminated(p.parseJump(ast.KindBreakStmt), flags)
	case "continue":
		return p.terminated(p.parseJump(ast.KindContinueStmt), flags)
	case "return":
		return p.terminated(p.parseReturn(), flags)
	case "println!":
		return p.terminated(p.parsePrint(), flags)
	}
	if p.isAssignment() {
		return p.terminated(p.parseAssignment(), flags)
	}
	return p.terminated(p.parseExprStmt(), flags)
}

// terminated demands the `;` after a simple statement. At top level the
// program loop consumes an optional one instead.
func (p *parser) terminated(stmt ast.NodeID, flags Flags) ast.NodeID {
	if flags.Has(FlagTopLevel) {
		return stmt
	}
	if !p.expect(";") {
		p.synchronize()
	}
	return stmt
}

// synchronize skips to the next statement boundary: past a `;`, or up to a
// `}` or a keyword that starts a statement.
func (p *parser) synchronize() {
	for !lexer.IsEOF(p.Token) {
		switch p.Token.AsString() {
		case ";":
			p.advance()
			return
		case "}", "let", "if", "loop", "break", "continue", "return", "println!", "fn":
			return
		}
		p.advance()
	}
}

func (p *parser) finish(id ast.NodeID, spanStart Span) ast.NodeID {
	p.tree.Node(id).Span = SpanFrom(spanStart, p.prevSpan())
	return id
}

func (p *parser) parseLet() ast.NodeID {
	spanStart := p.span()
	p.advance() // skip `let`

	let := p.tree.Add(ast.KindLetDecl, spanStart)
	if p.tryConsume("mut") {
		p.tree.Node(let).Mut = true
	}
	p.tree.AddKid(let, p.parsePattern())

	if p.tryConsume(":") {
		p.tree.SetType(let, p.parseType())
	}
	if p.tryConsume("=") {
		p.tree.SetExpr(let, p.parseExpr())
	}
	return p.finish(let, spanStart)
}

func (p *parser) parsePattern() ast.NodeID {
	if ident, ok := p.Token.(lexer.TokIdent); ok {
		p.advance()
		return p.tree.AddValue(ast.KindVarPattern, ident.Raw, ident.Span())
	}
	if !p.Token.Is("(") {
		return p.errorNode("pattern")
	}

	spanStart := p.span()
	p.advance() // skip `(`
	tuple := p.tree.Add(ast.KindTuplePattern, spanStart)
	p.parseCommaSeparatedDelimited(")", "identifier", FlagTrailingComma, func(p *parser) {
		if ident, ok := p.expectIdent(); ok {
			p.tree.AddKid(tuple, p.tree.AddValue(ast.KindVarPattern, ident.Raw, ident.Span()))
		}
	})
	return p.finish(tuple, spanStart)
}

// isAssignment scans over `ident([...])*` and reports whether `=` follows.
func (p *parser) isAssignment() bool {
	if !lexer.IsIdent(p.Token) {
		return false
	}
	i := p.Pos + 1
	for i < len(p.TokenStream) && p.TokenStream[i].Is("[") {
		depth := 0
		for ; i < len(p.TokenStream); i++ {
			tok := p.TokenStream[i]
			switch tok.AsString() {
			case "[":
				depth++
			case "]":
				depth--
			}
			if depth == 0 || lexer.IsEOF(tok) {
				break
			}
		}
		i++
	}
	return i < len(p.TokenStream) && p.TokenStream[i].Is("=")
}

func (p *parser) parseAssignment() ast.NodeID {
	spanStart := p.span()
	target := p.parseIdentExpr()
	assign := p.tree.Add(ast.KindAssignStmt, spanStart)
	p.tree.AddKid(assign, target)
	p.expect("=")
	p.tree.SetExpr(assign, p.parseExpr())
	return p.finish(assign, spanStart)
}

func (p *parser) parseExprStmt() ast.NodeID {
	spanStart := p.span()
	expr := p.parseExpr()
	stmt := p.tree.Add(ast.KindExprStmt, spanStart)
	p.tree.SetExpr(stmt, expr)
	return p.finish(stmt, spanStart)
}

func (p *parser) parseIf() ast.NodeID {
	spanStart := p.span()
	p.advance() // skip `if`

	node := p.tree.Add(ast.KindIfStmt, spanStart)
	p.tree.SetExpr(node, p.parseExpr())
	p.tree.SetBody(node, p.parseBlock())

	if p.tryConsume("else") {
		if p.Token.Is("if") {
			p.tree.SetElse(node, p.parseIf())
		} else {
			p.tree.SetElse(node, p.parseBlock())
		}
	}
	return p.finish(node, spanStart)
}

func (p *parser) parseLoop() ast.NodeID {
	spanStart := p.span()
	p.advance() // skip `loop`
	node := p.tree.Add(ast.KindLoopStmt, spanStart)
	p.tree.SetBody(node, p.parseBlock())
	return p.finish(node, spanStart)
}

func (p *parser) parseJump(kind ast.Kind) ast.NodeID {
	span := p.span()
	p.advance()
	return p.tree.Add(kind, span)
}

func (p *parser) parseReturn() ast.NodeID {
	spanStart := p.span()
	p.advance() // skip `return`
	node := p.tree.Add(ast.KindReturnStmt, spanStart)
	if !p.Token.Is(";") && !p.Token.Is("}") && !lexer.IsEOF(p.Token) {
		p.tree.SetExpr(node, p.parseExpr())
	}
	return p.finish(node, spanStart)
}

// parsePrint parses `println!("fmt", expr, name = expr, ...)`.
func (p *parser) parsePrint() ast.NodeID {
	spanStart := p.span()
	p.advance() // skip `println!`
	node := p.tree.Add(ast.KindPrintStmt, spanStart)

	if !p.expect("(") {
		return p.finish(node, spanStart)
	}

	if s, ok := p.Token.(lexer.TokString); ok {
		p.tree.Node(node).Value = s.Raw
		p.advance()
	} else {
		p.errorExpected("string literal")
	}

	for p.tryConsume(",") {
		if p.Token.Is(")") {
			break
		}
		if ident, ok := p.Token.(lexer.TokIdent); ok && p.peek().Is("=") {
			p.advance() // name
			p.advance() // `=`
			named := p.tree.AddValue(ast.KindNamedArg, ident.Raw, ident.Span())
			p.tree.SetExpr(named, p.parseExpr())
			p.tree.AddKid(node, p.finish(named, ident.Span()))
			continue
		}
		p.tree.AddKid(node, p.parseExpr())
	}

	p.expect(")")
	return p.finish(node, spanStart)
}
