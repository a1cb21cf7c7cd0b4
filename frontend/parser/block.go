package parser

import (
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

func (p *parser) parseBlock() ast.NodeID {
	spanStart := p.span()
	block := p.tree.Add(ast.KindBlock, spanStart)

	if !p.expect("{") {
		return block
	}

	for !p.Token.Is("}") && !lexer.IsEOF(p.Token) {
		start := p.Pos
		if p.Token.Is("fn") {
			p.tree.AddKid(block, p.errorNode("statement"))
			p.synchronize()
		} else {
			p.tree.AddKid(block, p.parseStmt(0))
		}
		p.ensureProgress(start)
	}

	p.expect("}")
	return p.finish(block, spanStart)
}
