package parser

import "github.com/trust-lang/trustc/frontend/ast"

func (p *parser) parseUnaryExpr() ast.NodeID {
	var op ast.UnaryOp
	switch p.Token.AsString() {
	case "!":
		op = ast.UnaryOpNot
	case "-":
		op = ast.UnaryOpNeg
	case "+":
		op = ast.UnaryOpPlus
	default:
		return p.parsePrimaryExpr()
	}

	spanStart := p.span()
	p.advance() // consume the operator
	operand := p.parseUnaryExpr()

	unary := p.tree.Add(ast.KindUnary, spanStart)
	p.tree.Node(unary).UnOp = op
	p.tree.SetExpr(unary, operand)
	return p.finish(unary, spanStart)
}
