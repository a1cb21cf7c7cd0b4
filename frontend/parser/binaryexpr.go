package parser

import (
	"github.com/trust-lang/trustc/frontend/ast"
)

const precLowest = 1

func getBinaryOperatorPrecedence(op string) (int, ast.BinaryOp, bool) {
	switch op {
	// Logical
	case "||":
		return 1, ast.BinaryOpLogicalOr, true
	case "&&":
		return 2, ast.BinaryOpLogicalAnd, true

	// Equality
	case "==":
		return 3, ast.BinaryOpEqual, true
	case "!=":
		return 3, ast.BinaryOpNotEqual, true

	// Relational
	case "<":
		return 4, ast.BinaryOpLess, true
	case ">":
		return 4, ast.BinaryOpGreater, true
	case "<=":
		return 4, ast.BinaryOpLessEqual, true
	case ">=":
		return 4, ast.BinaryOpGreaterEqual, true

	// Add / sub
	case "+":
		return 5, ast.BinaryOpAdd, true
	case "-":
		return 5, ast.BinaryOpSub, true

	// Mul / div / mod
	case "*":
		return 6, ast.BinaryOpMul, true
	case "/":
		return 6, ast.BinaryOpDiv, true
	case "%":
		return 6, ast.BinaryOpMod, true
	}

	return 0, ast.BinaryOpInvalid, false
}

// parseBinaryExpr is precedence climbing. Every operator is left-associative:
// the right operand is parsed one level tighter and the loop folds leftwards.
func (p *parser) parseBinaryExpr(minPrec int) ast.NodeID {
	left := p.parseUnaryExpr()

	for {
		prec, binOp, ok := getBinaryOperatorPrecedence(p.Token.AsString())
		if !ok || prec < minPrec {
			break
		}
		p.advance()

		right := p.parseBinaryExpr(prec + 1)

		span := SpanFrom(p.tree.Node(left).Span, p.tree.Node(right).Span)
		bin := p.tree.Add(ast.KindBinary, span)
		p.tree.Node(bin).BinOp = binOp
		p.tree.AddKid(bin, left)
		p.tree.AddKid(bin, right)
		left = bin
	}

	return left
}
