package sema

import (
	"fmt"
	"math"

	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

// inferExpr checks the expression id, records its type on the node and
// returns it. nil means the type could not be determined.
func (a *Analysis) inferExpr(id ast.NodeID) ast.Type {
	if !id.Valid() {
		return nil
	}
	ty := a.inferExprKind(id)
	a.node(id).Ty = ty
	return ty
}

func (a *Analysis) inferExprKind(id ast.NodeID) ast.Type {
	n := a.node(id)
	switch n.Kind {
	case ast.KindNumber:
		v, err := lexer.ParseNumber(n.Value)
		if err != nil || v > a.literalLimit(id) {
			a.errorAt(id, "Integer literal out of range for i32")
		}
		return ast.I32{}
	case ast.KindBool:
		return ast.Bool{}
	case ast.KindString:
		if !a.Ast.EnclosedBy(id, ast.KindPrintStmt) {
			a.errorAt(id, "String literals are only allowed in println!")
		}
		return nil
	case ast.KindId:
		return a.inferIdent(id)
	case ast.KindBinary:
		return a.inferBinary(id)
	case ast.KindUnary:
		return a.inferUnary(id)
	case ast.KindCall:
		return a.checkCall(id)
	case ast.KindIndex:
		return a.inferIndex(id)
	case ast.KindArrayLiteral:
		return a.inferArrayLiteral(id)
	case ast.KindArrayRepeat:
		return a.inferArrayRepeat(id)
	case ast.KindTupleLiteral:
		if len(n.Kids) == 0 {
			a.errorAt(id, "Empty tuple is not supported")
			return nil
		}
		tuple := ast.Tuple{Elems: make([]ast.Type, len(n.Kids))}
		for i, kid := range n.Kids {
			tuple.Elems[i] = a.inferExpr(kid)
		}
		return tuple
	case ast.KindError:
		return nil
	default:
		panic(fmt.Sprintf("sema: unexpected expression %s", n.Kind))
	}
}

func (a *Analysis) inferIdent(id ast.NodeID) ast.Type {
	sym := a.lookup(a.node(id).Value, id)
	if sym == nil {
		return nil
	}
	if sym.Kind == SymFn {
		a.errorAt(id, "Function '%s' used as a value", sym.Name)
		return nil
	}
	if sym.Unassigned {
		a.errorAt(id, "Cannot infer the type of '%s' before its first assignment", sym.Name)
	}
	return sym.Type
}

// literalLimit is the largest value the integer literal id may hold. A
// directly negated literal may reach the magnitude of the i32 minimum.
func (a *Analysis) literalLimit(id ast.NodeID) int64 {
	if p := a.node(id).Parent; p.Valid() {
		if pn := a.node(p); pn.Kind == ast.KindUnary && pn.UnOp == ast.UnaryOpNeg {
			return -math.MinInt32
		}
	}
	return math.MaxInt32
}

func (a *Analysis) inferBinary(id ast.NodeID) ast.Type {
	n := a.node(id)
	lt := a.inferExpr(n.Kids[0])
	rt := a.inferExpr(n.Kids[1])

	// println! arguments are checked permissively
	quiet := a.Ast.EnclosedBy(id, ast.KindPrintStmt)
	bad := func(want func(ast.Type) bool) bool {
		return !quiet && ((ast.Known(lt) && !want(lt)) || (ast.Known(rt) && !want(rt)))
	}

	switch op := n.BinOp; {
	case op.IsArithmetic():
		if bad(ast.IsI32) {
			a.errorAt(id, "Arithmetic requires i32")
		}
		return ast.I32{}
	case op.IsLogical():
		if bad(ast.IsBool) {
			a.errorAt(id, "Logical operators require bool")
		}
		return ast.Bool{}
	case op.IsComparison():
		if bad(ast.IsI32) {
			a.errorAt(id, "Comparison requires i32")
		}
		return ast.Bool{}
	default:
		panic(fmt.Sprintf("sema: unexpected binary operator %s", op))
	}
}

func (a *Analysis) inferUnary(id ast.NodeID) ast.Type {
	n := a.node(id)
	t := a.inferExpr(n.Expr)
	quiet := a.Ast.EnclosedBy(id, ast.KindPrintStmt)

	switch n.UnOp {
	case ast.UnaryOpNot:
		if !quiet && ast.Known(t) && !ast.IsBool(t) {
			a.errorAt(id, "Logical not requires bool")
		}
		if t == nil {
			return ast.Bool{}
		}
	case ast.UnaryOpNeg, ast.UnaryOpPlus:
		if !quiet && ast.Known(t) && !ast.IsI32(t) {
			a.errorAt(id, "Unary + or - requires i32")
		}
		if t == nil {
			return ast.I32{}
		}
	default:
		panic(fmt.Sprintf("sema: unexpected unary operator %s", n.UnOp))
	}
	return t
}

// literalIndex returns the value of a literal index, optionally signed.
func (a *Analysis) literalIndex(id ast.NodeID) (int64, bool) {
	n := a.node(id)
	sign := int64(1)
	if n.Kind == ast.KindUnary && n.UnOp != ast.UnaryOpNot {
		if n.UnOp == ast.UnaryOpNeg {
			sign = -1
		}
		n = a.node(n.Expr)
	}
	if n.Kind != ast.KindNumber {
		return 0, false
	}
	v, err := lexer.ParseNumber(n.Value)
	if err != nil {
		return 0, false
	}
	return sign * v, true
}

func (a *Analysis) inferIndex(id ast.NodeID) ast.Type {
	n := a.node(id)
	bt := a.inferExpr(n.Kids[0])
	it := a.inferExpr(n.Kids[1])

	if ast.Known(it) && !ast.IsI32(it) {
		a.errorAt(id, "Array index must be i32, got '%s'", it)
	}
	v, isLiteral := a.literalIndex(n.Kids[1])
	if isLiteral && v <= 0 {
		a.errorAt(id, "Array index must be greater than zero")
	}

	switch t := bt.(type) {
	case nil:
		return nil
	case ast.Array:
		if isLiteral && t.Sized && v >= t.Size {
			a.errorAt(id, "Array index %d out of bounds for '%s'", v, t)
		}
		return t.Elem
	default:
		a.errorAt(id, "Cannot index into non-array type '%s'", t)
		return nil
	}
}

func (a *Analysis) inferArrayLiteral(id ast.NodeID) ast.Type {
	n := a.node(id)
	if len(n.Kids) == 0 {
		a.errorAt(id, "Empty array literal")
		return nil
	}

	var elem ast.Type
	mixed := false
	for _, kid := range n.Kids {
		t := a.inferExpr(kid)
		if t == nil {
			continue
		}
		if elem == nil {
			elem = t
		} else if !ast.Equal(elem, t) {
			mixed = true
		}
	}
	if mixed {
		a.errorAt(id, "Heterogeneous array literal types")
	}
	return ast.Array{Elem: elem, Size: int64(len(n.Kids)), Sized: true}
}

func (a *Analysis) inferArrayRepeat(id ast.NodeID) ast.Type {
	n := a.node(id)
	elem := a.inferExpr(n.Kids[0])
	count := n.Kids[1]
	a.inferExpr(count)

	if a.Ast.Kind(count) != ast.KindNumber {
		a.errorAt(id, "Array repeat count must be an integer literal")
		return ast.Array{Elem: elem}
	}
	size, err := lexer.ParseNumber(a.node(count).Value)
	if err != nil || size <= 0 {
		a.errorAt(id, "Array repeat count must be greater than zero")
		return ast.Array{Elem: elem}
	}
	return ast.Array{Elem: elem, Size: size, Sized: true}
}
