package sema

import (
	"github.com/trust-lang/trustc/frontend/ast"
)

// checkFunction declares the function in the enclosing scope before its
// body is checked, so it may call itself but nothing declared after it.
func (a *Analysis) checkFunction(id ast.NodeID) {
	n := a.node(id)

	sig := ast.Function{Params: make([]ast.Type, len(n.Kids))}
	for i, param := range n.Kids {
		p := a.node(param)
		if p.Type.Valid() {
			sig.Params[i] = a.resolveType(p.Type)
		} else if ty, ok := a.settled[param]; ok {
			sig.Params[i] = ty
		} else {
			a.untyped = true
		}
	}
	sig.Ret = a.resolveType(n.Type)
	if arr, ok := sig.Ret.(ast.Array); ok && !arr.Sized {
		a.errorAt(id, "Array return type of '%s' must be sized", n.Value)
	}
	isMain := n.Value == "main" && len(n.Kids) == 0
	if isMain && sig.Ret != nil && !ast.IsI32(sig.Ret) {
		a.errorAt(id, "Function 'main' must return 'i32' or nothing")
	}
	n.Ty = sig.Ret

	a.declare(&Symbol{Kind: SymFn, Name: n.Value, Type: sig, Node: id})

	prevFn, prevLoops := a.fn, a.loops
	a.fn, a.loops = &funcState{name: n.Value, ret: sig.Ret, main: isMain}, 0
	a.pushScope()

	for i, param := range n.Kids {
		p := a.node(param)
		p.Ty = sig.Params[i]
		a.declare(&Symbol{Kind: SymVar, Name: p.Value, Type: sig.Params[i], Node: param})
	}
	a.checkBlock(n.Body)

	if sig.Ret != nil && !a.blockReturns(n.Body) {
		a.errorAt(id, "Function '%s' may not return on all paths", n.Value)
	}

	a.popScope()
	a.fn, a.loops = prevFn, prevLoops
}

func (a *Analysis) checkReturn(id ast.NodeID) {
	n := a.node(id)
	var rtype ast.Type
	if n.Expr.Valid() {
		rtype = a.inferExpr(n.Expr)
	}

	if a.fn == nil {
		a.errorAt(id, "Return outside function")
		return
	}

	ret := a.fn.ret
	switch {
	case ret == nil && n.Expr.Valid() && a.fn.main:
		if ast.Known(rtype) && !ast.IsI32(rtype) {
			a.errorAt(id, "Function 'main' must return 'i32' or nothing")
		}
	case ret == nil && n.Expr.Valid():
		a.errorAt(id, "Function '%s' does not return a value", a.fn.name)
	case ret != nil && !n.Expr.Valid():
		a.errorAt(id, "Missing return value, expected '%s'", ret)
	case !ast.Compatible(ret, rtype):
		a.errorAt(id, "Return type '%s' does not match '%s'", rtype, ret)
	}
	n.Ty = ret
}

// blockReturns looks only at the last statement of the block.
func (a *Analysis) blockReturns(id ast.NodeID) bool {
	kids := a.node(id).Kids
	if len(kids) == 0 {
		return false
	}
	return a.stmtReturns(kids[len(kids)-1])
}

func (a *Analysis) stmtReturns(id ast.NodeID) bool {
	n := a.node(id)
	switch n.Kind {
	case ast.KindReturnStmt:
		return true
	case ast.KindIfStmt:
		return n.Else.Valid() && a.blockReturns(n.Body) && a.stmtReturns(n.Else)
	case ast.KindBlock:
		return a.blockReturns(id)
	default:
		return false
	}
}

// settleParams gives every unannotated parameter of tree its final type: the
// one its first call fixed, or i32 when no call did.
func settleParams(tree *ast.Ast) map[ast.NodeID]ast.Type {
	settled := make(map[ast.NodeID]ast.Type)
	tree.Walk(tree.Root, func(id ast.NodeID) bool {
		n := tree.Node(id)
		if n.Kind != ast.KindParam || n.Type.Valid() {
			return true
		}
		if n.Ty == nil {
			settled[id] = ast.I32{}
		} else {
			settled[id] = n.Ty
		}
		return true
	})
	return settled
}
