package sema

import (
	"github.com/trust-lang/trustc/frontend/ast"
)

func (a *Analysis) checkLet(id ast.NodeID) {
	n := a.node(id)
	declared := a.resolveType(n.Type)

	hasInit := n.Expr.Valid()
	var inferred ast.Type
	if hasInit {
		inferred = a.inferExpr(n.Expr)
	}
	mutable := n.Mut || !hasInit

	pat := n.Kids[0]
	switch a.Ast.Kind(pat) {
	case ast.KindVarPattern:
		a.bindVar(pat, declared, inferred, hasInit, mutable)
	case ast.KindTuplePattern:
		a.bindTuple(pat, declared, inferred, hasInit, mutable)
	}
	n.Ty = a.node(pat).Ty
}

// bindingType picks the type a binding ends up with: the declared one when
// present, with an unsized array annotation taking the initializer's length.
func bindingType(declared, inferred ast.Type) ast.Type {
	if declared == nil {
		return inferred
	}
	if da, ok := declared.(ast.Array); ok && !da.Sized {
		if ia, ok := inferred.(ast.Array); ok && ia.Sized {
			da.Size, da.Sized = ia.Size, true
			return da
		}
	}
	return declared
}

func (a *Analysis) bindVar(pat ast.NodeID, declared, inferred ast.Type, hasInit, mutable bool) {
	p := a.node(pat)
	if p.Value == "_" {
		if hasInit {
			a.errorAt(pat, "Cannot assign to wildcard '_'")
		}
		return
	}
	if !ast.Compatible(declared, inferred) {
		a.errorAt(pat, "Type mismatch: declared '%s' vs initialized '%s'", declared, inferred)
	}

	ty := bindingType(declared, inferred)
	if arr, ok := ty.(ast.Array); ok && !arr.Sized {
		a.errorAt(pat, "Cannot determine the size of array '%s'", p.Value)
	}
	p.Ty = ty
	a.declare(&Symbol{
		Kind:       SymVar,
		Name:       p.Value,
		Type:       ty,
		Mutable:    mutable,
		Node:       pat,
		Unassigned: !hasInit && ty == nil,
	})
}

func (a *Analysis) bindTuple(pat ast.NodeID, declared, inferred ast.Type, hasInit, mutable bool) {
	p := a.node(pat)
	if !ast.Compatible(declared, inferred) {
		a.errorAt(pat, "Type mismatch: declared '%s' vs initialized '%s'", declared, inferred)
	}

	ty := bindingType(declared, inferred)
	var elems []ast.Type
	switch t := ty.(type) {
	case nil:
		elems = make([]ast.Type, len(p.Kids))
	case ast.Tuple:
		if len(t.Elems) != len(p.Kids) {
			a.errorAt(pat, "Tuple pattern expects %d elements, got %d", len(p.Kids), len(t.Elems))
		}
		elems = t.Elems
	default:
		a.errorAt(pat, "Tuple pattern requires a tuple, got '%s'", t)
	}
	p.Ty = ty

	for i, v := range p.Kids {
		var elem ast.Type
		if i < len(elems) {
			elem = elems[i]
		}
		a.bindVar(v, nil, elem, hasInit, mutable)
	}
}

func (a *Analysis) checkAssign(id ast.NodeID) {
	n := a.node(id)
	target := n.Kids[0]
	if sym := a.firstAssignment(target); sym != nil {
		rtype := a.inferExpr(n.Expr)
		sym.Type, sym.Unassigned = rtype, false
		a.node(sym.Node).Ty = rtype
		a.node(target).Ty = rtype
		return
	}
	ltype := a.inferExpr(target)
	rtype := a.inferExpr(n.Expr)

	base := target
	for a.Ast.Kind(base) == ast.KindIndex {
		base = a.node(base).Kids[0]
	}
	sym := a.resolve(a.node(base).Value)
	if sym == nil {
		return
	}

	if !sym.Mutable {
		a.errorAt(base, "Cannot assign to immutable variable '%s'", sym.Name)
	}
	if !ast.Compatible(ltype, rtype) {
		a.errorAt(id, "Type mismatch in assignment: '%s' vs '%s'", ast.TypeName(ltype), ast.TypeName(rtype))
	}
}

// firstAssignment returns the unassigned binding that target names, if any.
func (a *Analysis) firstAssignment(target ast.NodeID) *Symbol {
	t := a.node(target)
	if t.Kind != ast.KindId {
		return nil
	}
	sym := a.resolve(t.Value)
	if sym == nil || !sym.Unassigned {
		return nil
	}
	a.addHover(t.Span, sym)
	return sym
}
