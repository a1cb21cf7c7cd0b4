package codegen

import (
	"github.com/trust-lang/trustc/frontend/ast"
)

// globalInitDeferred reports whether a top-level let needs the initializer
// function to set its value.
func (cg *Codegen) globalInitDeferred(let ast.NodeID) bool {
	n := cg.node(let)
	if !n.Expr.Valid() {
		return false
	}
	if cg.Ast.Kind(n.Kids[0]) == ast.KindTuplePattern {
		return true
	}
	return cg.node(n.Kids[0]).Value != "_" && !cg.isConst(n.Expr)
}

// generateGlobals declares every top-level binding at file scope. Constant
// initializers are emitted inline.
func (cg *Codegen) generateGlobals(items []ast.NodeID) {
	wrote := false
	for _, item := range items {
		if cg.Ast.Kind(item) != ast.KindLetDecl {
			continue
		}
		n := cg.node(item)
		pat := cg.node(n.Kids[0])

		vars := []*ast.Node{pat}
		if pat.Kind == ast.KindTuplePattern {
			vars = vars[:0]
			for _, v := range pat.Kids {
				vars = append(vars, cg.node(v))
			}
		}

		for _, v := range vars {
			if v.Value == "_" {
				continue
			}
			decl := cg.declarator(v.Ty, v.Value)
			if pat.Kind == ast.KindVarPattern && n.Expr.Valid() && !cg.globalInitDeferred(item) {
				cg.ln("%s = %s;", decl, cg.genInit(n.Expr))
			} else {
				cg.ln("%s;", decl)
			}
			wrote = true
		}
	}
	if wrote {
		cg.ln("")
	}
}

// generateInitBody emits the top-level statements that must run before
// main, in source order, and reports whether there were any.
func (cg *Codegen) generateInitBody(items []ast.NodeID) bool {
	start := cg.buf().Len()
	for _, item := range items {
		switch cg.Ast.Kind(item) {
		case ast.KindFunctionDecl:
		case ast.KindLetDecl:
			if !cg.globalInitDeferred(item) {
				continue
			}
			n := cg.node(item)
			pat := n.Kids[0]
			if cg.Ast.Kind(pat) == ast.KindTuplePattern {
				cg.genTupleLet(pat, n.Expr, false)
			} else {
				p := cg.node(pat)
				cg.assignValue(p.Value, p.Ty, n.Expr)
			}
		default:
			cg.genStmt(item)
		}
	}
	return cg.buf().Len() > start
}
