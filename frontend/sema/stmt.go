package sema

import (
	"fmt"

	"github.com/trust-lang/trustc/frontend/ast"
)

func (a *Analysis) checkStmt(id ast.NodeID) {
	switch kind := a.Ast.Kind(id); kind {
	case ast.KindFunctionDecl:
		a.checkFunction(id)
	case ast.KindLetDecl:
		a.checkLet(id)
	case ast.KindAssignStmt:
		a.checkAssign(id)
	case ast.KindIfStmt:
		a.checkIf(id)
	case ast.KindLoopStmt:
		a.loops++
		a.checkScopedBlock(a.node(id).Body)
		a.loops--
	case ast.KindBlock:
		a.checkScopedBlock(id)
	case ast.KindBreakStmt, ast.KindContinueStmt:
		if a.loops == 0 {
			keyword := "break"
			if kind == ast.KindContinueStmt {
				keyword = "continue"
			}
			a.errorAt(id, "'%s' outside of loop", keyword)
		}
	case ast.KindReturnStmt:
		a.checkReturn(id)
	case ast.KindPrintStmt:
		a.checkPrint(id)
	case ast.KindExprStmt:
		a.inferExpr(a.node(id).Expr)
	case ast.KindError:
	default:
		panic(fmt.Sprintf("sema: unexpected statement %s", kind))
	}
}

func (a *Analysis) checkBlock(id ast.NodeID) {
	for _, stmt := range a.node(id).Kids {
		a.checkStmt(stmt)
	}
}

func (a *Analysis) checkScopedBlock(id ast.NodeID) {
	a.pushScope()
	a.checkBlock(id)
	a.popScope()
}

func (a *Analysis) checkIf(id ast.NodeID) {
	n := a.node(id)
	cond := a.inferExpr(n.Expr)
	if ast.Known(cond) && !ast.IsBool(cond) {
		a.errorAt(n.Expr, "Condition must be bool, got '%s'", cond)
	}
	a.checkScopedBlock(n.Body)
	if n.Else.Valid() {
		// `else if` opens its own scopes
		a.checkStmt(n.Else)
	}
}

func (a *Analysis) checkPrint(id ast.NodeID) {
	n := a.node(id)
	for _, arg := range n.Kids {
		if a.Ast.Kind(arg) == ast.KindNamedArg {
			a.node(arg).Ty = a.inferExpr(a.node(arg).Expr)
			continue
		}
		a.inferExpr(arg)
	}

	if _, count := CFormat(n.Value); count != len(n.Kids) {
		a.errorAt(id, "Format string has %d placeholders but %d arguments were supplied", count, len(n.Kids))
	}
}
