package codegen

import (
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/sema"
)

func (cg *Codegen) genStmt(id ast.NodeID) {
	n := cg.node(id)
	switch n.Kind {
	case ast.KindLetDecl:
		cg.genLet(id)
	case ast.KindAssignStmt:
		cg.assignValue(cg.genExpr(n.Kids[0]), cg.node(n.Kids[0]).Ty, n.Expr)
	case ast.KindIfStmt:
		cg.genIf(id)
	case ast.KindLoopStmt:
		cg.ln("while (1) {")
		cg.genBlock(n.Body)
		cg.ln("}")
	case ast.KindBlock:
		cg.ln("{")
		cg.genBlock(id)
		cg.ln("}")
	case ast.KindBreakStmt:
		cg.ln("break;")
	case ast.KindContinueStmt:
		cg.ln("continue;")
	case ast.KindReturnStmt:
		cg.genReturn(id)
	case ast.KindPrintStmt:
		cg.genPrint(id)
	case ast.KindExprStmt:
		cg.ln("%s;", cg.genExpr(n.Expr))
	default:
		panic(fmt.Sprintf("codegen: unexpected statement %s", n.Kind))
	}
}

// genBlock emits the statements of a block one level deeper.
func (cg *Codegen) genBlock(id ast.NodeID) {
	cg.pushIndent()
	for _, stmt := range cg.node(id).Kids {
		cg.genStmt(stmt)
	}
	cg.popIndent()
}

func (cg *Codegen) genIf(id ast.NodeID) {
	n := cg.node(id)
	cg.ln("if (%s) {", cg.genExpr(n.Expr))
	cg.genBlock(n.Body)
	cg.ln("}")
	if !n.Else.Valid() {
		return
	}
	cg.ln("else {")
	if cg.Ast.Kind(n.Else) == ast.KindIfStmt {
		cg.pushIndent()
		cg.genIf(n.Else)
		cg.popIndent()
	} else {
		cg.genBlock(n.Else)
	}
	cg.ln("}")
}

func (cg *Codegen) genReturn(id ast.NodeID) {
	n := cg.node(id)
	fn := cg.fn
	if !n.Expr.Valid() {
		if fn != nil && fn.isMain {
			cg.ln("return 0;")
		} else {
			cg.ln("return;")
		}
		return
	}
	if arr, ok := isSizedArray(fn.ret); ok && !fn.isMain {
		buf := retBuf(fn.name)
		cg.copyArrayFrom(buf, arr, n.Expr)
		cg.ln("return %s;", buf)
		return
	}
	cg.ln("return %s;", cg.genExpr(n.Expr))
}

func (cg *Codegen) genPrint(id ast.NodeID) {
	n := cg.node(id)
	format, _ := sema.CFormat(n.Value)

	var args strings.Builder
	for _, arg := range n.Kids {
		if cg.Ast.Kind(arg) == ast.KindNamedArg {
			arg = cg.node(arg).Expr
		}
		args.WriteString(", ")
		args.WriteString(cg.genExpr(arg))
	}
	cg.ln(`printf("%s\n"%s);`, format, args.String())
}
