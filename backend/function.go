package codegen

import (
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/frontend"
	"github.com/trust-lang/trustc/frontend/ast"
)

func retBuf(fn string) string {
	return fmt.Sprintf(frontend.RET_BUF, fn)
}

func (cg *Codegen) isMain(id ast.NodeID) bool {
	n := cg.node(id)
	return n.Kind == ast.KindFunctionDecl && n.Value == "main" && len(n.Kids) == 0
}

func (cg *Codegen) findMain(items []ast.NodeID) ast.NodeID {
	for _, item := range items {
		if cg.isMain(item) {
			return item
		}
	}
	return ast.NoNode
}

// signature renders the C function header. Array parameters and array
// returns become element pointers.
func (cg *Codegen) signature(id ast.NodeID) string {
	if cg.isMain(id) {
		return "int main(void)"
	}
	n := cg.node(id)

	params := make([]string, len(n.Kids))
	for i, param := range n.Kids {
		p := cg.node(param)
		params[i] = cg.pointerDeclarator(p.Ty, p.Value)
	}
	if len(params) == 0 {
		params = append(params, "void")
	}

	head := n.Value + "(" + strings.Join(params, ", ") + ")"
	if n.Ty == nil {
		return "void " + head
	}
	return cg.pointerDeclarator(n.Ty, head)
}

func (cg *Codegen) generatePrototypes(items []ast.NodeID) {
	wrote := false
	for _, item := range items {
		if cg.Ast.Kind(item) == ast.KindFunctionDecl {
			cg.ln("%s;", cg.signature(item))
			wrote = true
		}
	}
	if wrote {
		cg.ln("")
	}
}

func (cg *Codegen) genFunction(id ast.NodeID, callInit bool) {
	n := cg.node(id)
	cg.fn = &funcCtx{name: n.Value, ret: n.Ty, isMain: cg.isMain(id)}
	defer func() { cg.fn = nil }()

	cg.ln("%s {", cg.signature(id))
	cg.pushIndent()
	if arr, ok := isSizedArray(n.Ty); ok && !cg.fn.isMain {
		cg.ln("static %s;", cg.declarator(arr, retBuf(n.Value)))
	}
	if callInit {
		cg.ln("%s();", frontend.INIT_FUNC)
	}
	cg.popIndent()

	cg.genBlock(n.Body)

	if cg.fn.isMain {
		cg.pushIndent()
		cg.ln("return 0;")
		cg.popIndent()
	}
	cg.ln("}")
}
