package codegen

import (
	"fmt"

	"github.com/trust-lang/trustc/frontend/ast"
)

func (cg *Codegen) genLet(id ast.NodeID) {
	n := cg.node(id)
	pat := n.Kids[0]
	switch cg.Ast.Kind(pat) {
	case ast.KindVarPattern:
		cg.genVarLet(pat, n.Expr)
	case ast.KindTuplePattern:
		cg.genTupleLet(pat, n.Expr, true)
	}
}

func (cg *Codegen) genVarLet(pat, init ast.NodeID) {
	p := cg.node(pat)
	if p.Value == "_" {
		return
	}
	if !init.Valid() || !cg.mentions(init, p.Value) {
		cg.declareVar(p.Value, p.Ty, init)
		return
	}

	// A C declarator is in scope inside its own initializer, so a shadowing
	// binding that reads the outer one is built in a temporary first.
	tmp := cg.temp()
	cg.declareVar(tmp, p.Ty, init)
	if arr, ok := isSizedArray(p.Ty); ok {
		cg.ln("%s;", cg.declarator(p.Ty, p.Value))
		cg.copyArray(p.Value, tmp, arr)
		return
	}
	cg.ln("%s = %s;", cg.declarator(p.Ty, p.Value), tmp)
}

// declareVar declares name with type t and the value of init, if any.
func (cg *Codegen) declareVar(name string, t ast.Type, init ast.NodeID) {
	decl := cg.declarator(t, name)

	arr, isArray := isSizedArray(t)
	switch {
	case !init.Valid():
		cg.ln("%s;", decl)
	case cg.needsCopy(init):
		cg.ln("%s;", decl)
		cg.assignInit(name, init)
	case isArray && !isAggregateLiteral(cg.Ast.Kind(init)):
		cg.ln("%s;", decl)
		cg.copyArrayFrom(name, arr, init)
	default:
		cg.ln("%s = %s;", decl, cg.genInit(init))
	}
}

// mentions reports whether the expression id refers to name.
func (cg *Codegen) mentions(id ast.NodeID, name string) bool {
	found := false
	cg.Ast.Walk(id, func(kid ast.NodeID) bool {
		n := cg.node(kid)
		if (n.Kind == ast.KindId || n.Kind == ast.KindCall) && n.Value == name {
			found = true
		}
		return !found
	})
	return found
}

// genTupleLet evaluates init once into a temporary and reads each field
// from it. With declare unset the variables already exist.
func (cg *Codegen) genTupleLet(pat, init ast.NodeID, declare bool) {
	p := cg.node(pat)
	if !init.Valid() {
		if declare {
			for _, v := range p.Kids {
				if vn := cg.node(v); vn.Value != "_" {
					cg.ln("%s;", cg.declarator(vn.Ty, vn.Value))
				}
			}
		}
		return
	}

	tmp := cg.temp()
	cg.declareVar(tmp, p.Ty, init)
	for i, v := range p.Kids {
		vn := cg.node(v)
		if vn.Value == "_" {
			continue
		}
		src := fmt.Sprintf("%s.%s", tmp, fieldName(i))
		arr, isArray := isSizedArray(vn.Ty)
		switch {
		case isArray:
			if declare {
				cg.ln("%s;", cg.declarator(vn.Ty, vn.Value))
			}
			cg.copyArray(vn.Value, src, arr)
		case declare:
			cg.ln("%s = %s;", cg.declarator(vn.Ty, vn.Value), src)
		default:
			cg.ln("%s = %s;", vn.Value, src)
		}
	}
}

// assignValue stores the value of src into dst, copying arrays element by
// element.
func (cg *Codegen) assignValue(dst string, t ast.Type, src ast.NodeID) {
	if cg.needsCopy(src) {
		// the literal may read dst, so it is completed before the store
		tmp := cg.temp()
		cg.declareVar(tmp, t, src)
		cg.copyVar(dst, tmp, t)
		return
	}
	if arr, ok := isSizedArray(t); ok {
		cg.copyArrayFrom(dst, arr, src)
		return
	}
	cg.ln("%s = %s;", dst, cg.genExpr(src))
}

// assignInit stores the aggregate literal id into dst one field or element
// at a time.
func (cg *Codegen) assignInit(dst string, id ast.NodeID) {
	n := cg.node(id)
	switch n.Kind {
	case ast.KindArrayLiteral:
		for i, kid := range n.Kids {
			cg.assignInit(fmt.Sprintf("%s[%d]", dst, i), kid)
		}
	case ast.KindTupleLiteral:
		for i, kid := range n.Kids {
			cg.assignInit(dst+"."+fieldName(i), kid)
		}
	case ast.KindArrayRepeat:
		arr, _ := n.Ty.(ast.Array)
		value := cg.temp()
		cg.declareVar(value, arr.Elem, n.Kids[0])
		i := cg.loopIndex()
		cg.ln("for (int %s = 0; %s < %d; %s++) {", i, i, arr.Size, i)
		cg.pushIndent()
		cg.copyVar(dst+"["+i+"]", value, arr.Elem)
		cg.popIndent()
		cg.ln("}")
	default:
		cg.assignValue(dst, n.Ty, id)
	}
}

// copyVar assigns the variable src to dst.
func (cg *Codegen) copyVar(dst, src string, t ast.Type) {
	if arr, ok := isSizedArray(t); ok {
		cg.copyArray(dst, src, arr)
		return
	}
	cg.ln("%s = %s;", dst, src)
}

// copyArrayFrom copies the array expression src into dst. Anything but a
// variable or an element is evaluated once into a pointer first.
func (cg *Codegen) copyArrayFrom(dst string, arr ast.Array, src ast.NodeID) {
	from := cg.genExpr(src)
	switch cg.Ast.Kind(src) {
	case ast.KindId, ast.KindIndex:
	default:
		tmp := cg.temp()
		cg.ln("%s = %s;", cg.pointerDeclarator(arr, tmp), from)
		from = tmp
	}
	cg.copyArray(dst, from, arr)
}

func (cg *Codegen) copyArray(dst, src string, arr ast.Array) {
	i := cg.loopIndex()
	cg.ln("for (int %s = 0; %s < %d; %s++) {", i, i, arr.Size, i)
	cg.pushIndent()
	elemDst, elemSrc := dst+"["+i+"]", src+"["+i+"]"
	if inner, ok := isSizedArray(arr.Elem); ok {
		cg.copyArray(elemDst, elemSrc, inner)
	} else {
		cg.ln("%s = %s;", elemDst, elemSrc)
	}
	cg.popIndent()
	cg.ln("}")
}
