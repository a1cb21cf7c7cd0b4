package codegen

import (
	"github.com/trust-lang/trustc/frontend/ast"
)

// structDef is the C record synthesized for one tuple shape.
type structDef struct {
	Name   string
	Fields []ast.Type
}

// collectStructs walks the tree in source order and registers every tuple
// shape found in a resolved type.
func (cg *Codegen) collectStructs(root ast.NodeID) {
	cg.Ast.Walk(root, func(id ast.NodeID) bool {
		cg.registerType(cg.node(id).Ty)
		return true
	})
}

// registerType adds the records t needs, element tuples before their
// container. The first definition of a name wins.
func (cg *Codegen) registerType(t ast.Type) {
	switch t := t.(type) {
	case ast.Array:
		cg.registerType(t.Elem)
	case ast.Tuple:
		for _, e := range t.Elems {
			cg.registerType(e)
		}
		name := ast.StructName(t)
		if _, ok := cg.structSeen[name]; ok {
			return
		}
		cg.structSeen[name] = struct{}{}
		cg.structs = append(cg.structs, structDef{Name: name, Fields: t.Elems})
	}
}

func (cg *Codegen) generateStructs() {
	for _, st := range cg.structs {
		cg.ln("typedef struct {")
		cg.pushIndent()
		for i, field := range st.Fields {
			cg.ln("%s;", cg.declarator(field, fieldName(i)))
		}
		cg.popIndent()
		cg.ln("} %s;", st.Name)
		cg.ln("")
	}
}
