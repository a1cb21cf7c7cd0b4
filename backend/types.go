package codegen

import (
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/frontend/ast"
)

func fieldName(i int) string {
	return fmt.Sprintf("f%d", i)
}

// ctype maps a type to its C spelling. Unknown types lower as int and arrays
// as a pointer to their element.
func (cg *Codegen) ctype(t ast.Type) string {
	switch t := t.(type) {
	case nil, ast.I32:
		return "int"
	case ast.Bool:
		return "bool"
	case ast.Tuple:
		return ast.StructName(t)
	case ast.Array:
		return cg.ctype(t.Elem) + " *"
	default:
		panic(fmt.Sprintf("codegen: no C type for %s", t))
	}
}

// declarator declares name with type t, expanding sized arrays into
// `name[N]` suffixes. An empty name yields the bare type name.
func (cg *Codegen) declarator(t ast.Type, name string) string {
	if arr, ok := t.(ast.Array); ok && arr.Sized {
		return cg.declarator(arr.Elem, fmt.Sprintf("%s[%d]", name, arr.Size))
	}
	base := cg.ctype(t)
	switch {
	case name == "":
		return strings.TrimSpace(base)
	case strings.HasPrefix(name, "["), strings.HasSuffix(base, "*"):
		return base + name
	default:
		return base + " " + name
	}
}

// pointerDeclarator declares name as a pointer to the element of an array
// type, the form arrays take as parameters and return values. Other types
// are declared normally.
func (cg *Codegen) pointerDeclarator(t ast.Type, name string) string {
	arr, ok := t.(ast.Array)
	if !ok {
		return cg.declarator(t, name)
	}
	if _, nested := arr.Elem.(ast.Array); nested {
		return cg.declarator(arr.Elem, "(*"+name+")")
	}
	return cg.declarator(arr.Elem, "*"+name)
}

func isSizedArray(t ast.Type) (ast.Array, bool) {
	arr, ok := t.(ast.Array)
	return arr, ok && arr.Sized
}
