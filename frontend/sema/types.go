package sema

import (
	"fmt"

	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

// resolveType turns a type annotation into an ast.Type. An absent
// annotation resolves to nil.
func (a *Analysis) resolveType(id ast.NodeID) ast.Type {
	if !id.Valid() {
		return nil
	}
	n := a.node(id)
	var ty ast.Type
	switch n.Kind {
	case ast.KindTypeI32:
		ty = ast.I32{}
	case ast.KindTypeBool:
		ty = ast.Bool{}
	case ast.KindTypeArray:
		arr := ast.Array{Elem: a.resolveType(n.Type)}
		if n.Value != "" {
			size, err := lexer.ParseNumber(n.Value)
			if err != nil || size <= 0 {
				a.errorAt(id, "Array size must be greater than zero")
			} else {
				arr.Size, arr.Sized = size, true
			}
		}
		ty = arr
	case ast.KindTypeTuple:
		if len(n.Kids) == 0 {
			a.errorAt(id, "Empty tuple is not supported")
			return nil
		}
		tuple := ast.Tuple{Elems: make([]ast.Type, len(n.Kids))}
		for i, kid := range n.Kids {
			tuple.Elems[i] = a.resolveType(kid)
		}
		ty = tuple
	case ast.KindError:
		return nil
	default:
		panic(fmt.Sprintf("sema: unexpected type node %s", n.Kind))
	}
	n.Ty = ty
	return ty
}

// unsized drops the length of array types, leaving anything else alone.
func unsized(t ast.Type) ast.Type {
	if arr, ok := t.(ast.Array); ok {
		arr.Size, arr.Sized = 0, false
		return arr
	}
	return t
}
