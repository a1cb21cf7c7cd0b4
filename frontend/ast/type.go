package ast

import (
	"fmt"
	"strings"
)

// Type is a resolved Trust type. A nil Type means unknown.
type Type interface {
	isType()
	String() string
}

type I32 struct{}

type Bool struct{}

type Array struct {
	Elem  Type
	Size  int64
	Sized bool
}

type Tuple struct {
	Elems []Type
}

// Function is the type of a declared function. A nil Ret means it returns
// nothing; a nil entry in Params is a parameter not yet fixed by a call.
type Function struct {
	Params []Type
	Ret    Type
}

func (I32) isType()      {}
func (Bool) isType()     {}
func (Array) isType()    {}
func (Tuple) isType()    {}
func (Function) isType() {}

func (I32) String() string  { return "i32" }
func (Bool) String() string { return "bool" }

func (t Array) String() string {
	if t.Sized {
		return fmt.Sprintf("[%s; %d]", TypeName(t.Elem), t.Size)
	}
	return fmt.Sprintf("[%s]", TypeName(t.Elem))
}

func (t Tuple) String() string {
	names := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		names[i] = TypeName(e)
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func (t Function) String() string {
	names := make([]string, len(t.Params))
	for i, p := range t.Params {
		names[i] = TypeName(p)
	}
	s := "fn(" + strings.Join(names, ", ") + ")"
	if t.Ret != nil {
		s += " -> " + t.Ret.String()
	}
	return s
}

// TypeName is String that tolerates an unknown type.
func TypeName(t Type) string {
	if t == nil {
		return "?"
	}
	return t.String()
}

// Equal compares two types structurally through their canonical form.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

// Known reports whether t and every type nested in it is resolved.
func Known(t Type) bool {
	switch t := t.(type) {
	case nil:
		return false
	case I32, Bool:
		return true
	case Array:
		return Known(t.Elem)
	case Tuple:
		for _, e := range t.Elems {
			if !Known(e) {
				return false
			}
		}
		return true
	case Function:
		return true
	default:
		panic("unreachable")
	}
}

// Compatible reports whether a value of type src may be stored where dst is
// expected. Unknown types are compatible with anything, and an unsized
// array accepts any array of the same element type.
func Compatible(dst, src Type) bool {
	if !Known(dst) || !Known(src) {
		return true
	}
	if da, ok := dst.(Array); ok {
		sa, ok := src.(Array)
		if !ok {
			return false
		}
		if da.Sized && (!sa.Sized || da.Size != sa.Size) {
			return false
		}
		return Compatible(da.Elem, sa.Elem)
	}
	return Equal(dst, src)
}

func IsI32(t Type) bool {
	_, ok := t.(I32)
	return ok
}

func IsBool(t Type) bool {
	_, ok := t.(Bool)
	return ok
}

// StructName is the canonical C record name of a tuple shape.
func StructName(t Tuple) string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = mangle(e)
	}
	return "tuple_" + strings.Join(parts, "_")
}

func mangle(t Type) string {
	switch t := t.(type) {
	case nil:
		return "i32"
	case I32:
		return "i32"
	case Bool:
		return "bool"
	case Array:
		if t.Sized {
			return fmt.Sprintf("arr%d_%s", t.Size, mangle(t.Elem))
		}
		return "ptr_" + mangle(t.Elem)
	case Tuple:
		return StructName(t)
	case Function:
		return "fn"
	default:
		panic("unreachable")
	}
}
