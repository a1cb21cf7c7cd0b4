package codegen

import (
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/frontend/ast"
)

func (cg *Codegen) genExpr(id ast.NodeID) string {
	n := cg.node(id)
	switch n.Kind {
	case ast.KindNumber, ast.KindBool, ast.KindId:
		return n.Value
	case ast.KindString:
		return `"` + n.Value + `"`
	case ast.KindBinary:
		return fmt.Sprintf("(%s %s %s)", cg.genExpr(n.Kids[0]), n.BinOp, cg.genExpr(n.Kids[1]))
	case ast.KindUnary:
		return fmt.Sprintf("(%s%s)", n.UnOp, cg.genExpr(n.Expr))
	case ast.KindCall:
		return n.Value + "(" + strings.Join(cg.genExprs(n.Kids), ", ") + ")"
	case ast.KindIndex:
		return cg.genExpr(n.Kids[0]) + "[" + cg.genExpr(n.Kids[1]) + "]"
	case ast.KindArrayLiteral, ast.KindArrayRepeat, ast.KindTupleLiteral:
		if cg.needsCopy(id) {
			tmp := cg.temp()
			cg.declareVar(tmp, n.Ty, id)
			return tmp
		}
		if n.Kind == ast.KindTupleLiteral {
			return "(" + cg.ctype(n.Ty) + ")" + cg.genInit(id)
		}
		return "(" + cg.declarator(n.Ty, "") + ")" + cg.genInit(id)
	default:
		panic(fmt.Sprintf("codegen: unexpected expression %s", n.Kind))
	}
}

func (cg *Codegen) genExprs(ids []ast.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = cg.genExpr(id)
	}
	return out
}

// genInit renders id for an initializer position, where aggregate literals
// take their bare brace form.
func (cg *Codegen) genInit(id ast.NodeID) string {
	n := cg.node(id)
	switch n.Kind {
	case ast.KindArrayLiteral:
		elems := make([]string, len(n.Kids))
		for i, kid := range n.Kids {
			elems[i] = cg.genInit(kid)
		}
		return "{" + strings.Join(elems, ", ") + "}"
	case ast.KindArrayRepeat:
		arr, _ := n.Ty.(ast.Array)
		value := cg.genInit(n.Kids[0])
		elems := make([]string, arr.Size)
		for i := range elems {
			elems[i] = value
		}
		return "{" + strings.Join(elems, ", ") + "}"
	case ast.KindTupleLiteral:
		fields := make([]string, len(n.Kids))
		for i, kid := range n.Kids {
			fields[i] = "." + fieldName(i) + " = " + cg.genInit(kid)
		}
		return "{" + strings.Join(fields, ", ") + "}"
	default:
		return cg.genExpr(id)
	}
}

// isConst reports whether id may initialize a file-scope variable.
func (cg *Codegen) isConst(id ast.NodeID) bool {
	n := cg.node(id)
	switch n.Kind {
	case ast.KindNumber, ast.KindBool:
		return true
	case ast.KindUnary:
		return cg.isConst(n.Expr)
	case ast.KindBinary, ast.KindArrayLiteral, ast.KindTupleLiteral:
		for _, kid := range n.Kids {
			if !cg.isConst(kid) {
				return false
			}
		}
		return true
	case ast.KindArrayRepeat:
		return cg.isConst(n.Kids[0])
	default:
		return false
	}
}

func isAggregateLiteral(k ast.Kind) bool {
	return k == ast.KindArrayLiteral || k == ast.KindArrayRepeat
}

// needsCopy reports whether the aggregate literal id holds an array that is
// not itself a literal, anywhere in its nesting. C cannot initialize from
// such a value, so these literals are filled in element by element.
func (cg *Codegen) needsCopy(id ast.NodeID) bool {
	n := cg.node(id)
	var kids []ast.NodeID
	switch n.Kind {
	case ast.KindArrayLiteral, ast.KindTupleLiteral:
		kids = n.Kids
	case ast.KindArrayRepeat:
		kids = n.Kids[:1]
	default:
		return false
	}
	for _, kid := range kids {
		switch k := cg.node(kid); k.Kind {
		case ast.KindArrayLiteral, ast.KindArrayRepeat, ast.KindTupleLiteral:
			if cg.needsCopy(kid) {
				return true
			}
		default:
			if _, ok := isSizedArray(k.Ty); ok {
				return true
			}
		}
	}
	return false
}
