package sema

import (
	"slices"

	"github.com/trust-lang/trustc/frontend/ast"
)

// checkCall checks a call and returns the callee's return type. An
// unannotated parameter takes the type of its first argument; later calls
// are checked against it.
func (a *Analysis) checkCall(id ast.NodeID) ast.Type {
	n := a.node(id)
	sym := a.lookup(n.Value, id)

	args := make([]ast.Type, len(n.Kids))
	for i, kid := range n.Kids {
		args[i] = a.inferExpr(kid)
	}

	if sym == nil {
		return nil
	}
	if sym.Kind != SymFn {
		a.errorAt(id, "'%s' is not a function", n.Value)
		return nil
	}

	sig := sym.Type.(ast.Function)
	if len(args) != len(sig.Params) {
		a.errorAt(id, "Call to '%s' expects %d args, got %d", n.Value, len(sig.Params), len(args))
	}

	params := slices.Clone(sig.Params)
	decl := a.node(sym.Node)
	for i := range min(len(args), len(params)) {
		switch {
		case params[i] == nil:
			if args[i] == nil {
				continue
			}
			// arrays decay to pointers at the call boundary
			params[i] = unsized(args[i])
			a.node(decl.Kids[i]).Ty = params[i]
		case !ast.Compatible(params[i], args[i]):
			a.errorAt(id, "Argument %d type '%s' mismatches '%s'", i, args[i], params[i])
		}
	}
	sig.Params = params
	sym.Type = sig

	if sig.Ret == nil && a.Ast.Kind(n.Parent) != ast.KindExprStmt {
		a.errorAt(id, "Function '%s' does not return a value", n.Value)
	}
	return sig.Ret
}
