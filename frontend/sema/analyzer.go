// Package sema checks a parsed Trust program: scopes, types, mutability and
// return paths. It also decorates the tree with the resolved types the code
// generator reads.
package sema

import (
	"fmt"

	"github.com/trust-lang/trustc/common"
	"github.com/trust-lang/trustc/frontend/ast"
)

type (
	Diagnostic = common.Diagnostic
	Span       = common.Span
)

// Options tune a single analysis.
type Options struct {
	// Library skips the requirement for a `main` function.
	Library bool
}

type Analysis struct {
	Src     string // source file name
	Ast     *ast.Ast
	Diags   []Diagnostic
	Hovers  []Hover
	Options Options

	scopes common.Stack[*Scope]
	fn     *funcState // function being checked, nil at top level
	loops  int        // loop nesting depth inside fn

	settled map[ast.NodeID]ast.Type // unannotated Param -> final type
	untyped bool                    // an unannotated parameter was left open
}

type funcState struct {
	name string
	ret  ast.Type
	main bool // the zero-parameter main, lowered to `int main(void)`
}

// Check analyzes tree and returns the result. tree must be free of parse
// errors.
//
// A function body is checked before any call fixes the types of its
// unannotated parameters. When there are such parameters the program is
// checked again with each one settled to the type its first call gave it,
// or i32 when it is never called, so every node ends up decorated with the
// type the code generator will use.
func Check(tree *ast.Ast, opts Options) *Analysis {
	a := &Analysis{Options: opts}
	a.check(tree)
	if !a.untyped {
		return a
	}
	a = &Analysis{Options: opts, settled: settleParams(tree)}
	a.check(tree)
	return a
}

func (a *Analysis) check(tree *ast.Ast) {
	a.Ast = tree
	a.scopes.Clear()
	a.scopes.Push(NewScope())
	a.checkProgram(tree.Root)
}

// Failed reports whether the analysis produced any error.
func (a *Analysis) Failed() bool {
	return common.HasErrors(a.Diags)
}

// Err wraps ErrCompilationFailed when the analysis has errors.
func (a *Analysis) Err() error {
	if !a.Failed() {
		return nil
	}
	return fmt.Errorf("%w: %s: %d error(s)", ErrCompilationFailed, a.Src, len(a.Diags))
}

func (a *Analysis) node(id ast.NodeID) *ast.Node {
	return a.Ast.Node(id)
}

func (a *Analysis) Error(span Span, msg string) {
	a.Diags = append(a.Diags, *common.ErrorDiag(msg, span))
}

func (a *Analysis) Errorf(span Span, format string, args ...any) {
	a.Error(span, fmt.Sprintf(format, args...))
}

// errorAt reports msg at id, followed by the node context.
func (a *Analysis) errorAt(id ast.NodeID, format string, args ...any) {
	msg := fmt.Sprintf(format, args...) + a.Ast.Context(id)
	a.Error(a.node(id).Span, msg)
}

func (a *Analysis) scope() *Scope {
	s, ok := a.scopes.Peek()
	if !ok {
		panic("sema: empty scope stack")
	}
	return s
}

func (a *Analysis) pushScope() {
	a.scopes.Push(NewScope())
}

func (a *Analysis) popScope() {
	if a.scopes.Len() <= 1 {
		panic("sema: popping the global scope")
	}
	a.scopes.Pop()
}

// declare adds sym to the innermost scope, reporting a redeclaration.
func (a *Analysis) declare(sym *Symbol) {
	if err := a.scope().Add(sym); err != nil {
		a.errorAt(sym.Node, "%s", err.Error())
	}
	if sym.Kind == SymVar {
		a.addHover(a.node(sym.Node).Span, sym)
	}
}

// lookup resolves name from the innermost scope outwards, reporting an
// undeclared identifier at id.
func (a *Analysis) lookup(name string, id ast.NodeID) *Symbol {
	if sym := a.resolve(name); sym != nil {
		a.addHover(a.node(id).Span, sym)
		return sym
	}
	msg := fmt.Sprintf("Use of undeclared identifier '%s'", name)
	if s, ok := a.suggest(name); ok {
		msg += fmt.Sprintf(" (did you mean '%s'?)", s)
	}
	a.Error(a.node(id).Span, msg+a.Ast.Context(id))
	return nil
}

func (a *Analysis) resolve(name string) *Symbol {
	for s := range a.scopes.Backward() {
		if sym := s.Get(name); sym != nil {
			return sym
		}
	}
	return nil
}

func (a *Analysis) checkProgram(id ast.NodeID) {
	for _, item := range a.node(id).Kids {
		a.checkStmt(item)
	}

	if a.Options.Library {
		return
	}
	global, _ := a.scopes.Bottom()
	main := global.Get("main")
	if main == nil || main.Kind != SymFn || len(main.Type.(ast.Function).Params) != 0 {
		a.Error(a.node(id).Span, "Function 'main' with no parameters not defined")
	}
}
