package sema

import (
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/frontend/ast"
)

type SymbolKind int

const (
	SymVar SymbolKind = iota
	SymFn
)

func (k SymbolKind) String() string {
	switch k {
	case SymVar:
		return "var"
	case SymFn:
		return "fn"
	default:
		panic("unreachable")
	}
}

// Symbol is a named binding. For functions Type is an ast.Function whose
// parameters may still be fixed by their first call.
type Symbol struct {
	Kind    SymbolKind
	Name    string
	Type    ast.Type
	Mutable bool
	Node    ast.NodeID // declaring node

	// Unassigned marks an unannotated binding declared without a value. Its
	// first assignment decides the type.
	Unassigned bool
}

// Describe renders the symbol the way it would be declared.
func (s *Symbol) Describe() string {
	switch s.Kind {
	case SymFn:
		fn := s.Type.(ast.Function)
		params := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = ast.TypeName(p)
		}
		out := "fn " + s.Name + "(" + strings.Join(params, ", ") + ")"
		if fn.Ret != nil {
			out += " -> " + fn.Ret.String()
		}
		return out
	default:
		mut := ""
		if s.Mutable {
			mut = "mut "
		}
		return "let " + mut + s.Name + ": " + ast.TypeName(s.Type)
	}
}

type Scope struct {
	Symbols map[string]*Symbol
	order   []string
}

func NewScope() *Scope {
	return &Scope{Symbols: make(map[string]*Symbol)}
}

// Add binds sym in this scope. A name may be bound once per scope; the
// new binding still replaces the old one so later checks see it.
func (s *Scope) Add(sym *Symbol) error {
	_, dup := s.Symbols[sym.Name]
	if !dup {
		s.order = append(s.order, sym.Name)
	}
	s.Symbols[sym.Name] = sym
	if dup {
		return fmt.Errorf("Redeclaration of %s '%s'", sym.Kind, sym.Name)
	}
	return nil
}

func (s *Scope) Get(name string) *Symbol {
	return s.Symbols[name]
}

// Names lists the bound names in declaration order.
func (s *Scope) Names() []string {
	return s.order
}
