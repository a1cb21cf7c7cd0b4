// Package ast holds the Trust syntax tree. Nodes live in one arena and refer
// to each other by NodeID; the parent link is a plain index used for lookups.
package ast

import (
	"github.com/trust-lang/trustc/common"
	"github.com/trust-lang/trustc/frontend/lexer"
)

type NodeID int32

// NoNode marks an absent optional slot or the parent of the root.
const NoNode NodeID = -1

func (id NodeID) Valid() bool { return id >= 0 }

// Node is a tagged tree node. Which fields are meaningful depends on Kind, see
// the Kind constants.
type Node struct {
	Kind   Kind
	Parent NodeID
	Span   common.Span
	Value  string
	BinOp  BinaryOp
	UnOp   UnaryOp
	Mut    bool
	Kids   []NodeID
	Type   NodeID // type annotation
	Expr   NodeID
	Body   NodeID
	Else   NodeID

	// Ty is the resolved type, filled in by the analyzer.
	Ty Type
}

type Ast struct {
	nodes       []Node
	Root        NodeID
	TokenStream []lexer.Token
}

func New() *Ast {
	return &Ast{Root: NoNode}
}

// Add appends a node and returns its id. All slots start empty.
func (a *Ast) Add(kind Kind, span common.Span) NodeID {
	a.nodes = append(a.nodes, Node{
		Kind:   kind,
		Parent: NoNode,
		Span:   span,
		Type:   NoNode,
		Expr:   NoNode,
		Body:   NoNode,
		Else:   NoNode,
	})
	return NodeID(len(a.nodes) - 1)
}

// AddValue is Add for nodes carrying a name or lexeme.
func (a *Ast) AddValue(kind Kind, value string, span common.Span) NodeID {
	id := a.Add(kind, span)
	a.nodes[id].Value = value
	return id
}

func (a *Ast) Node(id NodeID) *Node {
	return &a.nodes[id]
}

func (a *Ast) Kind(id NodeID) Kind {
	if !id.Valid() {
		return KindInvalid
	}
	return a.nodes[id].Kind
}

func (a *Ast) Len() int { return len(a.nodes) }

func (a *Ast) adopt(parent, child NodeID) NodeID {
	if child.Valid() {
		a.nodes[child].Parent = parent
	}
	return child
}

func (a *Ast) AddKid(parent, child NodeID) {
	if !child.Valid() {
		return
	}
	a.nodes[parent].Kids = append(a.nodes[parent].Kids, a.adopt(parent, child))
}

func (a *Ast) SetType(parent, child NodeID) { a.nodes[parent].Type = a.adopt(parent, child) }
func (a *Ast) SetExpr(parent, child NodeID) { a.nodes[parent].Expr = a.adopt(parent, child) }
func (a *Ast) SetBody(parent, child NodeID) { a.nodes[parent].Body = a.adopt(parent, child) }
func (a *Ast) SetElse(parent, child NodeID) { a.nodes[parent].Else = a.adopt(parent, child) }

// Children returns every child of id in source order.
func (a *Ast) Children(id NodeID) []NodeID {
	n := &a.nodes[id]
	out := make([]NodeID, 0, len(n.Kids)+4)
	out = append(out, n.Kids...)
	for _, slot := range []NodeID{n.Type, n.Expr, n.Body, n.Else} {
		if slot.Valid() {
			out = append(out, slot)
		}
	}
	return out
}

// Walk visits id and its descendants depth-first. Returning false from fn
// skips the children of that node.
func (a *Ast) Walk(id NodeID, fn func(NodeID) bool) {
	if !id.Valid() || !fn(id) {
		return
	}
	for _, child := range a.Children(id) {
		a.Walk(child, fn)
	}
}

// EnclosedBy reports whether any ancestor of id has kind k.
func (a *Ast) EnclosedBy(id NodeID, k Kind) bool {
	for p := a.nodes[id].Parent; p.Valid(); p = a.nodes[p].Parent {
		if a.nodes[p].Kind == k {
			return true
		}
	}
	return false
}

// Context renders the " [at Kind 'value']" suffix used by diagnostics.
func (a *Ast) Context(id NodeID) string {
	if !id.Valid() {
		return ""
	}
	n := &a.nodes[id]
	value := n.Value
	switch n.Kind {
	case KindBinary:
		value = n.BinOp.String()
	case KindUnary:
		value = n.UnOp.String()
	}
	if value == "" {
		return ""
	}
	return " [at " + n.Kind.String() + " '" + value + "']"
}
