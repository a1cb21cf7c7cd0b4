package lsp

import (
	"github.com/gluax-lang/lsp"
	"github.com/trust-lang/trustc/frontend/ast"
)

// InlayHint shows the inferred type after every unannotated let binding.
func (h *Handler) InlayHint(p *lsp.InlayHintParams) ([]lsp.InlayHint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	analysis := h.analysisAt(p.TextDocument.URI)
	if analysis == nil || analysis.Ast == nil || len(analysis.Diags) > 0 {
		return nil, nil
	}

	tree := analysis.Ast
	kind := lsp.InlayHintKindType
	var hints []lsp.InlayHint
	tree.Walk(tree.Root, func(id ast.NodeID) bool {
		n := tree.Node(id)
		if n.Kind != ast.KindLetDecl || n.Type.Valid() {
			return true
		}
		pat := tree.Node(n.Kids[0])
		if pat.Kind != ast.KindVarPattern || !ast.Known(pat.Ty) {
			return true
		}
		hints = append(hints, lsp.InlayHint{
			Position: lsp.Position{
				Line:      pat.Span.LineEnd - 1,
				Character: pat.Span.ColumnEnd,
			},
			Label: []lsp.InlayHintLabelPart{
				{Value: ": " + pat.Ty.String()},
			},
			Kind: &kind,
		})
		return true
	})
	return hints, nil
}
