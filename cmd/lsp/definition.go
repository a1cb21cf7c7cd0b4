package lsp

import "github.com/gluax-lang/lsp"

func (h *Handler) Definition(p *lsp.DefinitionParams) ([]lsp.Location, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	uri := p.TextDocument.URI
	sym := h.symbolAt(uri, p.Position)
	if sym == nil {
		return nil, nil
	}
	analysis := h.analysisAt(uri)
	return []lsp.Location{analysis.Ast.Node(sym.Node).Span.ToLocation()}, nil
}
