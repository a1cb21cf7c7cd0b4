package lsp

import (
	"fmt"

	"github.com/gluax-lang/lsp"
)

func (h *Handler) Hover(p *lsp.HoverParams) (*lsp.Hover, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sym := h.symbolAt(p.TextDocument.URI, p.Position)
	if sym == nil {
		return nil, nil
	}

	content := fmt.Sprintf("```trust\n%s\n```\n", sym.Describe())

	return &lsp.Hover{
		Contents: lsp.MarkupContent{
			Kind:  "markdown",
			Value: content,
		},
	}, nil
}
