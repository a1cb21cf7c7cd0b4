package lsp

import (
	"github.com/gluax-lang/lsp"
	"github.com/trust-lang/trustc/common"
)

func (h *Handler) DidOpen(p *lsp.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	uri := p.TextDocument.URI
	path, err := common.URIToFilePath(uri)
	if err != nil {
		return nil
	}
	h.fileCache[path] = p.TextDocument.Text
	h.handleDiagnostics(uri, path)
	return nil
}

func (h *Handler) DidChange(p *lsp.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	uri := p.TextDocument.URI
	path, err := common.URIToFilePath(uri)
	if err != nil || len(p.ContentChanges) == 0 {
		return nil
	}
	h.fileCache[path] = p.ContentChanges[len(p.ContentChanges)-1].Text
	h.handleDiagnostics(uri, path)
	return nil
}

func (h *Handler) DidClose(p *lsp.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	delete(h.fileCache, path)
	delete(h.analyses, path)
	return nil
}

func (h *Handler) DidSave(p *lsp.DidSaveTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	uri := p.TextDocument.URI
	path, err := common.URIToFilePath(uri)
	if err != nil {
		return nil
	}
	if p.Text != nil {
		h.fileCache[path] = *p.Text
	}
	h.handleDiagnostics(uri, path)
	return nil
}
