// Package lsp serves Trust diagnostics, hovers and definitions over the
// language server protocol.
package lsp

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	protocol "github.com/gluax-lang/lsp"
	"github.com/trust-lang/trustc/common"
	"github.com/trust-lang/trustc/frontend/sema"
)

func RunLSP() error {
	return NewHandler().Serve(context.Background())
}

type Handler struct {
	*protocol.Server
	fileCache map[string]string         // path -> text
	analyses  map[string]*sema.Analysis // path -> last analysis
	mu        sync.Mutex
	workspace string
}

func NewHandler() *Handler {
	h := &Handler{
		fileCache: make(map[string]string),
		analyses:  make(map[string]*sema.Analysis),
	}
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if p.WorkspaceFolders != nil && len(*p.WorkspaceFolders) > 0 {
		root, err := common.URIToFilePath((*p.WorkspaceFolders)[0].URI)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace folder: %w", err)
		}
		h.workspace = root
	}
	log.Printf("root: %q", h.workspace)

	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		HoverProvider: protocol.NewHoverProviderBool(true),
		TextDocumentSync: protocol.NewTextDocumentSyncOptions(protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
			Save: &protocol.SaveOptions{
				IncludeText: true,
			},
		}),
		InlayHintProvider: protocol.NewInlayHintProviderOptions(protocol.InlayHintOptions{
			ResolveProvider: false,
			WorkDoneProgressOptions: protocol.WorkDoneProgressOptions{
				WorkDoneProgress: false,
			},
		}),
		DefinitionProvider: true,
	}}, nil
}

func (h *Handler) Initialized() error {
	log.Println("Initialized")
	return nil
}

// options reads the project manifest, when there is one, for settings that
// change analysis.
func (h *Handler) options() sema.Options {
	if h.workspace == "" {
		return sema.Options{}
	}
	cfg, err := sema.LoadConfig(h.workspace)
	if err != nil {
		return sema.Options{}
	}
	return sema.Options{Library: cfg.Lib}
}

func (h *Handler) analyze(path string) *sema.Analysis {
	analysis := sema.AnalyzeFile(path, h.fileCache[path], h.options())
	h.analyses[path] = analysis
	return analysis
}

func (h *Handler) handleDiagnostics(uri, path string) {
	analysis := h.analyze(path)
	diags := analysis.Diags
	if diags == nil {
		diags = []common.Diagnostic{}
	}
	h.PublishDiagnostics(uri, diags)
}

// analysisAt returns the last analysis of the document at uri.
func (h *Handler) analysisAt(uri string) *sema.Analysis {
	path, err := common.URIToFilePath(uri)
	if err != nil {
		return nil
	}
	return h.analyses[path]
}

// symbolAt finds the symbol under an LSP position.
func (h *Handler) symbolAt(uri string, pos protocol.Position) *sema.Symbol {
	analysis := h.analysisAt(uri)
	if analysis == nil {
		return nil
	}
	hover, ok := analysis.HoverAt(pos.Line+1, pos.Character+1)
	if !ok {
		return nil
	}
	return hover.Symbol
}
