package sema

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/trust-lang/trustc/common"
	"github.com/trust-lang/trustc/frontend"
	"github.com/trust-lang/trustc/frontend/lexer"
	"github.com/trust-lang/trustc/frontend/parser"
)

// ErrCompilationFailed is wrapped by every error caused by diagnostics in
// the compiled source.
var ErrCompilationFailed = errors.New("compilation failed")

// AnalyzeFile runs the lexer, the parser and the checker over code. Each
// stage only runs when the previous one reported nothing.
func AnalyzeFile(src, code string, opts Options) (a *Analysis) {
	a = &Analysis{Src: src, Options: opts}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("internal error while analyzing %s: %v\n%s", src, r, debug.Stack())
			msg := fmt.Sprintf("internal compiler error: %v", r)
			a.Diags = append(a.Diags, *common.ErrorDiag(msg, common.SpanSrc(src)))
		}
	}()

	tokens, diag := lexer.Lex(src, code)
	if diag != nil {
		a.Diags = append(a.Diags, *diag)
		return a
	}

	tree, diags := parser.Parse(tokens)
	a.Ast = tree
	if len(diags) > 0 {
		a.Diags = append(a.Diags, diags...)
		return a
	}

	a.check(tree)
	return a
}

// ProjectAnalysis is the result of analyzing a trust.toml project.
type ProjectAnalysis struct {
	Workspace string
	Config    frontend.TrustToml
	Main      *Analysis
}

func (pa *ProjectAnalysis) OutPath() string {
	return pa.Config.OutPath(pa.Workspace)
}

// LoadConfig reads and validates the trust.toml in workspace.
func LoadConfig(workspace string) (frontend.TrustToml, error) {
	path := common.FilePathClean(workspace + "/" + frontend.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		return frontend.TrustToml{}, fmt.Errorf("reading %s: %w", frontend.ConfigFileName, err)
	}
	cfg, err := frontend.HandleTrustToml(string(content))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// AnalyzeProject analyzes the entry file of the project in workspace. The
// returned error covers I/O and configuration problems only; diagnostics
// are left on the analysis.
func AnalyzeProject(workspace string) (*ProjectAnalysis, error) {
	cfg, err := LoadConfig(workspace)
	if err != nil {
		return nil, err
	}

	entry := cfg.EntryPath(workspace)
	code, err := os.ReadFile(entry)
	if err != nil {
		return nil, fmt.Errorf("reading entry file: %w", err)
	}

	return &ProjectAnalysis{
		Workspace: workspace,
		Config:    cfg,
		Main:      AnalyzeFile(entry, string(code), Options{Library: cfg.Lib}),
	}, nil
}
