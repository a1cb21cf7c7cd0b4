package main

import (
	"os"
	"path/filepath"

	codegen "github.com/trust-lang/trustc/backend"
	"github.com/trust-lang/trustc/frontend/sema"
)

type BuildCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
}

func (b *BuildCmd) Run() error {
	absPath, err := filepath.Abs(b.Path)
	if err != nil {
		return err
	}

	pAnalysis, err := sema.AnalyzeProject(absPath)
	if err != nil {
		return err
	}
	if err := reportAnalysis(os.Stderr, pAnalysis.Main); err != nil {
		return err
	}

	code, err := codegen.GenerateProject(pAnalysis)
	if err != nil {
		return err
	}

	outPath := pAnalysis.OutPath()
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(code), 0644)
}
