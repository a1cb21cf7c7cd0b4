package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trust-lang/trustc/frontend/sema"
)

type CheckCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
}

func (c *CheckCmd) Run() error {
	absPath, err := filepath.Abs(c.Path)
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
	fmt.Println("no problems found in", pAnalysis.Config.Name)
	return nil
}
