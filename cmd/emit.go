package main

import (
	"fmt"
	"os"

	codegen "github.com/trust-lang/trustc/backend"
	"github.com/trust-lang/trustc/frontend/sema"
)

type EmitCmd struct {
	File string `arg:"" type:"existingfile" help:"Trust source file."`
	Out  string `help:"Write the C output here instead of stdout." short:"o" type:"path"`
	Lib  bool   `help:"Compile as a library, without requiring main."`
}

func (e *EmitCmd) Run() error {
	code, err := os.ReadFile(e.File)
	if err != nil {
		return err
	}

	analysis := sema.AnalyzeFile(e.File, string(code), sema.Options{Library: e.Lib})
	if err := reportAnalysis(os.Stderr, analysis); err != nil {
		return err
	}

	out, err := codegen.Generate(analysis)
	if err != nil {
		return err
	}
	if e.Out == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(e.Out, []byte(out), 0644)
}
