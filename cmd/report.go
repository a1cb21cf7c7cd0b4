package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trust-lang/trustc/common"
	"github.com/trust-lang/trustc/frontend/sema"
)

// reportAnalysis prints the diagnostics of a and returns its error.
func reportAnalysis(w io.Writer, a *sema.Analysis) error {
	if len(a.Diags) == 0 {
		return nil
	}
	code, _ := os.ReadFile(a.Src)
	printDiagnostics(w, a.Src, string(code), a.Diags)
	return a.Err()
}

// printDiagnostics writes each diagnostic as `path:line:col: severity: msg`
// followed by the source line and a caret under the column.
func printDiagnostics(w io.Writer, path, code string, diags []common.Diagnostic) {
	lines := strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n")
	for _, d := range diags {
		line, col := int(d.Range.Start.Line), int(d.Range.Start.Character)
		severity := "error"
		if !common.IsError(d) {
			severity = "warning"
		}
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, line+1, col+1, severity, d.Message)
		if line < len(lines) {
			src := lines[line]
			fmt.Fprintf(w, "    %s\n", src)
			fmt.Fprintf(w, "    %s^\n", caretPadding(src, col))
		}
	}
}

// caretPadding keeps tabs so the caret lines up with the source above it.
func caretPadding(src string, col int) string {
	var sb strings.Builder
	i := 0
	for _, r := range src {
		if i >= col {
			break
		}
		i++
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
