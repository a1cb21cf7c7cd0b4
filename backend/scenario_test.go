package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/trust-lang/trustc/frontend/sema"
	"github.com/trust-lang/trustc/scenario"
)

func TestScenarios(t *testing.T) {
	files, err := filepath.Glob("testdata/*.md")
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".md"), func(t *testing.T) {
			content, err := os.ReadFile(file)
			be.Err(t, err, nil)

			cases, err := scenario.Extract(string(content))
			be.Err(t, err, nil)

			for _, tc := range cases {
				t.Run(tc.Name, func(t *testing.T) {
					runScenario(t, tc)
				})
			}
		})
	}
}

func runScenario(t *testing.T, tc scenario.Case) {
	a := sema.AnalyzeFile("scenario.trust", tc.Input, sema.Options{Library: tc.Library})

	got := make([]string, len(a.Diags))
	for i, d := range a.Diags {
		got[i] = d.Message
	}
	if len(got) != len(tc.Diagnostics) {
		t.Fatalf("got %d diagnostics, want %d:\n%s", len(got), len(tc.Diagnostics), strings.Join(got, "\n"))
	}
	for i, want := range tc.Diagnostics {
		if !strings.Contains(got[i], want) {
			t.Errorf("diagnostic %d: got %q, want it to contain %q", i, got[i], want)
		}
	}

	out, err := Generate(a)
	if len(tc.Diagnostics) > 0 {
		be.Err(t, err, ErrHasDiagnostics)
		return
	}
	be.Err(t, err, nil)
	for _, frag := range tc.Fragments {
		if !strings.Contains(out, frag) {
			t.Errorf("output lacks:\n%s\n\ngot:\n%s", frag, out)
		}
	}
}
