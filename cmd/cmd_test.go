package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/trust-lang/trustc/frontend/sema"
)

func TestNewThenBuild(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")

	be.Err(t, (&NewCmd{Name: dir}).Run(), nil)
	be.Err(t, (&CheckCmd{Path: dir}).Run(), nil)
	be.Err(t, (&BuildCmd{Path: dir}).Run(), nil)

	out, err := os.ReadFile(filepath.Join(dir, "out", "hello.c"))
	be.Err(t, err, nil)
	be.True(t, strings.Contains(string(out), "int main(void) {\n    int answer = 42;\n"))
	be.True(t, strings.Contains(string(out), `printf("answer = %d\n", answer);`))

	ignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	be.Err(t, err, nil)
	be.Equal(t, string(ignore), "out/\n")
}

func TestBuildFailsOnDiagnostics(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "broken")
	be.Err(t, (&NewCmd{Name: dir}).Run(), nil)
	entry := filepath.Join(dir, "src", "main.trust")
	be.Err(t, os.WriteFile(entry, []byte("fn main() { let x = 1; x = 2; }\n"), 0o644), nil)

	err := (&BuildCmd{Path: dir}).Run()
	be.Err(t, err, sema.ErrCompilationFailed)

	_, err = os.Stat(filepath.Join(dir, "out", "broken.c"))
	be.True(t, os.IsNotExist(err))
}

func TestEmitLibrary(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lib.trust")
	dst := filepath.Join(dir, "lib.c")
	be.Err(t, os.WriteFile(src, []byte("fn sq(x: i32) -> i32 { return x * x; }\n"), 0o644), nil)

	be.Err(t, (&EmitCmd{File: src, Out: dst, Lib: true}).Run(), nil)
	out, err := os.ReadFile(dst)
	be.Err(t, err, nil)
	be.True(t, strings.Contains(string(out), "int sq(int x) {\n    return (x * x);\n}\n"))

	err = (&EmitCmd{File: src, Out: dst}).Run()
	be.Err(t, err, sema.ErrCompilationFailed)
}

func TestPrintDiagnostics(t *testing.T) {
	code := "fn main() {\n\tlet x = 5\n}\n"
	a := sema.AnalyzeFile("main.trust", code, sema.Options{})

	var buf bytes.Buffer
	printDiagnostics(&buf, "main.trust", code, a.Diags)
	want := "main.trust:3:1: error: Expected ';' at 3:1, got '}'\n" +
		"    }\n" +
		"    ^\n"
	be.Equal(t, buf.String(), want)
}

func TestCaretPadding(t *testing.T) {
	be.Equal(t, caretPadding("\tlet x", 3), "\t  ")
	be.Equal(t, caretPadding("ab", 5), "  ")
	be.Equal(t, caretPadding("héllo", 2), "  ")
}
