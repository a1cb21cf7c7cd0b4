// Package codegen lowers an analyzed Trust program to C.
package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/trust-lang/trustc/frontend"
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/sema"
)

type Analysis = sema.Analysis

// ErrHasDiagnostics is returned when asked to generate code for an analysis
// that reported anything.
var ErrHasDiagnostics = errors.New("codegen: analysis has diagnostics")

const indentUnit = "    "

type bufCtx struct {
	buf strings.Builder
}

// Codegen holds the state of one generation run.
type Codegen struct {
	Analysis *Analysis
	Ast      *ast.Ast

	tempIdx int
	indent  int

	bufCtx bufCtx

	structs    []structDef
	structSeen map[string]struct{}

	fn *funcCtx // function being generated, nil for the global initializer
}

type funcCtx struct {
	name   string
	ret    ast.Type
	isMain bool
}

// Generate returns the C translation of a. It refuses analyses with
// diagnostics.
func Generate(a *Analysis) (string, error) {
	if len(a.Diags) > 0 {
		return "", fmt.Errorf("%w (%d)", ErrHasDiagnostics, len(a.Diags))
	}
	if a.Ast == nil {
		return "", errors.New("codegen: analysis has no syntax tree")
	}

	cg := &Codegen{
		Analysis:   a,
		Ast:        a.Ast,
		structSeen: make(map[string]struct{}),
	}
	cg.bufCtx.buf.Grow(1024 * 2)
	cg.generate()
	return removeRedundantBlankLines(cg.buf().String()), nil
}

func (cg *Codegen) node(id ast.NodeID) *ast.Node {
	return cg.Ast.Node(id)
}

func (cg *Codegen) buf() *strings.Builder {
	return &cg.bufCtx.buf
}

func (cg *Codegen) newBuf() bufCtx {
	old := cg.bufCtx
	cg.bufCtx = bufCtx{}
	cg.bufCtx.buf.Grow(1024)
	return old
}

func (cg *Codegen) restoreBuf(old bufCtx) string {
	snippet := cg.bufCtx.buf.String()
	cg.bufCtx = old
	return snippet
}

func (cg *Codegen) writeIndent() {
	for range cg.indent {
		cg.writeString(indentUnit)
	}
}

func (cg *Codegen) pushIndent() { cg.indent++ }
func (cg *Codegen) popIndent() {
	if cg.indent == 0 {
		panic("codegen: popIndent underflow")
	}
	cg.indent--
}

func (cg *Codegen) writef(format string, args ...any) {
	fmt.Fprintf(&cg.bufCtx.buf, format, args...)
}

func (cg *Codegen) writeByte(b byte) {
	cg.bufCtx.buf.WriteByte(b)
}

func (cg *Codegen) writeString(s string) {
	cg.bufCtx.buf.WriteString(s)
}

func (cg *Codegen) ln(format string, args ...any) {
	if format == "" && len(args) == 0 {
		cg.writeByte('\n')
		return
	}
	cg.writeIndent()
	cg.writef(format, args...)
	cg.writeByte('\n')
}

func (cg *Codegen) temp() string {
	name := fmt.Sprintf(frontend.TEMP_PREFIX, cg.tempIdx)
	cg.tempIdx++
	return name
}

func (cg *Codegen) loopIndex() string {
	name := fmt.Sprintf(frontend.LOOP_INDEX, cg.tempIdx)
	cg.tempIdx++
	return name
}

func (cg *Codegen) generate() {
	root := cg.node(cg.Ast.Root)

	headers(cg)
	cg.ln("")

	cg.collectStructs(cg.Ast.Root)
	cg.generateStructs()

	// the initializer body is built first so globals know which lets it
	// takes over
	oldBuf := cg.newBuf()
	cg.pushIndent()
	hasInit := cg.generateInitBody(root.Kids)
	cg.popIndent()
	initBody := cg.restoreBuf(oldBuf)

	cg.generateGlobals(root.Kids)
	cg.generatePrototypes(root.Kids)

	main := cg.findMain(root.Kids)
	if hasInit {
		storage := "static "
		if !main.Valid() {
			storage = ""
		}
		cg.ln("%svoid %s(void) {", storage, frontend.INIT_FUNC)
		cg.writeString(initBody)
		cg.ln("}")
		cg.ln("")
	}

	for _, item := range root.Kids {
		if cg.Ast.Kind(item) == ast.KindFunctionDecl {
			cg.genFunction(item, hasInit && item == main)
			cg.ln("")
		}
	}
}
