// Package scenario reads compiler test cases written as Markdown. A case
// starts at a heading "Test: <name>" and is made of fenced blocks:
//
//	trust        the program to compile (exactly one)
//	diagnostics  expected diagnostic messages, one substring per line, in order
//	c            a fragment the generated C must contain
//	options      analysis options, one per line ("lib")
//
// A case without a diagnostics fence must compile cleanly.
package scenario

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type FenceKind string

const (
	FenceTrust       FenceKind = "trust"
	FenceDiagnostics FenceKind = "diagnostics"
	FenceC           FenceKind = "c"
	FenceOptions     FenceKind = "options"
)

type Case struct {
	Name        string
	Input       string
	Diagnostics []string
	Fragments   []string
	Library     bool
	Line        int // line of the heading
}

// Extract parses a Markdown document into its test cases.
func Extract(markdown string) ([]Case, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var (
		cases []Case
		cur   *Case
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Input == "" {
			return fmt.Errorf("line %d: test '%s' has no trust fence", cur.Line, cur.Name)
		}
		cases = append(cases, *cur)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, source)
			name, ok := strings.CutPrefix(heading, "Test: ")
			if !ok {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			cur = &Case{Name: name, Line: lineOf(n, source)}

		case *ast.FencedCodeBlock:
			lang := FenceKind(n.Language(source))
			line := lineOf(n, source)
			if cur == nil {
				if lang != "" {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test", line, lang)
				}
				return ast.WalkContinue, nil
			}
			content := strings.TrimRight(fenceContent(n, source), "\n")

			switch lang {
			case FenceTrust:
				if cur.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: test '%s' has more than one trust fence", line, cur.Name)
				}
				cur.Input = content
			case FenceDiagnostics:
				cur.Diagnostics = append(cur.Diagnostics, nonEmptyLines(content)...)
			case FenceC:
				cur.Fragments = append(cur.Fragments, content)
			case FenceOptions:
				for _, opt := range nonEmptyLines(content) {
					switch opt {
					case "lib":
						cur.Library = true
					default:
						return ast.WalkStop, fmt.Errorf("line %d: unknown option '%s'", line, opt)
					}
				}
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence '%s' in test '%s'", line, lang, cur.Name)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func nonEmptyLines(s string) []string {
	var out []string
	for line := range strings.SplitSeq(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// lineOf returns the 1-based line a block node starts on.
func lineOf(node ast.Node, source []byte) int {
	lines := node.Lines()
	if lines.Len() == 0 {
		return 1
	}
	return bytes.Count(source[:lines.At(0).Start], []byte("\n")) + 1
}
