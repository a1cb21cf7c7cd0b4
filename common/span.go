package common

import (
	"fmt"

	protocol "github.com/gluax-lang/lsp"
)

// Span represents a range in a source file. Lines and columns are 1-based,
// ColumnEnd is inclusive.
type Span struct {
	LineStart, LineEnd     uint32
	ColumnStart, ColumnEnd uint32
	Source                 string // empty == unknown
}

func adjustN(n uint32) uint32 {
	if n <= 1 {
		return 0
	}
	return n - 1
}

// ToRange converts the span into a 0-based LSP range.
func (s Span) ToRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      adjustN(s.LineStart),
			Character: adjustN(s.ColumnStart),
		},
		End: protocol.Position{
			Line:      adjustN(s.LineEnd),
			Character: s.ColumnEnd,
		},
	}
}

func (s Span) ToLocation() protocol.Location {
	return protocol.Location{
		URI:   FilePathToURI(s.Source),
		Range: s.ToRange(),
	}
}

// Pos renders the start of the span as line:col.
func (s Span) Pos() string {
	return fmt.Sprintf("%d:%d", s.LineStart, s.ColumnStart)
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (%s)", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd, s.Source)
}

// Contains reports whether the 1-based position line:col falls inside s.
func (s Span) Contains(line, col uint32) bool {
	if line < s.LineStart || line > s.LineEnd {
		return false
	}
	if line == s.LineStart && col < s.ColumnStart {
		return false
	}
	if line == s.LineEnd && col > s.ColumnEnd {
		return false
	}
	return true
}

// SpanDefault is the 1:1 span of an unknown source.
func SpanDefault() Span {
	return SpanNew(1, 1, 1, 1)
}

func SpanNew(lineStart, lineEnd, columnStart, columnEnd uint32) Span {
	return Span{
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		ColumnStart: columnStart,
		ColumnEnd:   columnEnd,
	}
}

func SpanSrc(src string) Span {
	span := SpanDefault()
	span.Source = src
	return span
}

// SpanFrom joins the outer bounds of two spans.
func SpanFrom(start, end Span) Span {
	return Span{
		LineStart:   start.LineStart,
		LineEnd:     end.LineEnd,
		ColumnStart: start.ColumnStart,
		ColumnEnd:   end.ColumnEnd,
		Source:      start.Source,
	}
}
