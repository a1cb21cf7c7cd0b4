package common

import (
	"slices"
	"testing"

	protocol "github.com/gluax-lang/lsp"
	"github.com/nalgeon/be"
)

func TestStack(t *testing.T) {
	var s Stack[int]
	be.Equal(t, s.Len(), 0)
	_, ok := s.Pop()
	be.True(t, !ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	top, _ := s.Peek()
	bottom, _ := s.Bottom()
	be.Equal(t, top, 3)
	be.Equal(t, bottom, 1)
	be.Equal(t, slices.Collect(s.Backward()), []int{3, 2, 1})

	v, ok := s.Pop()
	be.True(t, ok)
	be.Equal(t, v, 3)
	be.Equal(t, s.Len(), 2)

	s.Clear()
	be.Equal(t, s.Len(), 0)
}

func TestSpanContains(t *testing.T) {
	span := SpanNew(2, 3, 5, 4)
	tests := []struct {
		line, col uint32
		want      bool
	}{
		{1, 9, false},
		{2, 4, false},
		{2, 5, true},
		{2, 80, true},
		{3, 1, true},
		{3, 4, true},
		{3, 5, false},
		{4, 1, false},
	}
	for _, tt := range tests {
		be.Equal(t, span.Contains(tt.line, tt.col), tt.want)
	}
}

func TestSpanRange(t *testing.T) {
	span := SpanNew(1, 1, 5, 7)
	r := span.ToRange()
	be.Equal(t, r.Start.Line, uint32(0))
	be.Equal(t, r.Start.Character, uint32(4))
	be.Equal(t, r.End.Character, uint32(7))
	be.Equal(t, span.Pos(), "1:5")

	joined := SpanFrom(SpanNew(1, 1, 2, 3), SpanNew(4, 4, 1, 9))
	be.Equal(t, joined, SpanNew(1, 4, 2, 9))
}

func TestHasErrors(t *testing.T) {
	be.True(t, !HasErrors(nil))
	warn := NewDiagnostic(protocol.DiagnosticSeverityWarning, "hmm", SpanDefault())
	be.True(t, !HasErrors([]Diagnostic{*warn}))
	diags := []Diagnostic{*warn, *ErrorDiag("boom", SpanDefault())}
	be.True(t, HasErrors(diags))
}
