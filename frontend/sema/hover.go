package sema

import "github.com/trust-lang/trustc/common"

// Hover ties a source range to the symbol it declares or uses.
type Hover struct {
	Span   common.Span
	Symbol *Symbol
}

func (a *Analysis) addHover(span common.Span, sym *Symbol) {
	a.Hovers = append(a.Hovers, Hover{Span: span, Symbol: sym})
}

// HoverAt returns the description of the symbol at the 1-based position, or
// false when there is none. The innermost range wins.
func (a *Analysis) HoverAt(line, col uint32) (Hover, bool) {
	var (
		found Hover
		ok    bool
	)
	for _, h := range a.Hovers {
		if !h.Span.Contains(line, col) {
			continue
		}
		if !ok || narrower(h.Span, found.Span) {
			found, ok = h, true
		}
	}
	return found, ok
}

func narrower(a, b common.Span) bool {
	if a.LineEnd-a.LineStart != b.LineEnd-b.LineStart {
		return a.LineEnd-a.LineStart < b.LineEnd-b.LineStart
	}
	return a.ColumnEnd-a.ColumnStart < b.ColumnEnd-b.ColumnStart
}
