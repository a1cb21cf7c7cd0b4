package lexer

import "unicode/utf8"

// reader walks a string rune by rune with one rune of lookahead.
// "\r\n" is reported as a single '\n'.
type reader struct {
	input string
	pos   int
}

func (r *reader) decode(at int) (rune, int) {
	if at >= len(r.input) {
		return 0, 0
	}
	c, w := utf8.DecodeRuneInString(r.input[at:])
	if c == '\r' && at+w < len(r.input) && r.input[at+w] == '\n' {
		return '\n', w + 1
	}
	return c, w
}

// current returns the rune at the read position; ok is false at EOF.
func (r *reader) current() (rune, bool) {
	c, w := r.decode(r.pos)
	return c, w > 0
}

// next returns the rune after the current one.
func (r *reader) next() (rune, bool) {
	_, w := r.decode(r.pos)
	if w == 0 {
		return 0, false
	}
	c, w2 := r.decode(r.pos + w)
	return c, w2 > 0
}

func (r *reader) step() {
	_, w := r.decode(r.pos)
	r.pos += w
}
