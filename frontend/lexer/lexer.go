package lexer

import (
	"github.com/trust-lang/trustc/common"
)

type diagnostic = common.Diagnostic

// lexer is a hand-rolled, rune-based scanner.
type lexer struct {
	src                    string // source is the file being scanned
	rd                     reader
	line, column           uint32
	savedLine, savedColumn uint32
}

// Lex scans code completely. A lexical error stops scanning and is returned
// as the only diagnostic.
func Lex(src, code string) ([]Token, *diagnostic) {
	var tokens []Token
	lx := newLexer(src, code)
	for {
		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if IsEOF(tok) {
			break
		}
	}
	return tokens, nil
}

func newLexer(src, code string) *lexer {
	return &lexer{
		src:  src,
		rd:   reader{input: code},
		line: 1, column: 1,
		savedLine: 1, savedColumn: 1,
	}
}

func (lx *lexer) currentSpan() common.Span {
	span := common.SpanNew(lx.savedLine, lx.line, lx.savedColumn, max(lx.column-1, 1))
	span.Source = lx.src
	return span
}

func (lx *lexer) cur() (rune, bool)  { return lx.rd.current() }
func (lx *lexer) peek() (rune, bool) { return lx.rd.next() }

func (lx *lexer) isCur(e rune) bool {
	c, ok := lx.cur()
	return ok && c == e
}

func (lx *lexer) isPeek(e rune) bool {
	c, ok := lx.peek()
	return ok && c == e
}

func (lx *lexer) advance() {
	if c, ok := lx.cur(); ok {
		if c == '\n' {
			lx.line++
			lx.column = 1
		} else {
			lx.column++
		}
	}
	lx.rd.step()
}

func (lx *lexer) error(msg string) *diagnostic {
	return common.ErrorDiag(msg, lx.currentSpan())
}

func (lx *lexer) mark() {
	lx.savedLine = lx.line
	lx.savedColumn = lx.column
}

// skipTrivia skips whitespace and comments up to the next token.
func (lx *lexer) skipTrivia() *diagnostic {
	for {
		c, ok := lx.cur()
		switch {
		case !ok:
			lx.mark()
			return nil
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			lx.advance()
		case c == '/' && lx.isPeek('/'):
			for c, ok := lx.cur(); ok && c != '\n'; c, ok = lx.cur() {
				lx.advance()
			}
		case c == '/' && lx.isPeek('*'):
			lx.mark()
			lx.advance()
			lx.advance()
			for {
				c, ok := lx.cur()
				if !ok {
					return lx.error("unterminated multiline comment")
				}
				if c == '*' && lx.isPeek('/') {
					lx.advance()
					lx.advance()
					break
				}
				lx.advance()
			}
		default:
			lx.mark()
			return nil
		}
	}
}

func (lx *lexer) nextToken() (Token, *diagnostic) {
	if diag := lx.skipTrivia(); diag != nil {
		return nil, diag
	}

	if _, ok := lx.cur(); !ok {
		span := common.SpanNew(lx.line, lx.line, lx.column, lx.column)
		span.Source = lx.src
		return TokEOF{span: span}, nil
	}

	if token, err := lx.string(); err != nil || token != nil {
		return token, err
	}

	if token, err := lx.number(); err != nil || token != nil {
		return token, err
	}

	if c, _ := lx.cur(); isIdentStart(c) {
		return lx.word()
	}

	if token := lx.punct(); token != nil {
		return token, nil
	}

	return lx.word()
}
