// Package parser builds the arena AST from a token stream. It never stops at
// the first error: mismatches are recorded as diagnostics and parsing goes on.
package parser

import (
	"fmt"

	"github.com/trust-lang/trustc/common"
	"github.com/trust-lang/trustc/frontend/ast"
	"github.com/trust-lang/trustc/frontend/lexer"
)

type Diagnostic = common.Diagnostic

type Span = common.Span

var SpanFrom = common.SpanFrom

type parser struct {
	TokenStream []lexer.Token
	Token       lexer.Token
	Pos         int

	tree    *ast.Ast
	diags   []Diagnostic
	lastErr int // token index of the last recorded diagnostic
}

// Parse builds a Program from tokens. The stream should end with TokEOF; one
// is appended when missing.
func Parse(tokens []lexer.Token) (*ast.Ast, []Diagnostic) {
	if len(tokens) == 0 || !lexer.IsEOF(tokens[len(tokens)-1]) {
		span := common.SpanDefault()
		if len(tokens) > 0 {
			span = tokens[len(tokens)-1].Span()
		}
		tokens = append(tokens[:len(tokens):len(tokens)], lexer.NewTokEOF(span))
	}

	p := &parser{
		TokenStream: tokens,
		Token:       tokens[0],
		tree:        ast.New(),
		lastErr:     -1,
	}
	p.tree.TokenStream = tokens
	p.tree.Root = p.parseProgram()
	return p.tree, p.diags
}

func (p *parser) parseProgram() ast.NodeID {
	spanStart := p.span()
	program := p.tree.Add(ast.KindProgram, spanStart)

	for !lexer.IsEOF(p.Token) {
		start := p.Pos
		var item ast.NodeID
		if p.Token.Is("fn") {
			item = p.parseFunction()
		} else {
			item = p.parseStmt(FlagTopLevel)
		}
		p.tree.AddKid(program, item)
		p.tryConsume(";")
		p.ensureProgress(start)
	}

	p.tree.Node(program).Span = SpanFrom(spanStart, p.prevSpan())
	return program
}

// advance moves the parser forward by one token.
func (p *parser) advance() {
	p.Pos = min(p.Pos+1, len(p.TokenStream)-1)
	p.Token = p.TokenStream[p.Pos]
}

// ensureProgress forces one token of advancement when a rule starting at
// start consumed nothing, so recovery can never stall.
func (p *parser) ensureProgress(start int) {
	if p.Pos == start && !lexer.IsEOF(p.Token) {
		p.advance()
	}
}

func (p *parser) peek() lexer.Token {
	return p.peekOffset(+1)
}

// peekOffset returns the token at p.Pos + n, clamped to the stream.
func (p *parser) peekOffset(n int) lexer.Token {
	idx := p.Pos + n
	if idx < 0 {
		idx = 0
	} else if idx >= len(p.TokenStream) {
		idx = len(p.TokenStream) - 1
	}
	return p.TokenStream[idx]
}

func (p *parser) tryConsume(s string) bool {
	if p.Token.Is(s) {
		p.advance()
		return true
	}
	return false
}

// errorExpected records "Expected <want> at <line>:<col>, got <kind>" for the
// current token, at most once per token.
func (p *parser) errorExpected(want string) {
	if p.lastErr == p.Pos {
		return
	}
	p.lastErr = p.Pos
	msg := fmt.Sprintf("Expected %s at %s, got %s", want, p.span().Pos(), p.Token.Kind())
	p.diags = append(p.diags, *common.ErrorDiag(msg, p.span()))
}

func (p *parser) expect(s string) bool {
	if p.tryConsume(s) {
		return true
	}
	p.errorExpected("'" + s + "'")
	return false
}

func (p *parser) expectIdent() (lexer.TokIdent, bool) {
	if i, ok := p.Token.(lexer.TokIdent); ok {
		p.advance()
		return i, true
	}
	p.errorExpected("identifier")
	return lexer.NewTokIdent("", p.span()), false
}

func (p *parser) spanN(n int) common.Span {
	return p.peekOffset(n).Span()
}

func (p *parser) span() common.Span {
	return p.spanN(0)
}

func (p *parser) prevSpan() common.Span {
	return p.spanN(-1)
}

// errorNode records a mismatch and returns a placeholder node. The offending
// token is skipped unless it closes an enclosing construct.
func (p *parser) errorNode(want string) ast.NodeID {
	p.errorExpected(want)
	id := p.tree.Add(ast.KindError, p.span())
	if !lexer.IsEOF(p.Token) && !p.atCloser() {
		p.advance()
	}
	return id
}

func (p *parser) atCloser() bool {
	switch p.Token.AsString() {
	case ";", "}", ")", "]", ",":
		return true
	}
	return false
}

// parseCommaSeparatedDelimited parses `item (, item)*` up to closing and
// consumes closing. want names an item for diagnostics.
func (p *parser) parseCommaSeparatedDelimited(closing, want string, flags Flags, parse func(*parser)) {
	for !p.Token.Is(closing) && !lexer.IsEOF(p.Token) {
		start := p.Pos
		parse(p)
		if !p.tryConsume(",") {
			break
		}
		if p.Token.Is(closing) {
			if !flags.Has(FlagTrailingComma) {
				p.errorExpected(want)
			}
			break
		}
		p.ensureProgress(start)
	}
	p.expect(closing)
}
