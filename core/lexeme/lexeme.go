// Package lexeme defines the output unit produced by core/lexer.
package lexeme

import "github.com/aledsdavies/munch/core/token"

// Lexeme is one token committed by the lexer: a kind, its 0-based
// code-point position, its length in code points, and — for rules that
// request it — the literal source text it covers.
type Lexeme struct {
	Kind     token.Kind
	Position int
	Length   int
	Span     string
	HasSpan  bool
}

// New constructs a spanless Lexeme.
func New(kind token.Kind, position, length int) Lexeme {
	return Lexeme{Kind: kind, Position: position, Length: length}
}

// WithSpan constructs a Lexeme carrying its literal source text.
func WithSpan(kind token.Kind, position, length int, span string) Lexeme {
	return Lexeme{Kind: kind, Position: position, Length: length, Span: span, HasSpan: true}
}
