package token

import "github.com/aledsdavies/munch/core/regex"

// SurfaceRule describes one (from_mode, regex) -> (kind, to_mode, keep_span)
// rule of the Lisp-like surface grammar. It carries no automaton: callers
// compile Pattern with whichever automaton realisation they prefer.
type SurfaceRule struct {
	Kind     Kind
	Pattern  *regex.Term
	FromMode Mode
	ToMode   Mode
	KeepSpan bool
}

const punctuation = "(){}[]',`\";"

func digitTerm() *regex.Term { return regex.RangeOf('0', '9') }
func lowerTerm() *regex.Term { return regex.RangeOf('a', 'z') }
func upperTerm() *regex.Term { return regex.RangeOf('A', 'Z') }
func alphaTerm() *regex.Term { return regex.Union(lowerTerm(), upperTerm()) }

// identifierStart matches an identifier's first code point: a letter, or
// any code point not reserved for punctuation/whitespace/digits.
func identifierStart() *regex.Term {
	reserved := punctuation + " \t\n"
	return regex.Union(alphaTerm(), regex.NoneOf(reserved+"0123456789"))
}

// identifierContinue matches any later code point of an identifier.
func identifierContinue() *regex.Term {
	return regex.Union(identifierStart(), digitTerm())
}

func integerTerm() *regex.Term {
	sign := regex.OneOf("+-")
	return regex.Concat(regex.Opt(sign), regex.Plus(digitTerm()))
}

func floatTerm() *regex.Term {
	integer := integerTerm()
	exp := regex.Concat(regex.OneOf("eE"), integerTerm())
	fractional := regex.Concat(
		integer,
		regex.Concat(regex.Char('.'), regex.Concat(integer, regex.Opt(exp))),
	)
	exponentOnly := regex.Concat(integer, exp)
	return regex.Union(fractional, exponentOnly)
}

// SurfaceRules returns the full rule table for the Lisp-like surface
// grammar in declaration order; order matters for tiebreaking equal-length
// matches within a mode.
func SurfaceRules() []SurfaceRule {
	single := func(k Kind, c rune) SurfaceRule {
		return SurfaceRule{Kind: k, Pattern: regex.Char(c), FromMode: Default, ToMode: Default, KeepSpan: true}
	}

	rules := []SurfaceRule{
		single(LParen, '('),
		single(RParen, ')'),
		single(LBrace, '{'),
		single(RBrace, '}'),
		single(LBracket, '['),
		single(RBracket, ']'),
		single(Quote, '\''),
		single(BackQuote, '`'),
		single(Comma, ','),
		{Kind: DoubleQuote, Pattern: regex.Char('"'), FromMode: Default, ToMode: InString, KeepSpan: true},
		{Kind: Semicolon, Pattern: regex.Char(';'), FromMode: Default, ToMode: InComment, KeepSpan: true},
		{Kind: Whitespace, Pattern: regex.Plus(regex.OneOf(" \t")), FromMode: Default, ToMode: Default, KeepSpan: true},
		{Kind: Newline, Pattern: regex.Char('\n'), FromMode: Default, ToMode: Default, KeepSpan: true},
		{Kind: Float, Pattern: floatTerm(), FromMode: Default, ToMode: Default, KeepSpan: true},
		{Kind: Integer, Pattern: integerTerm(), FromMode: Default, ToMode: Default, KeepSpan: true},
		{Kind: Identifier, Pattern: regex.Concat(identifierStart(), regex.Star(identifierContinue())), FromMode: Default, ToMode: Default, KeepSpan: true},

		{Kind: String, Pattern: regex.Plus(regex.NoneOf("\"\\")), FromMode: InString, ToMode: InString, KeepSpan: true},
		{Kind: StringEscape, Pattern: regex.Concat(regex.Char('\\'), regex.Any), FromMode: InString, ToMode: InString, KeepSpan: true},
		{Kind: DoubleQuote, Pattern: regex.Char('"'), FromMode: InString, ToMode: Default, KeepSpan: true},

		{Kind: Comment, Pattern: regex.Plus(regex.NoneOf("\n")), FromMode: InComment, ToMode: InComment, KeepSpan: true},
		{Kind: Newline, Pattern: regex.Char('\n'), FromMode: InComment, ToMode: Default, KeepSpan: true},
	}
	return rules
}
