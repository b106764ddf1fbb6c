// Package token enumerates the token kinds of the Lisp-like surface
// syntax and builds the regex rules that recognise them.
package token

// Kind identifies the lexical category of a lexeme.
type Kind int

const (
	LParen Kind = iota
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Quote
	BackQuote
	DoubleQuote
	Comma
	Semicolon
	Whitespace
	Newline
	Integer
	Float
	Identifier
	String
	StringEscape
	Comment
)

var kindNames = [...]string{
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Quote:        "Quote",
	BackQuote:    "BackQuote",
	DoubleQuote:  "DoubleQuote",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Whitespace:   "Whitespace",
	Newline:      "Newline",
	Integer:      "Integer",
	Float:        "Float",
	Identifier:   "Identifier",
	String:       "String",
	StringEscape: "StringEscape",
	Comment:      "Comment",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a Kind by its String() name, for callers that load a
// rule table from an external config.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Mode names a lexer mode the surface grammar switches between.
type Mode int

const (
	Default Mode = iota
	InString
	InComment
)

var modeNames = [...]string{
	Default:   "Default",
	InString:  "InString",
	InComment: "InComment",
}

func (m Mode) String() string {
	if int(m) < 0 || int(m) >= len(modeNames) {
		return "Unknown"
	}
	return modeNames[m]
}

// ParseMode resolves a Mode by its String() name, for callers that load a
// rule table from an external config.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), true
		}
	}
	return 0, false
}
