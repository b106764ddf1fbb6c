package ruleconfig

import (
	"fmt"

	"github.com/aledsdavies/munch/core/regex"
)

// PatternSpec is the JSON-serialisable mirror of a regex.Term, letting a
// rule table be shipped as data instead of Go source. Build walks it into
// an actual *regex.Term using the smart constructors of package regex, so
// every algebraic identity they enforce still applies.
type PatternSpec struct {
	Op    string        `json:"op"`
	Value string        `json:"value,omitempty"`
	Lo    int32         `json:"lo,omitempty"`
	Hi    int32         `json:"hi,omitempty"`
	Chars string        `json:"chars,omitempty"`
	Arg   *PatternSpec  `json:"arg,omitempty"`
	Args  []PatternSpec `json:"args,omitempty"`
}

// Build compiles p into a regex.Term, or reports the malformed operand.
func (p PatternSpec) Build() (*regex.Term, error) {
	switch p.Op {
	case "empty":
		return regex.Empty, nil
	case "epsilon":
		return regex.Epsilon, nil
	case "any":
		return regex.Any, nil

	case "char":
		rs := []rune(p.Value)
		if len(rs) != 1 {
			return nil, fmt.Errorf("ruleconfig: op %q requires a single-rune value, got %q", p.Op, p.Value)
		}
		return regex.Char(rs[0]), nil

	case "range":
		lo, hi := rune(p.Lo), rune(p.Hi)
		if lo > hi {
			return nil, fmt.Errorf("ruleconfig: op %q: lo (%d) must be <= hi (%d)", p.Op, lo, hi)
		}
		if !regex.InDomain(lo) || !regex.InDomain(hi) {
			return nil, fmt.Errorf("ruleconfig: op %q: bounds [%d, %d] must be valid code points", p.Op, lo, hi)
		}
		return regex.RangeOf(lo, hi), nil

	case "one_of":
		return regex.OneOf(p.Chars), nil

	case "none_of":
		return regex.NoneOf(p.Chars), nil

	case "star", "plus", "opt":
		if p.Arg == nil {
			return nil, fmt.Errorf("ruleconfig: op %q requires arg", p.Op)
		}
		inner, err := p.Arg.Build()
		if err != nil {
			return nil, err
		}
		switch p.Op {
		case "star":
			return regex.Star(inner), nil
		case "plus":
			return regex.Plus(inner), nil
		default:
			return regex.Opt(inner), nil
		}

	case "concat", "union":
		if len(p.Args) < 2 {
			return nil, fmt.Errorf("ruleconfig: op %q requires at least 2 args", p.Op)
		}
		result, err := p.Args[0].Build()
		if err != nil {
			return nil, err
		}
		for _, arg := range p.Args[1:] {
			t, err := arg.Build()
			if err != nil {
				return nil, err
			}
			if p.Op == "concat" {
				result = regex.Concat(result, t)
			} else {
				result = regex.Union(result, t)
			}
		}
		return result, nil

	default:
		return nil, fmt.Errorf("ruleconfig: unknown pattern op %q", p.Op)
	}
}
