package automaton

import "github.com/aledsdavies/munch/core/regex"

// derivativeKey identifies a memoised D_c(term) computation. Terms are
// compared by content hash (regex.Term.Hash), so structurally identical
// terms reuse the same cache entry regardless of pointer identity.
type derivativeKey struct {
	term regex.Hash
	c    rune
}

// DerivativeAutomaton is an Automaton whose state is itself a regex.Term:
// Feed(c) replaces the current term with its Brzozowski derivative with
// respect to c. The smart constructors in package regex keep the term
// from growing without bound, which is what makes this realisation
// terminate in practice.
type DerivativeAutomaton struct {
	start   *regex.Term
	current *regex.Term
	cache   map[derivativeKey]*regex.Term
}

// NewDerivative constructs a derivative automaton starting at term t.
func NewDerivative(t *regex.Term) *DerivativeAutomaton {
	d := &DerivativeAutomaton{
		start: t,
		cache: make(map[derivativeKey]*regex.Term),
	}
	d.current = t
	return d
}

// Reset rewinds the automaton to its starting term.
func (d *DerivativeAutomaton) Reset() {
	d.current = d.start
}

// Feed replaces the current term with D_c(current).
func (d *DerivativeAutomaton) Feed(c rune) {
	d.current = d.derivative(d.current, c)
}

// IsAccept reports whether the current term is nullable, i.e. whether the
// code points fed so far form a complete match.
func (d *DerivativeAutomaton) IsAccept() bool {
	return d.current.Nullable()
}

// IsDead reports whether the current term is Empty: no further input can
// ever lead back to an accept state.
func (d *DerivativeAutomaton) IsDead() bool {
	return d.current.Kind() == regex.KindEmpty
}

// derivative computes D_c(t), the term matching exactly the suffixes w
// such that c.w is matched by t. Defined structurally on every term kind;
// memoised per (term, c) since the same sub-term reappears often in
// practice (e.g. under Star).
func (d *DerivativeAutomaton) derivative(t *regex.Term, c rune) *regex.Term {
	key := derivativeKey{term: t.Hash(), c: c}
	if cached, ok := d.cache[key]; ok {
		return cached
	}

	var result *regex.Term
	switch t.Kind() {
	case regex.KindEmpty, regex.KindEpsilon:
		result = regex.Empty

	case regex.KindRange:
		lo, hi := t.Bounds()
		if c >= lo && c <= hi {
			result = regex.Epsilon
		} else {
			result = regex.Empty
		}

	case regex.KindUnion:
		a, b := t.Children()
		result = regex.Union(d.derivative(a, c), d.derivative(b, c))

	case regex.KindConcat:
		a, b := t.Children()
		da := regex.Concat(d.derivative(a, c), b)
		if a.Nullable() {
			result = regex.Union(da, d.derivative(b, c))
		} else {
			result = da
		}

	case regex.KindStar:
		a, _ := t.Children()
		result = regex.Concat(d.derivative(a, c), t)

	default:
		panic("automaton: unknown term kind in derivative")
	}

	d.cache[key] = result
	return result
}
