// Package automaton compiles a regex.Term into a matcher that can be fed
// one code point at a time. Two independent realisations of the same
// contract are provided: an NFA built by Thompson construction and run by
// epsilon-closure simulation (sim.go), and a Brzozowski-derivative
// automaton whose state is itself a regex.Term (derivative.go). Both
// satisfy Automaton so callers, and cross-checking tests, can treat them
// interchangeably.
package automaton

// Automaton is a resettable, incremental matcher over a single code-point
// alphabet. Feed must be called once per input code point; IsAccept and
// IsDead may be queried after any number of Feed calls.
type Automaton interface {
	// Reset returns the automaton to its initial state, as if newly
	// constructed.
	Reset()

	// Feed advances the automaton by one code point.
	Feed(c rune)

	// IsAccept reports whether the sequence of code points fed so far is a
	// member of the automaton's language.
	IsAccept() bool

	// IsDead reports whether no further input can ever lead to an accept
	// state. Once dead, an automaton stays dead until Reset.
	IsDead() bool
}
