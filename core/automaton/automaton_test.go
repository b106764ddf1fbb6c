package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/munch/core/automaton"
	"github.com/aledsdavies/munch/core/regex"
)

// concatTerm builds a Concat chain matching exactly s.
func concatTerm(s string) *regex.Term {
	result := regex.Epsilon
	for _, c := range s {
		result = regex.Concat(result, regex.Char(c))
	}
	return result
}

func runAll(t *testing.T, a automaton.Automaton, s string) (accept, dead bool) {
	t.Helper()
	a.Reset()
	for _, c := range s {
		if a.IsDead() {
			break
		}
		a.Feed(c)
	}
	return a.IsAccept(), a.IsDead()
}

func buildBoth(term *regex.Term) (automaton.Automaton, automaton.Automaton) {
	nfa := automaton.Build(term)
	sim := automaton.NewSim(nfa)
	der := automaton.NewDerivative(term)
	return sim, der
}

func TestNFASimAcceptsExactString(t *testing.T) {
	term := concatTerm("abc")
	sim, _ := buildBoth(term)

	accept, _ := runAll(t, sim, "abc")
	assert.True(t, accept)

	accept, _ = runAll(t, sim, "ab")
	assert.False(t, accept)
}

func TestNFASimDeadOnMismatch(t *testing.T) {
	term := concatTerm("ab")
	sim, _ := buildBoth(term)

	sim.Reset()
	sim.Feed('a')
	require.False(t, sim.IsDead())
	sim.Feed('x')
	assert.True(t, sim.IsDead())
}

func TestDerivativeAcceptsExactString(t *testing.T) {
	term := concatTerm("abc")
	_, der := buildBoth(term)

	accept, _ := runAll(t, der, "abc")
	assert.True(t, accept)

	accept, _ = runAll(t, der, "ab")
	assert.False(t, accept)
}

func TestStarAcceptsEmptyAndRepeats(t *testing.T) {
	term := regex.Star(regex.Char('a'))
	sim, der := buildBoth(term)

	for _, impl := range []automaton.Automaton{sim, der} {
		accept, _ := runAll(t, impl, "")
		assert.True(t, accept)

		accept, _ = runAll(t, impl, "aaaa")
		assert.True(t, accept)

		_, dead := runAll(t, impl, "aaab")
		assert.True(t, dead)
	}
}

func TestResetReturnsToStart(t *testing.T) {
	term := concatTerm("ok")
	sim, der := buildBoth(term)

	for _, impl := range []automaton.Automaton{sim, der} {
		impl.Feed('x')
		require.True(t, impl.IsDead())
		impl.Reset()
		assert.False(t, impl.IsDead())
		accept, _ := runAll(t, impl, "ok")
		assert.True(t, accept)
	}
}

// TestNFAMatchesDerivative cross-checks the two automaton realisations
// against the same set of inputs for a handful of representative regex
// shapes, the property both realisations are independently built to satisfy.
func TestNFAMatchesDerivative(t *testing.T) {
	digits := regex.RangeOf('0', '9')
	letters := regex.Union(regex.RangeOf('a', 'z'), regex.RangeOf('A', 'Z'))
	ident := regex.Concat(letters, regex.Star(regex.Union(letters, digits)))
	number := regex.Plus(digits)
	term := regex.Union(ident, number)

	inputs := []string{"", "a", "abc123", "123", "1a", "_bad", "A1B2c3", "999"}

	nfa := automaton.Build(term)
	for _, in := range inputs {
		sim := automaton.NewSim(nfa)
		der := automaton.NewDerivative(term)

		simAccept, simDead := runAll(t, sim, in)
		derAccept, derDead := runAll(t, der, in)

		assert.Equalf(t, derAccept, simAccept, "accept mismatch for input %q", in)
		assert.Equalf(t, derDead, simDead, "dead mismatch for input %q", in)
	}
}

func TestNoneOfAutomatonExcludesQuoteAndBackslash(t *testing.T) {
	term := regex.Star(regex.NoneOf("\"\\"))
	sim, der := buildBoth(term)

	for _, impl := range []automaton.Automaton{sim, der} {
		accept, _ := runAll(t, impl, "hello world")
		assert.True(t, accept)

		_, dead := runAll(t, impl, `bad"input`)
		assert.True(t, dead)
	}
}
