package automaton

import (
	"github.com/aledsdavies/munch/core/regex"
	"github.com/aledsdavies/munch/internal/invariant"
)

// nfaEdge is one outgoing transition of an nfaState. An epsilon edge
// consumes no input; a consuming edge matches any code point in [lo, hi].
type nfaEdge struct {
	to      int
	lo, hi  rune
	epsilon bool
	present bool
}

// nfaState is a single Thompson-construction state. Per the classic
// construction every state has at most two outgoing epsilon edges, or
// exactly one consuming edge and no epsilon edges (see leGoof-T/re1's
// node/edge split, which this mirrors).
type nfaState struct {
	out [2]nfaEdge
}

// NFA is a compiled, immutable, reusable Thompson-construction automaton.
// Build it once per regex.Term and share it across any number of NFASim
// instances.
type NFA struct {
	states []nfaState
	start  int
	accept int
}

type nfaBuilder struct {
	states []nfaState
}

func (b *nfaBuilder) newState() int {
	id := len(b.states)
	b.states = append(b.states, nfaState{})
	return id
}

func (b *nfaBuilder) addEdge(from int, e nfaEdge) {
	s := &b.states[from]
	if !s.out[0].present {
		s.out[0] = e
		return
	}
	invariant.Invariant(!s.out[1].present, "nfa state %d already has two outgoing edges", from)
	s.out[1] = e
}

// Build compiles t into an NFA via Thompson construction: every term kind
// maps to a fixed fragment shape with one entry state and one exit state,
// wired together exactly as the algebraic structure dictates.
func Build(t *regex.Term) *NFA {
	b := &nfaBuilder{}
	start, end := b.compile(t)
	accept := b.newState()
	b.addEdge(end, nfaEdge{to: accept, epsilon: true, present: true})
	return &NFA{states: b.states, start: start, accept: accept}
}

func (b *nfaBuilder) compile(t *regex.Term) (start, end int) {
	switch t.Kind() {
	case regex.KindEmpty:
		// No path from start to end: this fragment matches nothing.
		return b.newState(), b.newState()

	case regex.KindEpsilon:
		start, end = b.newState(), b.newState()
		b.addEdge(start, nfaEdge{to: end, epsilon: true, present: true})
		return start, end

	case regex.KindRange:
		lo, hi := t.Bounds()
		start, end = b.newState(), b.newState()
		b.addEdge(start, nfaEdge{to: end, lo: lo, hi: hi, present: true})
		return start, end

	case regex.KindConcat:
		a, bb := t.Children()
		s1, e1 := b.compile(a)
		s2, e2 := b.compile(bb)
		b.addEdge(e1, nfaEdge{to: s2, epsilon: true, present: true})
		return s1, e2

	case regex.KindUnion:
		a, bb := t.Children()
		s1, e1 := b.compile(a)
		s2, e2 := b.compile(bb)
		start = b.newState()
		b.addEdge(start, nfaEdge{to: s1, epsilon: true, present: true})
		b.addEdge(start, nfaEdge{to: s2, epsilon: true, present: true})
		end = b.newState()
		b.addEdge(e1, nfaEdge{to: end, epsilon: true, present: true})
		b.addEdge(e2, nfaEdge{to: end, epsilon: true, present: true})
		return start, end

	case regex.KindStar:
		a, _ := t.Children()
		s1, e1 := b.compile(a)
		start = b.newState()
		end = b.newState()
		b.addEdge(start, nfaEdge{to: s1, epsilon: true, present: true})
		b.addEdge(start, nfaEdge{to: end, epsilon: true, present: true})
		b.addEdge(e1, nfaEdge{to: end, epsilon: true, present: true})
		b.addEdge(e1, nfaEdge{to: s1, epsilon: true, present: true})
		return start, end

	default:
		panic("automaton: unknown term kind in Build")
	}
}

// NumStates returns the number of states in the compiled automaton, used
// by NFASim to size its scratch buffers.
func (n *NFA) NumStates() int { return len(n.states) }
