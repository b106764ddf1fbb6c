// Package lexer implements the multi-mode, longest-match, streaming
// tokenizer: a table of (from_mode, regex) -> (kind, to_mode, keep_span)
// rules driven one code point at a time, emitting lexemes into an output
// queue the moment no rule can possibly extend the current match.
package lexer

import (
	"github.com/aledsdavies/munch/core/automaton"
	"github.com/aledsdavies/munch/core/lexeme"
	"github.com/aledsdavies/munch/core/regex"
	"github.com/aledsdavies/munch/core/ruleconfig"
	"github.com/aledsdavies/munch/core/token"
	"github.com/aledsdavies/munch/internal/invariant"
)

// AutomatonFactory compiles a regex term into a fresh, reset Automaton.
// The default factory (see NewDefault) builds a Thompson NFA and runs it
// by epsilon-closure simulation; callers who prefer the derivative
// realisation may supply a factory that returns automaton.NewDerivative(t)
// instead — both satisfy the same contract.
type AutomatonFactory func(*regex.Term) automaton.Automaton

// DefaultAutomatonFactory builds an NFA-simulation automaton.
func DefaultAutomatonFactory(t *regex.Term) automaton.Automaton {
	return automaton.NewSim(automaton.Build(t))
}

type compiledRule struct {
	kind     token.Kind
	toMode   token.Mode
	keepSpan bool
	matcher  automaton.Automaton
}

type acceptedMatch struct {
	valid    bool
	ruleIdx  int
	length   int
}

// Lexer is the streaming, multi-mode, longest-match driver. A zero Lexer
// is not usable; construct one with New or NewDefault.
type Lexer struct {
	newAutomaton AutomatonFactory
	rulesByMode  map[token.Mode][]*compiledRule

	startMode token.Mode
	mode      token.Mode

	queue  []rune
	cursor int

	last acceptedMatch

	output []lexeme.Lexeme
	err    *LexError

	position int
}

// New constructs an empty Lexer with no start mode set, using factory to
// compile every rule's matcher.
func New(factory AutomatonFactory) *Lexer {
	invariant.NotNil(factory, "factory")
	return &Lexer{
		newAutomaton: factory,
		rulesByMode:  make(map[token.Mode][]*compiledRule),
	}
}

// NewDefault constructs an empty Lexer using the NFA-simulation realisation.
func NewDefault() *Lexer {
	return New(DefaultAutomatonFactory)
}

// NewSurfaceLexer constructs a Lexer pre-loaded with the Lisp-like surface
// grammar's rule table (core/token.SurfaceRules), ready to scan from
// token.Default mode.
func NewSurfaceLexer() *Lexer {
	lx := NewDefault()
	lx.SetStartMode(token.Default)
	for _, r := range token.SurfaceRules() {
		lx.AddRule(r.Kind, r.Pattern, r.FromMode, r.ToMode, r.KeepSpan)
	}
	lx.Reset()
	return lx
}

// NewFromConfig builds a Lexer from a parsed external rule-table document
// (see core/ruleconfig), letting the surface grammar be swapped without a
// recompile.
func NewFromConfig(cfg *ruleconfig.Config) (*Lexer, error) {
	startMode, rules, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	lx := NewDefault()
	lx.SetStartMode(startMode)
	for _, r := range rules {
		lx.AddRule(r.Kind, r.Pattern, r.FromMode, r.ToMode, r.KeepSpan)
	}
	lx.Reset()
	return lx, nil
}

// SetStartMode records the mode active at construction and after Reset.
func (lx *Lexer) SetStartMode(m token.Mode) {
	lx.startMode = m
	lx.mode = m
}

// AddRule compiles pattern and appends it to the rule list for fromMode.
// Rule order within a mode is significant: earlier rules win tiebreaks at
// equal match length.
func (lx *Lexer) AddRule(kind token.Kind, pattern *regex.Term, fromMode, toMode token.Mode, keepSpan bool) {
	invariant.NotNil(pattern, "pattern")
	rule := &compiledRule{
		kind:     kind,
		toMode:   toMode,
		keepSpan: keepSpan,
		matcher:  lx.newAutomaton(pattern),
	}
	lx.rulesByMode[fromMode] = append(lx.rulesByMode[fromMode], rule)
}

// Reset clears the input and output queues, clears the sticky error,
// resets every matcher, and restores the current mode to the start mode.
func (lx *Lexer) Reset() {
	lx.queue = lx.queue[:0]
	lx.output = lx.output[:0]
	lx.err = nil
	lx.cursor = 0
	lx.last = acceptedMatch{}
	lx.mode = lx.startMode
	lx.position = 0
	for _, rules := range lx.rulesByMode {
		for _, r := range rules {
			r.matcher.Reset()
		}
	}
}

// Put appends one code point and processes it immediately. A no-op while
// in sticky-error state.
func (lx *Lexer) Put(c rune) {
	if lx.err != nil {
		return
	}
	lx.queue = append(lx.queue, c)
	lx.scan()
}

// Finish signals end of input: it emits one final lexeme if a match is
// pending, and raises UnexpectedEndOfInput if characters remain that were
// never folded into a committed lexeme. A no-op in sticky-error state.
func (lx *Lexer) Finish() {
	if lx.err != nil {
		return
	}
	if lx.last.valid {
		lx.emit()
		if lx.err != nil {
			return
		}
	}
	if len(lx.queue) > 0 {
		lx.err = unexpectedEndOfInput(lx.position)
	}
}

// Get pops the next produced lexeme, FIFO. The second return is false
// when no lexeme is queued.
func (lx *Lexer) Get() (lexeme.Lexeme, bool) {
	if len(lx.output) == 0 {
		return lexeme.Lexeme{}, false
	}
	le := lx.output[0]
	lx.output = lx.output[1:]
	return le, true
}

// Error observes the sticky error, or nil if the lexer has not failed.
func (lx *Lexer) Error() *LexError {
	return lx.err
}

// scan drives the rule matchers for the current mode in lockstep over the
// queue, from the cursor onward, until either the cursor catches up with
// the queue (more input needed) or every matcher has gone dead (committing
// or erroring via emit).
func (lx *Lexer) scan() {
	for lx.cursor < len(lx.queue) {
		c := lx.queue[lx.cursor]
		rules := lx.rulesByMode[lx.mode]

		for _, r := range rules {
			if !r.matcher.IsDead() {
				r.matcher.Feed(c)
			}
		}

		allDead := true
		acceptedIdx := -1
		for i, r := range rules {
			if !r.matcher.IsDead() {
				allDead = false
			}
			if acceptedIdx == -1 && r.matcher.IsAccept() {
				acceptedIdx = i
			}
		}

		lx.cursor++

		if acceptedIdx != -1 {
			prefixLen := lx.cursor
			if !lx.last.valid || prefixLen > lx.last.length {
				lx.last = acceptedMatch{valid: true, ruleIdx: acceptedIdx, length: prefixLen}
			}
		}

		if allDead {
			lx.emit()
			if lx.err != nil {
				return
			}
			continue
		}
	}
}

// emit commits the best match recorded in lx.last, or sets the sticky
// UnexpectedInput error if no rule ever accepted a prefix at this
// position.
func (lx *Lexer) emit() {
	if !lx.last.valid {
		lx.err = unexpectedInput(lx.position)
		return
	}

	rules := lx.rulesByMode[lx.mode]
	invariant.InRange(lx.last.ruleIdx, 0, len(rules)-1, "last.ruleIdx")
	rule := rules[lx.last.ruleIdx]
	length := lx.last.length

	invariant.Invariant(length <= len(lx.queue), "accepted prefix length exceeds queue size")

	var le lexeme.Lexeme
	if rule.keepSpan {
		le = lexeme.WithSpan(rule.kind, lx.position, length, string(lx.queue[:length]))
	} else {
		le = lexeme.New(rule.kind, lx.position, length)
	}
	lx.output = append(lx.output, le)

	lx.queue = lx.queue[length:]
	lx.position += length
	lx.mode = rule.toMode

	for _, r := range lx.rulesByMode[lx.mode] {
		r.matcher.Reset()
	}

	lx.last = acceptedMatch{}
	lx.cursor = 0
}
