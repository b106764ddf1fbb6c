package lexer_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/munch/core/lexeme"
	"github.com/aledsdavies/munch/core/lexer"
	"github.com/aledsdavies/munch/core/regex"
	"github.com/aledsdavies/munch/core/token"
)

func lexAll(t *testing.T, lx *lexer.Lexer, input string) []lexeme.Lexeme {
	t.Helper()
	lx.Reset()
	for _, c := range input {
		lx.Put(c)
		require.Nil(t, lx.Error(), "unexpected error mid-input: %v", lx.Error())
	}
	lx.Finish()
	require.Nil(t, lx.Error(), "unexpected error at finish: %v", lx.Error())

	var out []lexeme.Lexeme
	for {
		le, ok := lx.Get()
		if !ok {
			break
		}
		out = append(out, le)
	}
	return out
}

func TestParensScenario(t *testing.T) {
	lx := lexer.NewSurfaceLexer()
	got := lexAll(t, lx, "()")

	require.Len(t, got, 2)
	assert.Equal(t, token.LParen, got[0].Kind)
	assert.Equal(t, 0, got[0].Position)
	assert.Equal(t, 1, got[0].Length)
	assert.Equal(t, token.RParen, got[1].Kind)
	assert.Equal(t, 1, got[1].Position)
}

func TestWhitespaceScenario(t *testing.T) {
	lx := lexer.NewSurfaceLexer()
	got := lexAll(t, lx, "  (  )  ")

	kinds := kindsOf(got)
	assert.Equal(t, []token.Kind{
		token.Whitespace, token.LParen, token.Whitespace, token.RParen, token.Whitespace,
	}, kinds)
	assert.Equal(t, 0, got[0].Position)
	assert.Equal(t, 2, got[0].Length)
	assert.Equal(t, 2, got[1].Position)
	assert.Equal(t, 3, got[2].Position)
	assert.Equal(t, 5, got[3].Position)
	assert.Equal(t, 6, got[4].Position)
}

func TestCommentScenario(t *testing.T) {
	lx := lexer.NewSurfaceLexer()
	got := lexAll(t, lx, "; this is a comment\n")

	kinds := kindsOf(got)
	require.Equal(t, []token.Kind{token.Semicolon, token.Comment, token.Newline}, kinds)
	assert.Equal(t, " this is a comment", got[1].Span)
	assert.Equal(t, 19, got[2].Position)
}

func TestStringScenario(t *testing.T) {
	lx := lexer.NewSurfaceLexer()
	got := lexAll(t, lx, `"hello"`)

	kinds := kindsOf(got)
	require.Equal(t, []token.Kind{token.DoubleQuote, token.String, token.DoubleQuote}, kinds)
	assert.Equal(t, "hello", got[1].Span)
	assert.Equal(t, 6, got[2].Position)
}

func TestNumericScenario(t *testing.T) {
	lx := lexer.NewSurfaceLexer()
	got := lexAll(t, lx, "(define (incr x) (+ x 1.1))\n(1 11 +11 -11 +11.0 -11.0 11e10)")

	var floats, ints int
	floatSpans := map[string]bool{}
	intSpans := map[string]bool{}
	for _, le := range got {
		switch le.Kind {
		case token.Float:
			floats++
			floatSpans[le.Span] = true
		case token.Integer:
			ints++
			intSpans[le.Span] = true
		}
	}
	assert.Greater(t, floats, 0)
	assert.Greater(t, ints, 0)
	for _, want := range []string{"1.1", "+11.0", "-11.0", "11e10"} {
		assert.Truef(t, floatSpans[want], "expected a Float span %q, got %v", want, floatSpans)
	}
	for _, want := range []string{"1", "11", "+11", "-11"} {
		assert.Truef(t, intSpans[want], "expected an Integer span %q, got %v", want, intSpans)
	}
}

func TestErrorScenarioUnexpectedInput(t *testing.T) {
	lx := lexer.New(lexer.DefaultAutomatonFactory)
	lx.SetStartMode(token.Default)
	lx.AddRule(token.LParen, regex.Char('('), token.Default, token.Default, true)
	lx.Reset()

	lx.Put(':')
	require.NotNil(t, lx.Error())
	assert.Equal(t, lexer.UnexpectedInput, lx.Error().Kind)
	assert.Equal(t, 0, lx.Error().Position)

	lx.Put(':')
	assert.Equal(t, lexer.UnexpectedInput, lx.Error().Kind, "sticky error must not change on further input")

	_, ok := lx.Get()
	assert.False(t, ok)
}

func TestTotalityRoundTrip(t *testing.T) {
	input := `(define (incr x) (+ x 1))` + "\n" + `"a string" ; trailing comment` + "\n"
	lx := lexer.NewSurfaceLexer()
	got := lexAll(t, lx, input)

	var rebuilt string
	for _, le := range got {
		require.True(t, le.HasSpan, "surface rules all request spans")
		rebuilt += le.Span
	}
	assert.Equal(t, input, rebuilt)
}

func TestPositionMonotonicity(t *testing.T) {
	lx := lexer.NewSurfaceLexer()
	got := lexAll(t, lx, "(foo (bar 1 2.5))")

	prev := -1
	cum := 0
	for _, le := range got {
		assert.Greater(t, le.Position, prev)
		assert.Equal(t, cum, le.Position)
		prev = le.Position
		cum += le.Length
	}
}

func TestStreamingEquivalence(t *testing.T) {
	input := "(foo 1.5 \"bar\" ; hi\n)"

	oneShot := lexer.NewSurfaceLexer()
	wantKinds := kindsOf(lexAll(t, oneShot, input))

	chunked := lexer.NewSurfaceLexer()
	chunked.Reset()
	for _, c := range input {
		chunked.Put(c)
		require.Nil(t, chunked.Error())
	}
	chunked.Finish()
	require.Nil(t, chunked.Error())

	var got []lexeme.Lexeme
	for {
		le, ok := chunked.Get()
		if !ok {
			break
		}
		got = append(got, le)
	}
	assert.Equal(t, wantKinds, kindsOf(got))
}

func TestRandomizedRoundTrip(t *testing.T) {
	alphabet := []string{"(", ")", "foo", "bar42", "1", "11", "1.5", `"str"`, " "}
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(12)
		var sb []string
		for i := 0; i < n; i++ {
			sb = append(sb, alphabet[rng.Intn(len(alphabet))])
		}
		input := ""
		for _, piece := range sb {
			input += piece
		}

		lx := lexer.NewSurfaceLexer()
		lx.Reset()
		for _, c := range input {
			lx.Put(c)
			if lx.Error() != nil {
				break
			}
		}
		if lx.Error() != nil {
			continue
		}
		lx.Finish()
		if lx.Error() != nil {
			continue
		}

		var rebuilt string
		for {
			le, ok := lx.Get()
			if !ok {
				break
			}
			rebuilt += le.Span
		}
		assert.Equal(t, input, rebuilt)
	}
}

func kindsOf(got []lexeme.Lexeme) []token.Kind {
	kinds := make([]token.Kind, len(got))
	for i, le := range got {
		kinds[i] = le.Kind
	}
	return kinds
}
