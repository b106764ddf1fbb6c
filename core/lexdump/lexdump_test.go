package lexdump_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/munch/core/lexdump"
	"github.com/aledsdavies/munch/core/lexeme"
	"github.com/aledsdavies/munch/core/token"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []lexeme.Lexeme{
		lexeme.WithSpan(token.LParen, 0, 1, "("),
		lexeme.New(token.Whitespace, 1, 2),
		lexeme.WithSpan(token.Identifier, 3, 3, "foo"),
	}

	data, err := lexdump.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	out, err := lexdump.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeIsDeterministic(t *testing.T) {
	in := []lexeme.Lexeme{lexeme.WithSpan(token.Integer, 0, 2, "42")}

	a, err := lexdump.Encode(in)
	require.NoError(t, err)
	b, err := lexdump.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := lexdump.Decode([]byte("not a cbor document"))
	assert.Error(t, err)
}
