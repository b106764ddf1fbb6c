// Package lexdump serialises a completed lexeme stream to CBOR, for
// caching a scan result or shipping it to a separate process. Encoding is
// deterministic (canonical CBOR) so two dumps of the same stream are
// byte-for-byte identical.
package lexdump

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/munch/core/lexeme"
	"github.com/aledsdavies/munch/core/token"
)

// FormatVersion is bumped whenever the wire shape of Dump changes.
const FormatVersion = 1

// wireLexeme mirrors lexeme.Lexeme with CBOR tags; kept separate so the
// on-disk shape is independent of the Go struct's field order.
type wireLexeme struct {
	Kind     int    `cbor:"kind"`
	Position int    `cbor:"position"`
	Length   int    `cbor:"length"`
	Span     string `cbor:"span,omitempty"`
	HasSpan  bool   `cbor:"has_span"`
}

// Dump is the encoded-on-the-wire form of a completed lexeme stream.
type Dump struct {
	Version int          `cbor:"version"`
	Lexemes []wireLexeme `cbor:"lexemes"`
}

func toWire(lexemes []lexeme.Lexeme) []wireLexeme {
	out := make([]wireLexeme, len(lexemes))
	for i, le := range lexemes {
		out[i] = wireLexeme{
			Kind:     int(le.Kind),
			Position: le.Position,
			Length:   le.Length,
			Span:     le.Span,
			HasSpan:  le.HasSpan,
		}
	}
	return out
}

func fromWire(wire []wireLexeme) []lexeme.Lexeme {
	out := make([]lexeme.Lexeme, len(wire))
	for i, w := range wire {
		kind := token.Kind(w.Kind)
		le := lexeme.New(kind, w.Position, w.Length)
		if w.HasSpan {
			le = lexeme.WithSpan(kind, w.Position, w.Length, w.Span)
		}
		out[i] = le
	}
	return out
}

// Encode produces the canonical CBOR encoding of lexemes.
func Encode(lexemes []lexeme.Lexeme) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("lexdump: building CBOR encoder: %w", err)
	}

	dump := Dump{Version: FormatVersion, Lexemes: toWire(lexemes)}
	data, err := encMode.Marshal(dump)
	if err != nil {
		return nil, fmt.Errorf("lexdump: encoding: %w", err)
	}
	return data, nil
}

// Decode parses a Dump previously produced by Encode. It rejects dumps
// whose version differs from FormatVersion, older or newer.
func Decode(data []byte) ([]lexeme.Lexeme, error) {
	var dump Dump
	if err := cbor.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("lexdump: decoding: %w", err)
	}
	if dump.Version != FormatVersion {
		return nil, fmt.Errorf("lexdump: unsupported format version %d, want %d", dump.Version, FormatVersion)
	}
	return fromWire(dump.Lexemes), nil
}
