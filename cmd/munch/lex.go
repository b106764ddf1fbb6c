package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/munch/core/lexdump"
	"github.com/aledsdavies/munch/core/lexeme"
	"github.com/aledsdavies/munch/core/lexer"
	"github.com/aledsdavies/munch/core/token"
)

var knownModeNames = []string{
	token.Default.String(),
	token.InString.String(),
	token.InComment.String(),
}

func runLex(cmd *cobra.Command, path, modeName, rulesFile string, asCBOR bool) error {
	var lx *lexer.Lexer

	if rulesFile != "" {
		cfg, err := loadRuleConfig(rulesFile)
		if err != nil {
			return err
		}
		lx, err = lexer.NewFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("resolving rules file: %w", err)
		}
	} else {
		mode, ok := token.ParseMode(modeName)
		if !ok {
			return fmt.Errorf("unknown mode %q%s", modeName, suggestMode(modeName))
		}
		lx = lexer.NewSurfaceLexer()
		lx.SetStartMode(mode)
		lx.Reset()
	}

	input, err := readInput(path)
	if err != nil {
		return err
	}

	lexemes, err := scan(lx, input)
	if err != nil {
		return err
	}

	if asCBOR {
		data, err := lexdump.Encode(lexemes)
		if err != nil {
			return fmt.Errorf("encoding CBOR: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	for _, le := range lexemes {
		if le.HasSpan {
			fmt.Fprintf(cmd.OutOrStdout(), "%s@%d len=%d %q\n", le.Kind, le.Position, le.Length, le.Span)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s@%d len=%d\n", le.Kind, le.Position, le.Length)
		}
	}
	return nil
}

func scan(lx *lexer.Lexer, input string) ([]lexeme.Lexeme, error) {
	for _, c := range input {
		lx.Put(c)
		if err := lx.Error(); err != nil {
			return nil, err
		}
	}
	lx.Finish()
	if err := lx.Error(); err != nil {
		return nil, err
	}

	var out []lexeme.Lexeme
	for {
		le, ok := lx.Get()
		if !ok {
			break
		}
		out = append(out, le)
	}
	return out, nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// suggestMode returns a " (did you mean ...?)" hint for a near-miss mode
// flag, or an empty string if nothing is close enough.
func suggestMode(got string) string {
	matches := fuzzy.RankFindFold(got, knownModeNames)
	if len(matches) == 0 {
		return ""
	}
	sort.Sort(matches)
	best := matches[0].Target
	var sb strings.Builder
	fmt.Fprintf(&sb, " (did you mean %q?)", best)
	return sb.String()
}
