// Command munch lexes a Lisp-like surface-syntax file and prints, or
// dumps to CBOR, the resulting lexeme stream.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/munch/core/ruleconfig"
	"github.com/aledsdavies/munch/core/token"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "munch: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		modeName  string
		rulesFile string
		asCBOR    bool
	)

	cmd := &cobra.Command{
		Use:           "munch [file]",
		Short:         "Lex a Lisp-like surface syntax file",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runLex(cmd, path, modeName, rulesFile, asCBOR)
		},
	}

	cmd.Flags().StringVar(&modeName, "mode", token.Default.String(), "starting lexer mode")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "path to a JSON rule-table config (see core/ruleconfig); defaults to the built-in surface grammar")
	cmd.Flags().BoolVar(&asCBOR, "cbor", false, "write the lexeme stream as canonical CBOR instead of text")

	return cmd
}

func loadRuleConfig(path string) (*ruleconfig.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	return ruleconfig.Parse(data)
}
