package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flux/internal/diagfmt"
	"flux/internal/driver"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file.fl",
	Short: "Tokenize a flux source file",
	Long:  "Tokens breaks a flux source file into its token stream without parsing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	maxDiag := maxDiagnostics(cmd)

	result, err := driver.Tokenize(path, maxDiag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not open file '%s'\n", path)
		return errCompileFailed
	}

	diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Max: maxDiag}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}
	if result.Bag.HasErrors() {
		diagfmt.ErrorSummary(os.Stderr, result.Bag.ErrorCount())
		return errCompileFailed
	}
	return nil
}
