package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"flux/internal/diagfmt"
	"flux/internal/driver"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] file.fl",
	Short: "Print an AST summary for a flux source file",
	Long:  "Ast parses a flux source file and prints its module header and top-level declarations",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func runAST(cmd *cobra.Command, args []string) error {
	path := args[0]
	maxDiag := maxDiagnostics(cmd)

	res, err := driver.Diagnose(path, driver.Options{MaxDiagnostics: maxDiag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not open file '%s'\n", path)
		return errCompileFailed
	}

	if res.Bag.Len() > 0 {
		res.Bag.Sort()
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Max: maxDiag}
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
	}
	if res.Bag.HasErrors() {
		diagfmt.ErrorSummary(os.Stderr, res.Bag.ErrorCount())
		return errCompileFailed
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	diagfmt.FormatASTSummary(os.Stdout, res.Builder, res.ASTFile, stem)
	return nil
}
