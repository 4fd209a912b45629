package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"flux/internal/backend/llvm"
	"flux/internal/diagfmt"
	"flux/internal/driver"
	"flux/internal/project"
	"flux/internal/ui"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [file.fl]",
	Short: "Compile a flux source file",
	Long: `Compile runs the full pipeline on one source file: lexing, parsing,
name resolution, type checking, lowering, and output generation. With
no argument the entry file from flux.toml is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "output file path")
	compileCmd.Flags().String("emit", "exe", "output format (llvm-ir|bitcode|asm|obj|exe)")
	compileCmd.Flags().IntP("opt", "O", 0, "optimization level (0-3)")
	compileCmd.Flags().String("target", "", "target triple (default: host)")
	compileCmd.Flags().Bool("dump-tokens", false, "print the token stream to stdout")
	compileCmd.Flags().Bool("dump-ast", false, "print an AST summary to stdout")
	compileCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	compileCmd.Flags().Bool("no-cache", false, "bypass the compile cache")
}

type compileConfig struct {
	input   string
	output  string
	emit    driver.EmitKind
	opt     int
	target  string
	dumpTok bool
	dumpAST bool
	uiMode  uiMode
	noCache bool
	quiet   bool
	timings bool
}

func readCompileConfig(cmd *cobra.Command, args []string) (*compileConfig, error) {
	cfg := &compileConfig{}

	emitValue, _ := cmd.Flags().GetString("emit")
	kind, err := driver.ParseEmitKind(emitValue)
	if err != nil {
		return nil, err
	}
	cfg.emit = kind

	cfg.output, _ = cmd.Flags().GetString("output")
	cfg.opt, _ = cmd.Flags().GetInt("opt")
	cfg.target, _ = cmd.Flags().GetString("target")
	cfg.dumpTok, _ = cmd.Flags().GetBool("dump-tokens")
	cfg.dumpAST, _ = cmd.Flags().GetBool("dump-ast")
	cfg.noCache, _ = cmd.Flags().GetBool("no-cache")
	cfg.quiet, _ = cmd.Root().PersistentFlags().GetBool("quiet")
	cfg.timings, _ = cmd.Root().PersistentFlags().GetBool("timings")

	uiValue, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiValue)
	if err != nil {
		return nil, err
	}
	cfg.uiMode = mode

	if len(args) == 1 {
		cfg.input = args[0]
	}

	// Manifest defaults fill whatever flags left unset.
	manifest, found, err := project.Load(".")
	if err != nil && cfg.input == "" {
		return nil, err
	}
	if found && err == nil {
		if cfg.input == "" {
			cfg.input = manifest.EntryPath()
		}
		if !cmd.Flags().Changed("opt") {
			cfg.opt = manifest.Config.Build.Opt
		}
		if !cmd.Flags().Changed("target") && manifest.Config.Build.Target != "" {
			cfg.target = manifest.Config.Build.Target
		}
	}
	if cfg.input == "" {
		return nil, fmt.Errorf("no input file")
	}
	if cfg.opt < 0 || cfg.opt > 3 {
		return nil, fmt.Errorf("invalid optimization level %d", cfg.opt)
	}
	return cfg, nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := readCompileConfig(cmd, args)
	if err != nil {
		return err
	}
	maxDiag := maxDiagnostics(cmd)
	colorErr := useColor(cmd, os.Stderr)

	if cfg.dumpTok {
		if failed, err := dumpTokens(cfg.input, maxDiag, colorErr); err != nil || failed {
			if err == nil {
				err = errCompileFailed
			}
			return err
		}
	}

	content, err := os.ReadFile(cfg.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not open file '%s'\n", cfg.input)
		return errCompileFailed
	}

	outFile := cfg.output
	if outFile == "" {
		outFile = driver.DerivedOutputName(cfg.input, cfg.emit)
	}

	var cache *driver.DiskCache
	var cacheKey driver.CacheKey
	if !cfg.noCache && !cfg.dumpAST {
		if c, err := driver.OpenDiskCache("flux"); err == nil {
			cache = c
			cacheKey = driver.MakeCacheKey(sha256.Sum256(content), cfg.opt, cfg.target)
			var payload driver.CachePayload
			if hit, _ := cache.Get(cacheKey, &payload); hit {
				return writeArtifact(payload.Output, cfg, outFile)
			}
		}
	}

	var timings *driver.Timings
	if cfg.timings {
		timings = driver.NewTimings()
	}

	opts := driver.Options{MaxDiagnostics: maxDiag, Timings: timings}
	uiDone := make(chan struct{})
	var sink *ui.ChannelSink
	if shouldUseTUI(cfg.uiMode) && !cfg.quiet && !cfg.dumpAST {
		sink = ui.NewChannelSink(64)
		opts.Events = sink
		go func() {
			defer close(uiDone)
			_ = ui.RunProgress("compiling "+filepath.Base(cfg.input), []string{cfg.input}, sink.C)
		}()
	} else {
		close(uiDone)
	}

	res, err := driver.CompileContent(cfg.input, content, opts)
	if sink != nil {
		sink.Close()
		<-uiDone
	}
	if err != nil {
		return err
	}

	if res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: colorErr, Max: maxDiag})
	}
	if res.Bag.HasErrors() {
		diagfmt.ErrorSummary(os.Stderr, res.Bag.ErrorCount())
		return errCompileFailed
	}

	if cfg.dumpAST {
		stem := strings.TrimSuffix(filepath.Base(cfg.input), filepath.Ext(cfg.input))
		diagfmt.FormatASTSummary(os.Stdout, res.Builder, res.ASTFile, stem)
	}

	irText := llvm.EmitModule(res.Module)
	if cache != nil {
		_ = cache.Put(cacheKey, &driver.CachePayload{
			Path:       cfg.input,
			ModuleName: res.Module.Name,
			Output:     irText,
		})
	}

	if err := writeArtifact(irText, cfg, outFile); err != nil {
		return err
	}

	if cfg.timings {
		timings.Write(os.Stderr)
	}
	return nil
}

func writeArtifact(irText string, cfg *compileConfig, outFile string) error {
	if err := driver.WriteOutput(irText, cfg.emit, outFile, cfg.opt, cfg.target); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output to '%s'\n", outFile)
		return errCompileFailed
	}
	if cfg.emit == driver.EmitExe && !cfg.quiet {
		fmt.Printf("Output written to %s\n", outFile)
	}
	return nil
}

// dumpTokens lexes the file and prints the stream. The boolean reports
// whether lexical errors should stop the run.
func dumpTokens(path string, maxDiag int, colored bool) (bool, error) {
	result, err := driver.Tokenize(path, maxDiag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not open file '%s'\n", path)
		return false, errCompileFailed
	}
	diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: colored, Max: maxDiag})
	}
	return result.Bag.HasErrors(), nil
}
