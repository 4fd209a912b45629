package driver

import (
	"path/filepath"
	"strings"

	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/ir"
	"flux/internal/lexer"
	"flux/internal/parser"
	"flux/internal/sema"
	"flux/internal/source"
	"flux/internal/symbols"
	"flux/internal/ui"
)

// Options configures one pipeline run. Zero values give sensible
// defaults: up to 256 diagnostics, no events, no timings.
type Options struct {
	MaxDiagnostics int
	ModuleName     string
	Events         ui.Sink
	Timings        *Timings
}

func (o *Options) events() ui.Sink {
	if o.Events == nil {
		return ui.NopSink{}
	}
	return o.Events
}

func (o *Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 256
	}
	return o.MaxDiagnostics
}

// Result carries everything the front end and lowering produced for
// one file. Module is nil when diagnostics blocked lowering.
type Result struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Builder *ast.Builder
	ASTFile ast.FileID
	Scope   symbols.ScopeID
	Bag     *diag.Bag
	Module  *ir.Module
}

// Diagnose runs the front end on one file: parse, resolve, check. The
// resolver and checker always run to completion over whatever the
// parser recovered, so one bag holds every phase's findings.
func Diagnose(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return diagnoseLoaded(fs, fileID, path, opts)
}

// DiagnoseContent runs the front end over in-memory content, for tests
// and tooling that have no file on disk.
func DiagnoseContent(name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return diagnoseLoaded(fs, fileID, name, opts)
}

func diagnoseLoaded(fs *source.FileSet, fileID source.FileID, path string, opts Options) (*Result, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.BagReporter{Bag: bag}
	events := opts.events()
	timings := opts.Timings

	res := &Result{FileSet: fs, FileID: fileID, Bag: bag}

	events.OnEvent(ui.Event{File: path, Stage: ui.StageParse, Status: ui.StatusWorking})
	timings.measure(ui.StageParse, func() {
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		builder := ast.NewBuilder(source.NewInterner(), ast.Hints{})
		parsed := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})
		res.Builder = builder
		res.ASTFile = parsed.File
	})

	events.OnEvent(ui.Event{File: path, Stage: ui.StageResolve, Status: ui.StatusWorking})
	var resolver *sema.Resolver
	timings.measure(ui.StageResolve, func() {
		resolver = sema.NewResolver(res.Builder, nil, sema.ResolverOptions{Reporter: reporter})
		res.Scope = resolver.Resolve(res.ASTFile)
	})

	events.OnEvent(ui.Event{File: path, Stage: ui.StageCheck, Status: ui.StatusWorking})
	timings.measure(ui.StageCheck, func() {
		checker := sema.NewChecker(res.Builder, resolver.Table(), resolver.Uses(), sema.CheckerOptions{Reporter: reporter})
		checker.Check(res.ASTFile, res.Scope)
	})

	return res, nil
}

// Compile runs the front end and, when it comes back clean, lowers the
// file to an IR module. A bag with errors leaves Module nil.
func Compile(path string, opts Options) (*Result, error) {
	res, err := Diagnose(path, opts)
	if err != nil {
		return nil, err
	}
	lowerResult(res, path, opts)
	return res, nil
}

// CompileContent is Compile over in-memory content.
func CompileContent(name string, content []byte, opts Options) (*Result, error) {
	res, err := DiagnoseContent(name, content, opts)
	if err != nil {
		return nil, err
	}
	lowerResult(res, name, opts)
	return res, nil
}

func lowerResult(res *Result, path string, opts Options) {
	if res.Bag.HasErrors() {
		opts.events().OnEvent(ui.Event{File: path, Stage: ui.StageCheck, Status: ui.StatusError})
		return
	}
	opts.events().OnEvent(ui.Event{File: path, Stage: ui.StageEmit, Status: ui.StatusWorking})
	opts.Timings.measure(ui.StageEmit, func() {
		emitter := ir.NewEmitter(res.Builder, ir.EmitOptions{
			ModuleName: moduleNameFor(res, path, opts),
			Reporter:   diag.BagReporter{Bag: res.Bag},
		})
		res.Module = emitter.EmitFile(res.ASTFile)
	})
	status := ui.StatusDone
	if res.Bag.HasErrors() {
		status = ui.StatusError
	}
	opts.events().OnEvent(ui.Event{File: path, Stage: ui.StageEmit, Status: status})
}

// moduleNameFor prefers the declared module path, then an explicit
// option, then the file stem.
func moduleNameFor(res *Result, path string, opts Options) string {
	if name := res.Builder.ModuleName(res.ASTFile); name != "" {
		return name
	}
	if opts.ModuleName != "" {
		return opts.ModuleName
	}
	stem := filepath.Base(path)
	if ext := filepath.Ext(stem); ext != "" {
		stem = strings.TrimSuffix(stem, ext)
	}
	return stem
}
