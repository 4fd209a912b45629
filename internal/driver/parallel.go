package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the extension the directory walkers look for.
const SourceExt = ".fl"

// DirResult pairs one file's path with its pipeline result.
type DirResult struct {
	Path   string
	Result *Result
	Err    error
}

// ListSourceFiles returns every source file under dir, sorted, with
// paths relative to dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), SourceExt) {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// DiagnoseDir runs the front end over every source file under dir,
// fanning out across jobs goroutines. Results keep file order; a file
// that failed to load carries its error rather than aborting the rest.
func DiagnoseDir(ctx context.Context, dir string, jobs int, opts Options) ([]DirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, rel := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Diagnose(filepath.Join(dir, rel), opts)
			results[i] = DirResult{Path: rel, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
