package prune

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"surgemin/internal/source"
	"surgemin/internal/unused"
)

// Change is the outcome for one file: its bytes as read and as proposed.
// It is created only when the two differ.
type Change struct {
	Path     string
	Original []byte
	Proposed []byte
}

// Options configures an Engine.
type Options struct {
	Strategy Strategy
	// BaseDir anchors the relative paths diagnostics carry. Empty means
	// the current directory.
	BaseDir string
	// Jobs caps the worker count; <= 0 means one worker per CPU.
	Jobs int
}

// Engine runs the per-file pipeline: resolve every diagnostic to a span,
// expand, delete, clean up. Files are independent, so they run on parallel
// workers; each worker owns its buffer exclusively.
type Engine struct {
	resolver Resolver
	baseDir  string
	jobs     int
}

func NewEngine(opts Options) *Engine {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Engine{
		resolver: NewResolver(opts.Strategy),
		baseDir:  opts.BaseDir,
		jobs:     jobs,
	}
}

// Run prunes every file the diagnostics mention and returns the changes
// sorted by path. Any resolution, reparse or read failure aborts the whole
// run: nothing is written at this stage, so aborting is always safe.
func (e *Engine) Run(ctx context.Context, diags []unused.Diagnostic) ([]Change, error) {
	groups := make(map[string][]unused.Diagnostic)
	for _, d := range diags {
		groups[d.Span.FileName] = append(groups[d.Span.FileName], d)
	}
	paths := make([]string, 0, len(groups))
	for p := range groups {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	results := make([]*Change, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ch, err := e.processFile(path, groups[path])
			if err != nil {
				return err
			}
			results[i] = ch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	changes := make([]Change, 0, len(results))
	for _, ch := range results {
		if ch != nil {
			changes = append(changes, *ch)
		}
	}
	return changes, nil
}

func (e *Engine) processFile(path string, diags []unused.Diagnostic) (*Change, error) {
	full := path
	if e.baseDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(e.baseDir, path)
	}
	fs := source.NewFileSetWithBase(e.baseDir)
	id, err := fs.Load(full)
	if err != nil {
		return nil, fmt.Errorf("prune: read %s: %w", path, err)
	}
	file := fs.Get(id)

	spans := make([]source.Span, 0, len(diags))
	for _, d := range diags {
		sp, err := e.resolver.Resolve(file, d)
		if err != nil {
			return nil, err
		}
		spans = append(spans, Expand(file.Content, sp))
	}

	pruned := Delete(file.Content, spans)
	final, err := Cleanup(fs, path, pruned)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(final, file.Content) {
		return nil, nil
	}
	return &Change{Path: full, Original: file.Content, Proposed: final}, nil
}
