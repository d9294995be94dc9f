// Package runner executes batch apply and preview operations over .rej
// files. Every file is processed independently: one unreadable or
// unwritable file is reported and the batch moves on.
package runner

import (
	"context"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/rejx-dev/rejx/internal/logging"
	"github.com/rejx-dev/rejx/pkg/rej"
)

// diffContextLines is the amount of unchanged context shown around each
// change in preview output.
const diffContextLines = 3

// Runner merges .rej files into their targets.
type Runner struct {
	log  *logging.Logger
	opts rej.Options
}

// New creates a Runner. log must not be nil; use logging.NewNop to silence.
func New(log *logging.Logger, opts rej.Options) *Runner {
	return &Runner{log: log, opts: opts}
}

// FileResult reports the outcome for a single .rej file.
type FileResult struct {
	RejPath    string
	TargetPath string
	Err        error
}

// OK reports whether the file was processed successfully.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// FileDiff holds the rendered unified diff for one previewed .rej file.
type FileDiff struct {
	RejPath    string
	TargetPath string
	DiffText   string
}

// Apply merges rejPath into its target file and writes the result back in
// place. Failures are captured in the result, never panicked or fatal.
func (r *Runner) Apply(ctx context.Context, rejPath string) FileResult {
	result := FileResult{RejPath: rejPath}

	merged, err := r.merge(ctx, &result)
	if err != nil {
		result.Err = err
		r.log.FileFailed("apply", rejPath, err)
		return result
	}

	if err := rej.WriteLines(result.TargetPath, merged); err != nil {
		result.Err = err
		r.log.FileFailed("apply", rejPath, err)
		return result
	}

	r.log.Applied(rejPath, result.TargetPath)
	return result
}

// ApplyAll applies every path in order. Cancellation stops the batch; the
// results produced so far are returned.
func (r *Runner) ApplyAll(ctx context.Context, rejPaths []string) []FileResult {
	results := make([]FileResult, 0, len(rejPaths))
	for _, path := range rejPaths {
		if ctx.Err() != nil {
			break
		}
		results = append(results, r.Apply(ctx, path))
	}
	return results
}

// Preview merges rejPath without writing anything and returns the unified
// diff between the target's current content and the merge result.
func (r *Runner) Preview(ctx context.Context, rejPath string) (FileDiff, error) {
	result := FileResult{RejPath: rejPath}

	merged, err := r.merge(ctx, &result)
	if err != nil {
		r.log.FileFailed("preview", rejPath, err)
		return FileDiff{}, err
	}

	targetLines, err := rej.ReadLines(result.TargetPath)
	if err != nil {
		r.log.FileFailed("preview", rejPath, err)
		return FileDiff{}, err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        targetLines,
		B:        merged,
		FromFile: result.TargetPath,
		ToFile:   rejPath,
		Context:  diffContextLines,
	})
	if err != nil {
		r.log.FileFailed("preview", rejPath, err)
		return FileDiff{}, err
	}

	return FileDiff{
		RejPath:    rejPath,
		TargetPath: result.TargetPath,
		DiffText:   text,
	}, nil
}

// PreviewAll previews every path in order, splitting successes from
// failures so one broken file does not hide the remaining diffs.
func (r *Runner) PreviewAll(ctx context.Context, rejPaths []string) ([]FileDiff, []FileResult) {
	diffs := make([]FileDiff, 0, len(rejPaths))
	var failures []FileResult
	for _, path := range rejPaths {
		if ctx.Err() != nil {
			break
		}
		diff, err := r.Preview(ctx, path)
		if err != nil {
			failures = append(failures, FileResult{RejPath: path, Err: err})
			continue
		}
		diffs = append(diffs, diff)
	}
	return diffs, failures
}

// merge resolves the target path, loads both files and runs the merge.
// result.TargetPath is populated as soon as it is known.
func (r *Runner) merge(ctx context.Context, result *FileResult) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	targetPath, err := rej.TargetPath(result.RejPath)
	if err != nil {
		return nil, err
	}
	result.TargetPath = targetPath

	rejLines, err := rej.ReadLines(result.RejPath)
	if err != nil {
		return nil, err
	}
	targetLines, err := rej.ReadLines(targetPath)
	if err != nil {
		return nil, err
	}

	return rej.Merge(targetLines, rejLines, r.opts)
}

// Summary aggregates batch results for exit reporting.
type Summary struct {
	Succeeded int
	Failed    int
}

// Summarize counts successes and failures in results.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, result := range results {
		if result.OK() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
