package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rejx-dev/rejx/internal/logging"
	"github.com/rejx-dev/rejx/pkg/rej"
)

const sampleRej = `--- sample.txt
+++ sample.txt
@@ -2,3 +2,3 @@
-Line 2
+Line 2 - Modified
Line 3
`

// writeSample lays out the canonical target/.rej pair in dir and returns
// the .rej path.
func writeSample(t *testing.T, dir string) string {
	t.Helper()
	targetPath := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(targetPath, []byte("Line 1\nLine 2\nLine 3\n"), 0o644); err != nil {
		t.Fatalf("write target: %v", err)
	}
	rejPath := targetPath + ".rej"
	if err := os.WriteFile(rejPath, []byte(sampleRej), 0o644); err != nil {
		t.Fatalf("write rej: %v", err)
	}
	return rejPath
}

func TestApplyRewritesTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rejPath := writeSample(t, dir)
	r := New(logging.NewNop(), rej.Options{})

	result := r.Apply(context.Background(), rejPath)
	if !result.OK() {
		t.Fatalf("apply failed: %v", result.Err)
	}
	if result.TargetPath != filepath.Join(dir, "sample.txt") {
		t.Fatalf("unexpected target path: %s", result.TargetPath)
	}

	data, err := os.ReadFile(result.TargetPath)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "Line 1\nLine 2 - Modified\nLine 3\n" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestApplyMissingTargetIsIsolated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	orphan := filepath.Join(dir, "gone.txt.rej")
	if err := os.WriteFile(orphan, []byte(sampleRej), 0o644); err != nil {
		t.Fatalf("write rej: %v", err)
	}
	good := writeSample(t, dir)
	r := New(logging.NewNop(), rej.Options{})

	results := r.ApplyAll(context.Background(), []string{orphan, good})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].OK() {
		t.Fatalf("orphan .rej should fail")
	}
	var perr *rej.Error
	if ok := errors.As(results[0].Err, &perr); !ok || perr.Code != rej.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", results[0].Err)
	}
	if !results[1].OK() {
		t.Fatalf("good file should still apply: %v", results[1].Err)
	}

	summary := Summarize(results)
	if summary.Succeeded != 1 || summary.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestApplyRejectsNonRejPath(t *testing.T) {
	t.Parallel()

	r := New(logging.NewNop(), rej.Options{})
	result := r.Apply(context.Background(), "plain.txt")
	if result.OK() {
		t.Fatalf("expected failure for non-.rej path")
	}
}

func TestPreviewDoesNotWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rejPath := writeSample(t, dir)
	r := New(logging.NewNop(), rej.Options{})

	diff, err := r.Preview(context.Background(), rejPath)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if !strings.Contains(diff.DiffText, "-Line 2\n") || !strings.Contains(diff.DiffText, "+Line 2 - Modified\n") {
		t.Fatalf("diff missing expected changes:\n%s", diff.DiffText)
	}
	if !strings.Contains(diff.DiffText, "--- "+diff.TargetPath) {
		t.Fatalf("diff missing from-file header:\n%s", diff.DiffText)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sample.txt"))
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(data) != "Line 1\nLine 2\nLine 3\n" {
		t.Fatalf("preview must not modify the target, got %q", data)
	}
}

func TestPreviewAllSplitsFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeSample(t, dir)
	missing := filepath.Join(dir, "absent.txt.rej")
	r := New(logging.NewNop(), rej.Options{})

	diffs, failures := r.PreviewAll(context.Background(), []string{missing, good})
	if len(diffs) != 1 || len(failures) != 1 {
		t.Fatalf("expected 1 diff and 1 failure, got %d and %d", len(diffs), len(failures))
	}
	if diffs[0].RejPath != good {
		t.Fatalf("unexpected diff entry: %+v", diffs[0])
	}
}

func TestApplyAllStopsOnCancel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rejPath := writeSample(t, dir)
	r := New(logging.NewNop(), rej.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := r.ApplyAll(ctx, []string{rejPath})
	if len(results) != 0 {
		t.Fatalf("cancelled batch should produce no results, got %d", len(results))
	}
}
