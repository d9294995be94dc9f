package rej

import (
	"reflect"
	"testing"
)

func TestMergeSubstitution(t *testing.T) {
	t.Parallel()

	target := []string{"Line 1\n", "Line 2\n", "Line 3\n"}
	rejLines := []string{
		"--- sample.txt\n",
		"+++ sample.txt\n",
		"@@ -2,3 +2,3 @@\n",
		"-Line 2\n",
		"+Line 2 - Modified\n",
		"Line 3\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	want := []string{"Line 1\n", "Line 2 - Modified\n", "Line 3\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeContextOnlyHunkIsNoOp(t *testing.T) {
	t.Parallel()

	target := []string{"A\n", "B\n", "C\n"}
	rejLines := []string{
		"@@ -1,3 +1,3 @@\n",
		" A\n",
		" B\n",
		" C\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if !reflect.DeepEqual(merged, target) {
		t.Fatalf("context-only hunk changed content: %#v", merged)
	}
}

func TestMergeAdditionKeepsTail(t *testing.T) {
	t.Parallel()

	target := []string{"A\n", "B\n", "C\n"}
	rejLines := []string{
		"@@ -2,1 +2,2 @@\n",
		" B\n",
		"+X\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	want := []string{"A\n", "B\n", "X\n", "C\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeDeletionRemovesLine(t *testing.T) {
	t.Parallel()

	target := []string{"A\n", "B\n", "C\n"}
	rejLines := []string{
		"@@ -2,1 +1,0 @@\n",
		"-B\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	want := []string{"A\n", "C\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeMultipleHunksApplyInOrder(t *testing.T) {
	t.Parallel()

	target := []string{"one\n", "two\n", "three\n", "four\n", "five\n", "six\n"}
	rejLines := []string{
		"--- numbers.txt\n",
		"+++ numbers.txt\n",
		"@@ -2,1 +2,1 @@\n",
		"-two\n",
		"+TWO\n",
		"@@ -5,1 +5,1 @@\n",
		"-five\n",
		"+FIVE\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	want := []string{"one\n", "TWO\n", "three\n", "four\n", "FIVE\n", "six\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeContextReconfirmedFromTarget(t *testing.T) {
	t.Parallel()

	// The .rej file's copy of the context line is corrupted; the target's
	// own text must win.
	target := []string{"alpha\n", "beta\n", "gamma\n"}
	rejLines := []string{
		"@@ -1,2 +1,3 @@\n",
		" CORRUPTED\n",
		"+inserted\n",
		" beta\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	want := []string{"alpha\n", "inserted\n", "beta\n", "gamma\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeNoHeadersReturnsTargetUnchanged(t *testing.T) {
	t.Parallel()

	target := []string{"keep\n", "these\n"}
	rejLines := []string{"--- a\n", "+++ b\n", "stray content\n"}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if !reflect.DeepEqual(merged, target) {
		t.Fatalf("headerless input should be a no-op, got %#v", merged)
	}
}

func TestMergeMalformedHeaderLenient(t *testing.T) {
	t.Parallel()

	target := []string{"A\n", "B\n", "C\n"}
	rejLines := []string{
		"@@ -2,1 +2,1 @@\n",
		"-B\n",
		"+b\n",
		"@@ not a real header\n",
		" C\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	// The broken header does not start a hunk; it is consumed as a context
	// line and re-confirmed from the target.
	want := []string{"A\n", "b\n", "C\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeMalformedHeaderStrict(t *testing.T) {
	t.Parallel()

	target := []string{"A\n"}
	rejLines := []string{"@@ broken\n"}

	_, err := Merge(target, rejLines, Options{Strict: true})
	if err == nil {
		t.Fatalf("expected error in strict mode")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Code != CodeMalformedHunk {
		t.Fatalf("unexpected code: %s", perr.Code)
	}
}

func TestMergeAdditionWithoutTrailingNewline(t *testing.T) {
	t.Parallel()

	target := []string{"A\n"}
	rejLines := []string{
		"@@ -1,1 +1,2 @@\n",
		" A\n",
		"+tail",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	// Added lines are normalized to exactly one trailing newline.
	want := []string{"A\n", "tail\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeHunkBeyondTargetEnd(t *testing.T) {
	t.Parallel()

	target := []string{"A\n"}
	rejLines := []string{
		"@@ -99,1 +99,1 @@\n",
		" context past the end\n",
		"+appended\n",
	}

	merged, err := Merge(target, rejLines, Options{})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	want := []string{"A\n", "appended\n"}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("unexpected result: %#v", merged)
	}
}

func TestMergeDoesNotMutateTarget(t *testing.T) {
	t.Parallel()

	target := []string{"A\n", "B\n"}
	rejLines := []string{"@@ -1,1 +1,1 @@\n", "-A\n", "+a\n"}

	if _, err := Merge(target, rejLines, Options{}); err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if target[0] != "A\n" || target[1] != "B\n" {
		t.Fatalf("target mutated: %#v", target)
	}
}
