package rej

import (
	"regexp"
	"strconv"
	"strings"
)

// hunkHeaderRegex matches the numeric portion of a unified-diff hunk header.
// Trailing section text after the closing @@ is tolerated.
var hunkHeaderRegex = regexp.MustCompile(`@@ -(\d+),(\d+) \+(\d+),(\d+) @@`)

// HunkHeader holds the four numbers of a `@@ -a,b +c,d @@` line. Only
// OldStart drives the merge; the counts are informational and never
// validated against the hunk body.
type HunkHeader struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
}

// Offset returns the 0-based index into the target file where the hunk
// begins. Hunk headers are 1-based on the wire.
func (h HunkHeader) Offset() int {
	return h.OldStart - 1
}

// ParseHunkHeader extracts a HunkHeader from line. The second return value
// reports whether the line matched; a `@@` line that fails the pattern is
// not a header and must be classified like any other body line.
func ParseHunkHeader(line string) (HunkHeader, bool) {
	matches := hunkHeaderRegex.FindStringSubmatch(line)
	if matches == nil {
		return HunkHeader{}, false
	}
	// The pattern only admits digits, so the conversions cannot fail.
	oldStart, _ := strconv.Atoi(matches[1])
	oldCount, _ := strconv.Atoi(matches[2])
	newStart, _ := strconv.Atoi(matches[3])
	newCount, _ := strconv.Atoi(matches[4])
	return HunkHeader{
		OldStart: oldStart,
		OldCount: oldCount,
		NewStart: newStart,
		NewCount: newCount,
	}, true
}

// IsHunkHeaderCandidate reports whether line claims to be a hunk header.
// Candidates that fail ParseHunkHeader are handled according to
// Options.Strict.
func IsHunkHeaderCandidate(line string) bool {
	return strings.HasPrefix(line, "@@")
}

// LineOp classifies one body line of a .rej file.
type LineOp int

const (
	// OpContext marks an unchanged line. Any line without a +/- prefix
	// falls back to context. The ---/+++ file headers classify as
	// deletion/addition by prefix, but the merge engine never sees them
	// as hunk content because they precede the first hunk header.
	OpContext LineOp = iota
	// OpAddition marks a `+` line to insert into the target.
	OpAddition
	// OpDeletion marks a `-` line to drop from the target.
	OpDeletion
)

// String returns a short name for the op, used in log output.
func (op LineOp) String() string {
	switch op {
	case OpAddition:
		return "add"
	case OpDeletion:
		return "delete"
	default:
		return "context"
	}
}

// ClassifyLine derives the LineOp from the line's leading character.
func ClassifyLine(line string) LineOp {
	switch {
	case strings.HasPrefix(line, "+"):
		return OpAddition
	case strings.HasPrefix(line, "-"):
		return OpDeletion
	default:
		return OpContext
	}
}
