package rej

import "strings"

// Options configure how Merge treats structurally odd input.
type Options struct {
	// Strict makes a `@@` line that fails the header pattern a
	// CodeMalformedHunk error. The default (lenient) behavior matches the
	// original tool: the line is reclassified as ordinary content and the
	// merge degrades gracefully.
	//
	// Strict mode does not detect drift between the .rej file's recorded
	// context lines and the target file: context lines are always
	// re-confirmed from the target, so the .rej copy of the text is never
	// compared against anything.
	Strict bool
}

// Merge applies the hunks found in rejLines to targetLines and returns the
// resulting line sequence. Both inputs carry their trailing newlines, as
// produced by ReadLines. targetLines is never mutated.
//
// The walk is a single forward pass over rejLines with one read cursor
// into the target. Regions of the target not covered by any hunk are
// copied verbatim; inside a hunk, additions are inserted without moving
// the cursor, deletions consume the target line at the cursor without
// emitting it, and context lines re-confirm the target's own text at the
// cursor. Hunk boundaries are inferred from the next header line or end
// of input; the counts declared in the header are never consulted.
//
// In lenient mode the returned error is always nil: input with no valid
// hunk header yields the target unchanged.
func Merge(targetLines, rejLines []string, opts Options) ([]string, error) {
	var (
		newLines []string
		current  []string
		inHunk   bool
		cursor   int // next unconsumed target line; never moves backward
	)

	for _, line := range rejLines {
		if IsHunkHeaderCandidate(line) {
			header, ok := ParseHunkHeader(line)
			if ok {
				if inHunk {
					// Finalize the previous hunk before starting the next.
					newLines = append(newLines, current...)
					current = nil
				}
				// Untouched region between the previous hunk (or file
				// start) and this hunk.
				for cursor < len(targetLines) && cursor < header.Offset() {
					newLines = append(newLines, targetLines[cursor])
					cursor++
				}
				inHunk = true
				continue
			}
			if opts.Strict {
				return nil, malformedHunkError(line)
			}
			// Lenient: fall through and treat the line as hunk content.
		}

		if !inHunk {
			// Everything before the first header, including the ---/+++
			// file identification lines, produces no output.
			continue
		}

		switch ClassifyLine(line) {
		case OpAddition:
			current = append(current, strings.TrimRight(line[1:], "\n")+"\n")
		case OpDeletion:
			// Consume the target line without carrying it over.
			if cursor < len(targetLines) {
				cursor++
			}
		case OpContext:
			if cursor < len(targetLines) {
				// Take the target's own line rather than the .rej copy, so
				// a corrupted context line in the .rej file self-heals.
				current = append(current, targetLines[cursor])
				cursor++
			}
		}
	}

	if inHunk {
		newLines = append(newLines, current...)
	}

	// Untouched tail after the last hunk.
	if cursor < len(targetLines) {
		newLines = append(newLines, targetLines[cursor:]...)
	}

	return newLines, nil
}
