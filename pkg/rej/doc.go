// Package rej provides helpers for parsing .rej files (the rejected hunks
// left behind by a failed patch application) and merging their changes back
// into the target file.
//
// The package operates on plain line slices so it can be embedded in batch
// tooling and tested without touching the filesystem. ReadLines, WriteLines
// and TargetPath cover the thin I/O boundary the CLI builds on.
package rej
