package rej

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the suffix that marks a rejected-hunk file.
const Extension = ".rej"

// TargetPath derives the path of the file a .rej file applies to. The
// final extension must be exactly ".rej"; paths that merely contain the
// marker somewhere else are rejected instead of silently mis-mapped.
func TargetPath(rejPath string) (string, error) {
	if filepath.Ext(rejPath) != Extension {
		return "", fmt.Errorf("not a %s file: %s", Extension, rejPath)
	}
	target := strings.TrimSuffix(rejPath, Extension)
	if target == "" || strings.HasSuffix(target, string(filepath.Separator)) {
		return "", fmt.Errorf("no target file name in %s", rejPath)
	}
	return target, nil
}

// ReadLines loads path and splits it into lines, each keeping its trailing
// newline (the final line may lack one). A missing file yields a
// CodeNotFound error, any other read failure CodeIOFailure.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFoundError(path, err)
		}
		return nil, ioError("read", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines breaks content into newline-terminated segments. Unlike
// strings.Split this does not produce a trailing empty element for content
// ending in a newline, matching the line model Merge operates on.
func SplitLines(content string) []string {
	var lines []string
	for len(content) > 0 {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:idx+1])
		content = content[idx+1:]
	}
	return lines
}

// WriteLines overwrites path with lines. The write goes through a temp
// file in the same directory followed by a rename, so a failed write never
// leaves a half-merged target behind. Existing file permissions are kept.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rejx-*.tmp")
	if err != nil {
		return ioError("write", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(strings.Join(lines, "")); err != nil {
		tmp.Close()
		return ioError("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return ioError("write", path, err)
	}

	if info, statErr := os.Stat(path); statErr == nil {
		_ = os.Chmod(tmpPath, info.Mode())
	} else {
		_ = os.Chmod(tmpPath, 0o644)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return ioError("write", path, err)
	}
	return nil
}
