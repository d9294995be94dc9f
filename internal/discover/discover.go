// Package discover locates .rej files under a directory tree.
package discover

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/rejx-dev/rejx/pkg/rej"
)

// Options narrow the set of files Find returns.
type Options struct {
	// IncludeHidden also returns dot-files and descends into dot-directories.
	// The root itself is always entered, even when its name starts with a dot.
	IncludeHidden bool
	// Ignore holds regular expressions matched against the slash-separated
	// path relative to the walk root; matching files are skipped.
	Ignore []string
}

// Find walks root recursively and returns every *.rej file, sorted. Paths
// are returned relative to root when root is relative, mirroring what the
// user typed. A pattern that does not compile is reported before any
// filesystem work happens.
func Find(root string, opts Options) ([]string, error) {
	if root == "" {
		root = "."
	}

	ignore := make([]*regexp.Regexp, 0, len(opts.Ignore))
	for _, pattern := range opts.Ignore {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		ignore = append(ignore, re)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		hidden := strings.HasPrefix(name, ".") && name != "." && name != ".."

		if d.IsDir() {
			if hidden && !opts.IncludeHidden && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != rej.Extension {
			return nil
		}
		if hidden && !opts.IncludeHidden {
			return nil
		}

		relative := path
		if r, relErr := filepath.Rel(root, path); relErr == nil {
			relative = r
		}
		candidate := filepath.ToSlash(relative)
		for _, re := range ignore {
			if re.MatchString(candidate) {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
