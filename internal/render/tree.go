package render

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

// treeRootLabel heads the tree view of discovered .rej files.
const treeRootLabel = "rejected files"

// FileTree renders paths as a directory hierarchy. Paths are expected in
// sorted order, as returned by discover.Find, so siblings group naturally.
func FileTree(paths []string) string {
	root := tree.Root(Header.Render(treeRootLabel))
	entries := make([][]string, 0, len(paths))
	for _, path := range paths {
		parts := strings.Split(filepath.ToSlash(path), "/")
		if len(parts) == 0 {
			continue
		}
		entries = append(entries, parts)
	}
	addNodes(root, entries)
	return root.String()
}

// addNodes groups entries by their leading path component and attaches one
// child per group: a styled subtree for directories, a plain leaf for files.
func addNodes(parent *tree.Tree, entries [][]string) {
	for i := 0; i < len(entries); {
		head := entries[i][0]
		var children [][]string
		j := i
		for j < len(entries) && entries[j][0] == head {
			if len(entries[j]) > 1 {
				children = append(children, entries[j][1:])
			}
			j++
		}
		if len(children) == 0 {
			parent.Child(head)
		} else {
			sub := tree.Root(dirStyle.Render(head))
			addNodes(sub, children)
			parent.Child(sub)
		}
		i = j
	}
}
