package core

import (
	"fmt"
	"io"
	"path/filepath"
)

// Tree drawing segments.
const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// WriteFolderTree writes a diagram of the tree rooted at path to w. The
// first line is path as given; every entry below it is drawn with box
// characters, siblings in ListFolderContents order.
//
// decorateDir, when non-nil, rewrites the name of each directory entry
// before it is written (PrintFolderTree uses it for color).
func (o *Ops) WriteFolderTree(path string, w io.Writer, decorateDir func(string) string) error {
	if path == "" {
		return ErrEmptyPath
	}
	entries, err := o.ListFolderContents(path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, path); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return o.writeEntries(w, entries, "", decorateDir)
}

func (o *Ops) writeEntries(w io.Writer, entries []string, prefix string, decorateDir func(string) string) error {
	for i, entry := range entries {
		last := i == len(entries)-1

		connector, indent := branchMid, indentMid
		if last {
			connector, indent = branchLast, indentLast
		}

		// A dangling link is drawn as a leaf.
		isDir, _ := o.isDir(entry)
		name := filepath.Base(entry)
		if isDir && decorateDir != nil {
			name = decorateDir(name)
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, name); err != nil {
			return fmt.Errorf("write tree: %w", err)
		}
		if !isDir {
			continue
		}

		children, err := o.ListFolderContents(entry)
		if err != nil {
			return err
		}
		if err := o.writeEntries(w, children, prefix+indent, decorateDir); err != nil {
			return err
		}
	}
	return nil
}
