package walk

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// SkipFunc is called for every entry the walk cannot read. It must not
// stop the traversal; it exists so callers can log what was left out.
type SkipFunc func(path string, err error)

// Seq returns a lazy depth-first, pre-order sequence of every entry below
// root on fsys. Root itself is not yielded unless it is not a directory, in
// which case it is the only entry.
//
// Unreadable entries are passed to skip (which may be nil) and omitted.
// Symbolic links below root are yielded but never descended into; the root
// itself is resolved through Stat so a symlinked root is walked.
//
// Each range over the sequence performs a fresh traversal.
func Seq(fsys afero.Fs, root string, skip SkipFunc) iter.Seq[string] {
	if skip == nil {
		skip = func(string, error) {}
	}
	return func(yield func(string) bool) {
		info, err := fsys.Stat(root)
		if err != nil {
			skip(root, err)
			return
		}
		if !info.IsDir() {
			yield(root)
			return
		}
		descend(fsys, root, skip, yield)
	}
}

// descend yields the children of dir and recurses into child directories.
// It returns false once yield asks to stop.
func descend(fsys afero.Fs, dir string, skip SkipFunc, yield func(string) bool) bool {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		skip(dir, err)
		return true
	}
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		if !yield(path) {
			return false
		}
		if info.Mode()&os.ModeSymlink != 0 || !info.IsDir() {
			continue
		}
		if !descend(fsys, path, skip, yield) {
			return false
		}
	}
	return true
}
