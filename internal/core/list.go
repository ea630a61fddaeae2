package core

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// ListFolderContents returns the full paths of the immediate children of
// path, sorted ascending. Subdirectories are listed, not expanded. Each
// entry is path as given joined with the child name, so "./dir" lists as
// "./dir/name".
func (o *Ops) ListFolderContents(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	isDir, err := o.isDir(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	if !isDir {
		return nil, ErrNotDir.At(path)
	}

	infos, err := afero.ReadDir(o.cfg.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	prefix := path
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	entries := make([]string, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, prefix+info.Name())
	}
	slices.Sort(entries)
	return entries, nil
}
