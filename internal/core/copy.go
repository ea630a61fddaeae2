package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/giantswarm/fileio/internal/sentinel"
)

// ErrDestinationInsideSource is returned by CopyFolder when the destination
// lies below the source, where the copy would feed its own traversal.
const ErrDestinationInsideSource = sentinel.Error("destination is inside source")

// CopyFolder copies every regular file below from to the same relative path
// below to. Symbolic links to files are copied as files; directories are
// only created as parents of copied files. The copy stops at the first file
// that fails and keeps what was already written.
func (o *Ops) CopyFolder(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyPath
	}
	isDir, err := o.isDir(from)
	if err != nil {
		return fmt.Errorf("copy folder %s: %w", from, err)
	}
	if !isDir {
		return ErrNotDir.At(from)
	}
	if err := checkNotInside(from, to); err != nil {
		return err
	}

	for path := range o.Walk(from) {
		info, err := o.cfg.Fs.Stat(path)
		if err != nil {
			Logger().Debug("skipping unreadable entry", "path", path, "err", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		rel, err := filepath.Rel(from, path)
		if err != nil {
			return fmt.Errorf("copy folder %s: %w", from, err)
		}
		if err := o.CopyFile(path, filepath.Join(to, rel)); err != nil {
			return err
		}
	}
	return nil
}

// checkNotInside fails if to is a strict descendant of from. Both are
// compared as cleaned absolute paths, without resolving links.
func checkNotInside(from, to string) error {
	absFrom, err := filepath.Abs(from)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", from, err)
	}
	absTo, err := filepath.Abs(to)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", to, err)
	}
	rel, err := filepath.Rel(absFrom, absTo)
	if err != nil {
		return nil
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return fmt.Errorf("copy %s to %s: %w", from, to, ErrDestinationInsideSource)
}
