package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/giantswarm/fileio/internal/fileutil"
	"github.com/giantswarm/fileio/internal/sentinel"
)

const (
	// ErrEmptySearch is returned by the replace operations when the string
	// to search for is empty.
	ErrEmptySearch = sentinel.Error("search string must not be empty")

	// ErrInvalidPattern is returned by ReplaceStrInMatchingFiles for a
	// malformed glob pattern.
	ErrInvalidPattern = sentinel.Error("invalid glob pattern")
)

// ReplaceSummary reports the outcome of a bulk replacement.
type ReplaceSummary struct {
	// Scanned counts the regular files the replacement was attempted on.
	Scanned int
	// Modified counts the files that contained the search string and were
	// rewritten.
	Modified int
	// Failed lists the files that could not be read or written, in
	// traversal order.
	Failed []string
}

// ReplaceStrInFile replaces every non-overlapping occurrence of old with new
// in the file at path. The file is only rewritten when old occurs in it.
func (o *Ops) ReplaceStrInFile(path, old, new string) error {
	if old == "" {
		return ErrEmptySearch
	}
	_, err := o.replaceInFile(path, old, new)
	return err
}

// ReplaceStrInFiles applies ReplaceStrInFile to every regular file below
// root. A file that fails is logged, recorded in the summary and skipped;
// the returned error only reports invalid arguments.
func (o *Ops) ReplaceStrInFiles(root, old, new string) (ReplaceSummary, error) {
	if root == "" {
		return ReplaceSummary{}, ErrEmptyPath
	}
	if old == "" {
		return ReplaceSummary{}, ErrEmptySearch
	}
	return o.replaceAll(root, nil, old, new), nil
}

// ReplaceStrInMatchingFiles is ReplaceStrInFiles restricted to files whose
// slash-separated path relative to root matches pattern. Patterns use
// doublestar syntax, so "**/*.go" matches Go files at any depth.
func (o *Ops) ReplaceStrInMatchingFiles(root, pattern, old, new string) (ReplaceSummary, error) {
	if root == "" {
		return ReplaceSummary{}, ErrEmptyPath
	}
	if old == "" {
		return ReplaceSummary{}, ErrEmptySearch
	}
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return ReplaceSummary{}, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	match := func(path string) bool {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return false
		}
		if rel == "." {
			rel = filepath.Base(path)
		}
		ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel))
		return ok
	}
	return o.replaceAll(root, match, old, new), nil
}

// replaceAll walks root and replaces in every regular file accepted by
// match (all files when match is nil).
func (o *Ops) replaceAll(root string, match func(string) bool, old, new string) ReplaceSummary {
	var summary ReplaceSummary
	for path := range o.Walk(root) {
		info, err := o.cfg.Fs.Stat(path)
		if err != nil {
			Logger().Warn("failed to replace in file", "path", path, "err", err)
			summary.Failed = append(summary.Failed, path)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if match != nil && !match(path) {
			continue
		}

		summary.Scanned++
		changed, err := o.replaceInFile(path, old, new)
		if err != nil {
			Logger().Warn("failed to replace in file", "path", path, "err", err)
			summary.Failed = append(summary.Failed, path)
			continue
		}
		if changed {
			summary.Modified++
		}
	}
	return summary
}

// replaceInFile rewrites path with old replaced by new and reports whether
// it did. The file keeps its permission bits.
func (o *Ops) replaceInFile(path, old, new string) (bool, error) {
	content, err := o.LoadFileAsString(path)
	if err != nil {
		return false, err
	}
	if !strings.Contains(content, old) {
		return false, nil
	}
	info, err := o.cfg.Fs.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	replaced := strings.ReplaceAll(content, old, new)
	err = o.write(path, func(opts *fileutil.WriteOptions) error {
		opts.Mode = info.Mode().Perm()
		return fileutil.WriteFile(o.cfg.Fs, path, []byte(replaced), opts)
	})
	if err != nil {
		return false, fmt.Errorf("rewrite %s: %w", path, err)
	}
	return true, nil
}
