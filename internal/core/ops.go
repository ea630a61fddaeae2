package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/giantswarm/fileio/internal/filelock"
	"github.com/giantswarm/fileio/internal/fileutil"
	"github.com/giantswarm/fileio/internal/sentinel"
)

const (
	// ErrEmptyPath is returned when a required path argument is empty.
	ErrEmptyPath = fileutil.ErrEmptyPath

	// ErrNotDir is returned when an operation needs a directory and finds
	// something else.
	ErrNotDir = sentinel.Error("not a directory")

	// ErrIsDir is returned when an operation needs a file and finds a
	// directory.
	ErrIsDir = sentinel.Error("is a directory")

	// ErrNotText is returned by LoadFileAsString for content that is not
	// valid UTF-8.
	ErrNotText = sentinel.Error("file content is not valid UTF-8 text")

	// ErrLockNotAcquired is returned by writes under WriteLocked when the
	// lock could not be taken within the lock timeout.
	ErrLockNotAcquired = filelock.ErrNotAcquired
)

// Ops runs filesystem operations against the filesystem and write settings
// of its Config.
type Ops struct {
	cfg Config
}

// NewOps returns an Ops using cfg.
//
// Panics if cfg is invalid; configs are assembled from validated options, so
// an invalid one is a programmer error.
func NewOps(cfg Config) *Ops {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("fileio: invalid config: %v", err))
	}
	return &Ops{cfg: cfg}
}

// Config returns the configuration of o.
func (o *Ops) Config() Config {
	return o.cfg
}

// Fs returns the filesystem o operates on.
func (o *Ops) Fs() afero.Fs {
	return o.cfg.Fs
}

// CreateFolder creates path and any missing parents. Nothing happens if
// something already exists at path.
func (o *Ops) CreateFolder(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	exists, err := o.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return fileutil.EnsureDir(o.cfg.Fs, path, o.cfg.DirMode)
}

// CreateFolderForFile creates the parent directory of path.
func (o *Ops) CreateFolderForFile(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	return o.CreateFolder(filepath.Dir(path))
}

// CopyFile copies the bytes of from to to, creating the parents of to and
// overwriting it if present.
func (o *Ops) CopyFile(from, to string) error {
	err := o.write(to, func(opts *fileutil.WriteOptions) error {
		return fileutil.CopyFile(o.cfg.Fs, from, to, opts)
	})
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", from, to, err)
	}
	return nil
}

// DeleteFolder removes path and everything below it. A missing path is not
// an error; a path that is not a directory is.
func (o *Ops) DeleteFolder(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	info, err := o.lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("delete folder %s: %w", path, err)
	}
	if !info.IsDir() {
		return ErrNotDir.At(path)
	}
	if err := o.cfg.Fs.RemoveAll(path); err != nil {
		return fmt.Errorf("delete folder %s: %w", path, err)
	}
	return nil
}

// DeleteFile removes the file (or symbolic link) at path. A missing path is
// not an error; a directory is.
func (o *Ops) DeleteFile(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	info, err := o.lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("delete file %s: %w", path, err)
	}
	if info.IsDir() {
		return ErrIsDir.At(path)
	}
	if err := o.cfg.Fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file %s: %w", path, err)
	}
	return nil
}

// LoadFileAsString returns the whole content of path. Content that is not
// valid UTF-8 is rejected with ErrNotText.
func (o *Ops) LoadFileAsString(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	data, err := afero.ReadFile(o.cfg.Fs, path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", ErrNotText.At(path)
	}
	return string(data), nil
}

// SaveStringToFile writes content to path, creating missing parents and
// replacing any previous content.
func (o *Ops) SaveStringToFile(content, path string) error {
	err := o.write(path, func(opts *fileutil.WriteOptions) error {
		return fileutil.WriteFile(o.cfg.Fs, path, []byte(content), opts)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Exists reports whether anything exists at path. Symbolic links are
// followed, so a dangling link does not exist.
func (o *Ops) Exists(path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	ok, err := afero.Exists(o.cfg.Fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return ok, nil
}

// isDir reports whether path resolves to a directory, following links.
func (o *Ops) isDir(path string) (bool, error) {
	info, err := o.cfg.Fs.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// lstat stats path without following a final symbolic link when the
// filesystem supports it.
func (o *Ops) lstat(path string) (os.FileInfo, error) {
	if l, ok := o.cfg.Fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return o.cfg.Fs.Stat(path)
}

// write runs fn with write options derived from the config. Under
// WriteLocked fn runs while holding the cross-process lock for dst.
func (o *Ops) write(dst string, fn func(*fileutil.WriteOptions) error) error {
	if dst == "" {
		return ErrEmptyPath
	}
	opts := &fileutil.WriteOptions{
		Mode:    o.cfg.FileMode,
		DirMode: o.cfg.DirMode,
		Sync:    o.cfg.Sync,
	}

	switch o.cfg.WriteStrategy {
	case WriteAtomic:
		opts.Atomic = true
		return fn(opts)
	case WriteLocked:
		opts.Atomic = true
		return filelock.With(Logger(), o.cfg.LockDir, dst, o.cfg.LockTimeout, func() error {
			return fn(opts)
		})
	default:
		return fn(opts)
	}
}
