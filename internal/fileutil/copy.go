package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/giantswarm/fileio/internal/sentinel"
)

// ErrEmptyPath is returned when a source or destination path is empty.
const ErrEmptyPath = sentinel.Error("path must not be empty")

// Default permissions for created files and directories.
const (
	DefaultFileMode os.FileMode = 0o644
	DefaultDirMode  os.FileMode = 0o755
)

// WriteOptions configures how CopyFile and WriteFile produce the destination.
type WriteOptions struct {
	Mode    os.FileMode // Permissions of the written file; 0 means DefaultFileMode
	DirMode os.FileMode // Permissions of created parent directories; 0 means DefaultDirMode
	Sync    bool        // If true, call Sync() before closing dst
	Atomic  bool        // If true, write to a temp file then rename to dst (prevents partial reads)
}

// CopyFile copies a file from src to dst on fsys, creating parent directories
// as needed and overwriting dst if it exists. If opts is nil, uses default
// behavior (default modes, no sync, no atomic).
//
// Copying a file onto itself is a no-op; without the check the truncating
// open of dst would destroy the source.
func CopyFile(fsys afero.Fs, src, dst string, opts *WriteOptions) (retErr error) {
	if src == "" || dst == "" {
		return ErrEmptyPath
	}

	o := normalize(opts)

	if same, err := sameFile(fsys, src, dst); err != nil {
		return err
	} else if same {
		return nil
	}

	if err := EnsureDirForFile(fsys, dst, o.DirMode); err != nil {
		return fmt.Errorf("prepare destination: %w", err)
	}

	srcFile, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() {
		if closeErr := srcFile.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close source: %w", closeErr)
		}
	}()

	return write(fsys, dst, o, func(w io.Writer) error {
		if _, err := io.Copy(w, srcFile); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
		return nil
	})
}

// WriteFile writes data to dst on fsys, creating parent directories as needed
// and truncating dst if it exists.
func WriteFile(fsys afero.Fs, dst string, data []byte, opts *WriteOptions) error {
	if dst == "" {
		return ErrEmptyPath
	}

	o := normalize(opts)
	if err := EnsureDirForFile(fsys, dst, o.DirMode); err != nil {
		return fmt.Errorf("prepare destination: %w", err)
	}

	return write(fsys, dst, o, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	})
}

// write opens the destination, fills it via fill and finalizes it. On
// failure an atomic write removes its temp file; a direct write leaves dst
// with whatever was written.
func write(fsys afero.Fs, dst string, o WriteOptions, fill func(io.Writer) error) (retErr error) {
	dstFile, writePath, err := openDstFile(fsys, dst, o.Mode, o.Atomic)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil && writePath != dst {
			_ = fsys.Remove(writePath)
		}
	}()

	if err := fill(dstFile); err != nil {
		_ = dstFile.Close()
		return err
	}

	return finalize(fsys, dstFile, writePath, dst, o.Sync || o.Atomic)
}

// normalize returns a copy of opts with zero modes replaced by defaults.
func normalize(opts *WriteOptions) WriteOptions {
	var o WriteOptions
	if opts != nil {
		o = *opts
	}
	if o.Mode == 0 {
		o.Mode = DefaultFileMode
	}
	if o.DirMode == 0 {
		o.DirMode = DefaultDirMode
	}
	return o
}

// sameFile reports whether src and dst name the same file. Equal cleaned
// absolute paths match on every filesystem; os.SameFile additionally catches
// links on the OS filesystem. A missing dst is never the same file.
func sameFile(fsys afero.Fs, src, dst string) (bool, error) {
	srcInfo, err := fsys.Stat(src)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return false, fmt.Errorf("resolve source: %w", err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return false, fmt.Errorf("resolve destination: %w", err)
	}
	if absSrc == absDst {
		return true, nil
	}
	dstInfo, err := fsys.Stat(dst)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat destination: %w", err)
	}
	return os.SameFile(srcInfo, dstInfo), nil
}

// finalize syncs (if requested), closes, and renames the destination file.
// On sync failure, dstFile is closed before returning the error.
func finalize(fsys afero.Fs, dstFile afero.File, writePath, dst string, doSync bool) error {
	// For atomic writes, fsync before rename ensures a crash cannot leave the
	// renamed file with incomplete contents.
	if doSync {
		if err := dstFile.Sync(); err != nil {
			_ = dstFile.Close()
			return fmt.Errorf("sync: %w", err)
		}
	}

	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	if writePath != dst {
		if err := fsys.Rename(writePath, dst); err != nil {
			return fmt.Errorf("rename temp file to destination: %w", err)
		}
	}

	return nil
}

// openDstFile opens the destination file for writing. When atomic is true, it
// creates a temp file in the same directory as dst (with the correct permissions)
// to enable an atomic rename after writing.
func openDstFile(fsys afero.Fs, dst string, mode os.FileMode, atomic bool) (afero.File, string, error) {
	if atomic {
		tmpFile, err := afero.TempFile(fsys, filepath.Dir(dst), ".tmp-fileio-*")
		if err != nil {
			return nil, "", fmt.Errorf("create temp file: %w", err)
		}
		writePath := tmpFile.Name()
		if err := fsys.Chmod(writePath, mode); err != nil {
			_ = tmpFile.Close()
			_ = fsys.Remove(writePath)
			return nil, "", fmt.Errorf("chmod temp file: %w", err)
		}
		return tmpFile, writePath, nil
	}

	f, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, "", fmt.Errorf("create destination: %w", err)
	}
	return f, dst, nil
}
