package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// EnsureDir creates a directory and all parent directories if they don't exist.
// A zero mode means DefaultDirMode. Returns nil if directory already exists.
func EnsureDir(fsys afero.Fs, path string, mode os.FileMode) error {
	if mode == 0 {
		mode = DefaultDirMode
	}
	if err := fsys.MkdirAll(path, mode); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// EnsureDirForFile creates the parent directory of filePath if it does not
// already exist, ensuring the file can be created without a missing-directory error.
func EnsureDirForFile(fsys afero.Fs, filePath string, mode os.FileMode) error {
	if err := EnsureDir(fsys, filepath.Dir(filePath), mode); err != nil {
		return fmt.Errorf("ensure dir for %s: %w", filePath, err)
	}
	return nil
}
