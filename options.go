package fileio

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/giantswarm/fileio/internal/core"
)

// requirePositive panics if v <= 0 with a descriptive message.
func requirePositive[T int | time.Duration](name string, v T) {
	if v <= 0 {
		panic(fmt.Sprintf("fileio: %s must be greater than 0, got %v", name, v))
	}
}

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("fileio: %s must not be empty", name))
	}
}

// requireMode panics if mode carries no permission bits.
func requireMode(name string, mode os.FileMode) {
	if mode.Perm() == 0 {
		panic(fmt.Sprintf("fileio: %s must have permission bits, got %v", name, mode))
	}
}

// Option configures an FS during construction via New.
//
// Several With* functions panic on invalid input (nil filesystems, empty
// paths, non-positive durations). Option values are typically constants, so
// an invalid value is a programmer error; the pattern mirrors
// [regexp.MustCompile].
type Option func(*config)

// WithFs sets the filesystem every operation runs against.
//
// Default: the host filesystem (afero.NewOsFs).
//
// Panics if fsys is nil.
func WithFs(fsys afero.Fs) Option {
	if fsys == nil {
		panic("fileio: filesystem must not be nil")
	}
	return func(c *config) {
		c.Fs = fsys
	}
}

// WithFileMode sets the permission of newly written files. Existing files
// rewritten by the replace operations keep their own permission.
//
// Default: 0644.
//
// Panics if mode has no permission bits.
func WithFileMode(mode os.FileMode) Option {
	requireMode("file mode", mode)
	return func(c *config) {
		c.FileMode = mode.Perm()
	}
}

// WithDirMode sets the permission of newly created directories.
//
// Default: 0755.
//
// Panics if mode has no permission bits.
func WithDirMode(mode os.FileMode) Option {
	requireMode("directory mode", mode)
	return func(c *config) {
		c.DirMode = mode.Perm()
	}
}

// WithWriteStrategy sets how files are written.
//
// Default: WriteDirect.
//
// Panics if s is not a recognized strategy.
func WithWriteStrategy(s WriteStrategy) Option {
	if !s.IsValid() {
		panic(fmt.Sprintf("fileio: invalid write strategy: %v", s))
	}
	return func(c *config) {
		c.WriteStrategy = s
	}
}

// WithSync makes every write fsync the file before closing it. WriteAtomic
// and WriteLocked sync regardless.
func WithSync(sync bool) Option {
	return func(c *config) {
		c.Sync = sync
	}
}

// WithLockDir sets the directory holding the lock files of WriteLocked. It
// is always a directory of the host filesystem. Processes that must
// serialize their writes need to agree on it.
//
// Default: filepath.Join(os.TempDir(), "fileio-locks").
//
// Panics if dir is empty.
func WithLockDir(dir string) Option {
	requireNonEmpty("lock directory", dir)
	return func(c *config) {
		c.LockDir = dir
	}
}

// WithLockTimeout bounds how long WriteLocked waits for a lock held by
// another process before failing with ErrLockNotAcquired.
//
// Default: 30 seconds.
//
// Panics if d <= 0.
func WithLockTimeout(d time.Duration) Option {
	requirePositive("lock timeout", d)
	return func(c *config) {
		c.LockTimeout = d
	}
}

// WithColor sets whether PrintFolderTree colors directory names.
// WriteFolderTree never colors.
//
// Default: ColorAuto.
//
// Panics if m is not a recognized mode.
func WithColor(m ColorMode) Option {
	if !m.IsValid() {
		panic(fmt.Sprintf("fileio: invalid color mode: %v", m))
	}
	return func(c *config) {
		c.Color = m
	}
}

// OptionsFromEnv returns the options described by FILEIO_* environment
// variables:
//
//	FILEIO_FILE_MODE       octal permission of written files, e.g. 0640
//	FILEIO_DIR_MODE        octal permission of created directories
//	FILEIO_WRITE_STRATEGY  direct, atomic or locked
//	FILEIO_SYNC            fsync written files (true/false)
//	FILEIO_LOCK_DIR        directory of lock files
//	FILEIO_LOCK_TIMEOUT    lock wait bound, e.g. 10s
//	FILEIO_COLOR           auto, always or never
//
// Unset variables leave the corresponding option at its default. Unlike the
// With* functions, invalid values are reported as an error since they come
// from outside the program.
func OptionsFromEnv() ([]Option, error) {
	settings, err := core.LoadEnv()
	if err != nil {
		return nil, err
	}

	probe := defaultConfig()
	if err := settings.Apply(&probe.Config); err != nil {
		return nil, err
	}
	if err := probe.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s environment: %w", core.EnvPrefix, err)
	}

	return []Option{func(c *config) {
		// Apply can only fail on the names checked above.
		_ = settings.Apply(&c.Config)
	}}, nil
}
