package core

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// WriteStrategy controls how files are written by SaveStringToFile, CopyFile,
// CopyFolder and the replace operations.
type WriteStrategy int

const (
	// WriteDirect truncates the destination and writes into it in place. A
	// reader racing the write may observe partial content. This is the
	// default strategy.
	WriteDirect WriteStrategy = iota

	// WriteAtomic writes a temp file next to the destination, syncs it and
	// renames it over the destination. Readers see either the old or the new
	// content, never a mix.
	WriteAtomic

	// WriteLocked takes a cross-process advisory lock on the destination
	// before writing it atomically. Concurrent writers using WriteLocked are
	// serialized; writers using other strategies are not.
	WriteLocked
)

// IsValid reports whether s is a recognized WriteStrategy value.
func (s WriteStrategy) IsValid() bool {
	switch s {
	case WriteDirect, WriteAtomic, WriteLocked:
		return true
	default:
		return false
	}
}

// String returns the name of the strategy.
func (s WriteStrategy) String() string {
	switch s {
	case WriteDirect:
		return "WriteDirect"
	case WriteAtomic:
		return "WriteAtomic"
	case WriteLocked:
		return "WriteLocked"
	default:
		return fmt.Sprintf("WriteStrategy(%d)", int(s))
	}
}

// Decode parses "direct", "atomic" or "locked" (case-insensitive), the
// values accepted in FILEIO_WRITE_STRATEGY.
func (s *WriteStrategy) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "direct":
		*s = WriteDirect
	case "atomic":
		*s = WriteAtomic
	case "locked":
		*s = WriteLocked
	default:
		return fmt.Errorf("unknown write strategy %q", value)
	}
	return nil
}

// ColorMode controls whether PrintFolderTree colors directory names.
type ColorMode int

const (
	// ColorAuto colors output only when standard output is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colors output unconditionally.
	ColorAlways
	// ColorNever disables color.
	ColorNever
)

// IsValid reports whether m is a recognized ColorMode value.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "ColorAuto"
	case ColorAlways:
		return "ColorAlways"
	case ColorNever:
		return "ColorNever"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// Decode parses "auto", "always" or "never" (case-insensitive).
func (m *ColorMode) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "auto":
		*m = ColorAuto
	case "always":
		*m = ColorAlways
	case "never":
		*m = ColorNever
	default:
		return fmt.Errorf("unknown color mode %q", value)
	}
	return nil
}

// Config holds the settings of an Ops value. It is immutable after NewOps.
type Config struct {
	// Fs is the filesystem every operation runs against.
	Fs afero.Fs

	// FileMode is the permission of newly written files.
	FileMode os.FileMode

	// DirMode is the permission of newly created directories.
	DirMode os.FileMode

	WriteStrategy WriteStrategy

	// Sync forces an fsync of every written file. WriteAtomic and
	// WriteLocked always sync before renaming.
	Sync bool

	// LockDir holds the lock files of WriteLocked. It is always on the host
	// filesystem, whatever Fs is.
	LockDir string

	// LockTimeout bounds how long WriteLocked waits for a lock.
	LockTimeout time.Duration

	// Color is only consulted by PrintFolderTree.
	Color ColorMode
}

// Validate checks all Config invariants and returns an error describing every
// violation found.
func (c Config) Validate() error {
	var errs []error

	if c.Fs == nil {
		errs = append(errs, errors.New("filesystem must not be nil"))
	}
	if c.FileMode == 0 {
		errs = append(errs, errors.New("file mode must not be zero"))
	}
	if c.DirMode == 0 {
		errs = append(errs, errors.New("directory mode must not be zero"))
	}
	if !c.WriteStrategy.IsValid() {
		errs = append(errs, fmt.Errorf("invalid write strategy: %v", c.WriteStrategy))
	}
	if c.LockDir == "" {
		errs = append(errs, errors.New("lock directory must not be empty"))
	}
	if c.LockTimeout <= 0 {
		errs = append(errs, fmt.Errorf("lock timeout must be greater than 0, got %s", c.LockTimeout))
	}
	if !c.Color.IsValid() {
		errs = append(errs, fmt.Errorf("invalid color mode: %v", c.Color))
	}

	return errors.Join(errs...)
}
