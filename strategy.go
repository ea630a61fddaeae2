package fileio

import "github.com/giantswarm/fileio/internal/core"

// WriteStrategy controls how files are written by SaveStringToFile,
// CopyFile, CopyFolder and the replace operations.
//
// WriteStrategy is a type alias (not a named type) so that the underlying
// [core.WriteStrategy] methods are part of the public API:
//
//   - IsValid reports whether the value is a recognized strategy.
//   - String returns the strategy name (implements [fmt.Stringer]).
//
// Audit: new value-receiver methods added to core.WriteStrategy
// automatically become part of the public API through this alias.
type WriteStrategy = core.WriteStrategy

const (
	// WriteDirect truncates the destination and writes in place. This is
	// the default strategy.
	WriteDirect = core.WriteDirect

	// WriteAtomic writes a synced temp file and renames it over the
	// destination, so readers never see partial content.
	WriteAtomic = core.WriteAtomic

	// WriteLocked holds a cross-process advisory lock on the destination
	// while writing it atomically. See WithLockDir and WithLockTimeout.
	WriteLocked = core.WriteLocked
)

// ColorMode controls whether PrintFolderTree colors directory names. Like
// WriteStrategy it is an alias, exposing IsValid and String.
type ColorMode = core.ColorMode

const (
	// ColorAuto colors output only when standard output is a terminal. This
	// is the default.
	ColorAuto = core.ColorAuto

	// ColorAlways colors output unconditionally.
	ColorAlways = core.ColorAlways

	// ColorNever disables color.
	ColorNever = core.ColorNever
)
