package fileio

import (
	"github.com/giantswarm/fileio/internal/core"
	"github.com/giantswarm/fileio/internal/sentinel"
	"github.com/giantswarm/fileio/internal/workdir"
)

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrEmptyPath is returned when a required path argument is empty.
	ErrEmptyPath = core.ErrEmptyPath

	// ErrNotDir is returned when an operation needs a directory and the path
	// names something else.
	ErrNotDir = core.ErrNotDir

	// ErrIsDir is returned by DeleteFile when the path names a directory.
	ErrIsDir = core.ErrIsDir

	// ErrNotText is returned by LoadFileAsString (and the replace operations)
	// when the file content is not valid UTF-8.
	ErrNotText = core.ErrNotText

	// ErrNoFileName is returned by GetFileName and GetFileStem for paths with
	// no final name: empty, a root, "." or ending in "..".
	ErrNoFileName = sentinel.Error("path has no file name")

	// ErrHomeNotSet is returned by GetHome when HOME is unset or empty.
	ErrHomeNotSet = core.ErrHomeNotSet

	// ErrEmptySearch is returned by the replace operations for an empty
	// search string.
	ErrEmptySearch = core.ErrEmptySearch

	// ErrInvalidPattern is returned by ReplaceStrInMatchingFiles for a
	// malformed glob.
	ErrInvalidPattern = core.ErrInvalidPattern

	// ErrDestinationInsideSource is returned by CopyFolder when the
	// destination lies below the source.
	ErrDestinationInsideSource = core.ErrDestinationInsideSource

	// ErrGuardRestored is returned by DirGuard.Close after the first call.
	ErrGuardRestored = workdir.ErrRestored

	// ErrLockNotAcquired is returned by writes under WriteLocked when the
	// file lock was not acquired within the lock timeout.
	ErrLockNotAcquired = core.ErrLockNotAcquired
)
