// Package fileutil provides file operation utilities for directory and file management.
//
// EnsureDir creates directories recursively, and CopyFile and WriteFile
// produce a destination file with explicit permissions, optional fsync, and
// optional atomic replacement via temp-file-then-rename. Every helper works
// against an afero.Fs so the same code serves the OS filesystem and the
// in-memory filesystem used in tests.
package fileutil
