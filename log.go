package fileio

import (
	"log/slog"

	"github.com/giantswarm/fileio/internal/core"
)

// SetLogger replaces the package-level logger used by fileio. The provided
// logger should already have any desired attributes; fileio will not add
// more.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// fileio logs per-file failures of bulk replacement at warn level and
// skipped walk entries at debug level.
//
// Example:
//
//	fileio.SetLogger(myLogger.With("component", "fileio"))
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
