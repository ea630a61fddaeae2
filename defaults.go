package fileio

import (
	"os"
	"time"

	"github.com/giantswarm/fileio/internal/fileutil"
)

// Default configuration values for New.
// These constants are exported so callers can reference the defaults when
// building custom configurations relative to them.
const (
	// DefaultFileMode is the permission of newly written files.
	DefaultFileMode os.FileMode = fileutil.DefaultFileMode

	// DefaultDirMode is the permission of newly created directories.
	DefaultDirMode os.FileMode = fileutil.DefaultDirMode

	// DefaultWriteStrategy writes files in place.
	DefaultWriteStrategy = WriteDirect

	// DefaultLockDirName is the directory name under the system temp
	// directory where WriteLocked keeps its lock files. The full path is
	// computed as filepath.Join(os.TempDir(), DefaultLockDirName).
	DefaultLockDirName = "fileio-locks"

	// DefaultLockTimeout bounds how long WriteLocked waits for another
	// process to release a lock.
	DefaultLockTimeout = 30 * time.Second

	// DefaultColorMode colors PrintFolderTree output only on a terminal.
	DefaultColorMode = ColorAuto
)
