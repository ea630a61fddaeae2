package fileio

import (
	"github.com/giantswarm/fileio/internal/core"
	"github.com/giantswarm/fileio/internal/workdir"
)

// DirGuard changes the working directory back when closed. It is returned
// by Cd; use it with defer:
//
//	guard, err := fileio.Cd("build")
//	if err != nil {
//	    return err
//	}
//	defer guard.Close()
//
// Guards nest: each one captures the directory current at its own Cd call,
// so closing them in reverse order walks back through every directory.
type DirGuard struct {
	g *workdir.Guard
}

// Cd changes the process working directory to path and returns a guard that
// restores the previous one. On failure the working directory is unchanged.
//
// The working directory is process-wide. Cd is not safe for concurrent use
// with other goroutines that depend on or change it.
func Cd(path string) (*DirGuard, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	g, err := workdir.Enter(path)
	if err != nil {
		return nil, err
	}
	return &DirGuard{g: g}, nil
}

// Close changes back to the directory that was current when Cd was called.
// Only the first call acts; later calls return ErrGuardRestored. Close fails
// if the original directory no longer exists or cannot be entered.
func (d *DirGuard) Close() error {
	return d.g.Restore()
}

// Original returns the working directory captured by Cd.
func (d *DirGuard) Original() string {
	return d.g.Original()
}

// InDir runs fn with path as the working directory and restores the previous
// one afterwards, whether fn returns normally, returns an error or panics.
// A panic is re-raised once the directory is restored.
func InDir(path string, fn func() error) error {
	if path == "" {
		return ErrEmptyPath
	}
	return workdir.Run(path, fn, func(err error) {
		core.Logger().Error("failed to restore working directory while panicking", "err", err)
	})
}
