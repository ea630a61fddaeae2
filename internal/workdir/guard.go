package workdir

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/giantswarm/fileio/internal/sentinel"
)

// ErrRestored is returned by Restore on every call after the first.
const ErrRestored = sentinel.Error("directory guard already restored")

// Guard is a pending obligation to change back to the working directory
// that was current when it was created.
//
// The working directory is process-wide and unsynchronized: a Guard assumes
// no other goroutine changes it while the Guard is active.
type Guard struct {
	original string
	restored atomic.Bool
}

// Enter records the current working directory and changes into target. On
// failure the working directory is unchanged and no Guard is returned.
func Enter(target string) (*Guard, error) {
	original, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	if err := os.Chdir(target); err != nil {
		return nil, fmt.Errorf("change directory to %s: %w", target, err)
	}
	return &Guard{original: original}, nil
}

// Original returns the working directory captured by Enter.
func (g *Guard) Original() string {
	return g.original
}

// Restore changes back to the original directory. Only the first call acts;
// later calls return ErrRestored. A failing first call still consumes the
// guard: the original directory is gone and retrying cannot help.
func (g *Guard) Restore() error {
	if g.restored.Swap(true) {
		return ErrRestored
	}
	if err := os.Chdir(g.original); err != nil {
		return fmt.Errorf("restore working directory %s: %w", g.original, err)
	}
	return nil
}

// Run changes into target, calls fn, and restores the previous directory on
// every exit path of fn: a nil return, an error, or a panic. A panic from fn
// is re-raised after the directory is restored. When fn fails and restoring
// also fails, both errors are returned. onPanicRestoreErr receives a restore
// failure that happens while a panic is unwinding, since it cannot be
// returned.
func Run(target string, fn func() error, onPanicRestoreErr func(error)) (err error) {
	g, err := Enter(target)
	if err != nil {
		return err
	}

	panicking := true
	defer func() {
		rerr := g.Restore()
		if rerr == nil {
			return
		}
		if panicking {
			if onPanicRestoreErr != nil {
				onPanicRestoreErr(rerr)
			}
			return
		}
		err = errors.Join(err, rerr)
	}()

	err = fn()
	panicking = false
	return err
}
