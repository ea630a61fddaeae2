package filelock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"

	"github.com/giantswarm/fileio/internal/fileutil"
	"github.com/giantswarm/fileio/internal/sentinel"
)

// ErrNotAcquired is returned when the lock could not be taken before the
// deadline.
const ErrNotAcquired = sentinel.Error("file lock not acquired")

// retryInterval is the interval between consecutive attempts to acquire a
// lock held by another process.
const retryInterval = 50 * time.Millisecond

// PathFor returns the lock file guarding target inside lockDir. The name is
// derived from a SHA256 of the absolute target path so every process
// locking the same file agrees on the lock without creating anything next to
// the target itself.
func PathFor(lockDir, target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", target, err)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:])[:16]+".lock"), nil
}

// acquire takes an exclusive lock on lockPath, retrying until ctx is done.
func acquire(ctx context.Context, lockPath string) (*flock.Flock, error) {
	fl := flock.New(lockPath)

	locked, err := fl.TryLockContext(ctx, retryInterval)
	if err != nil {
		return nil, fmt.Errorf("acquiring file lock %s: %w: %w", lockPath, ErrNotAcquired, err)
	}
	if !locked {
		return nil, ErrNotAcquired.At(lockPath)
	}
	return fl, nil
}

// release releases the lock and closes the file descriptor. The lock file is
// left on disk: removing it could invalidate a lock concurrently acquired by
// another process. Errors are logged, not returned.
func release(logger *slog.Logger, fl *flock.Flock) {
	if err := fl.Close(); err != nil {
		logger.Debug("failed to release file lock", "path", fl.Path(), "err", err)
	}
}

// With runs fn while holding the cross-process lock for target. Lock files
// live in lockDir on the host filesystem regardless of which afero.Fs the
// caller writes to. Waiting for the lock is bounded by timeout.
func With(logger *slog.Logger, lockDir, target string, timeout time.Duration, fn func() error) error {
	if err := fileutil.EnsureDir(afero.NewOsFs(), lockDir, 0); err != nil {
		return fmt.Errorf("prepare lock directory: %w", err)
	}
	lockPath, err := PathFor(lockDir, target)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fl, err := acquire(ctx, lockPath)
	if err != nil {
		return err
	}
	defer release(logger, fl)

	return fn()
}
