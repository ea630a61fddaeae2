package fileio

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// ResetForTesting clears the process-level FS so that the next call to
// Default builds a fresh one. This is exported only for use in test
// packages (package fileio_test).
func ResetForTesting() { resetForTesting() }

// ConfigSnapshot holds a copy of config fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	Fs            afero.Fs
	FileMode      os.FileMode
	DirMode       os.FileMode
	WriteStrategy WriteStrategy
	Sync          bool
	LockDir       string
	LockTimeout   time.Duration
	Color         ColorMode
}

// ApplyOptionsForTesting creates a default config, applies the given
// options, and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		Fs:            cfg.Fs,
		FileMode:      cfg.FileMode,
		DirMode:       cfg.DirMode,
		WriteStrategy: cfg.WriteStrategy,
		Sync:          cfg.Sync,
		LockDir:       cfg.LockDir,
		LockTimeout:   cfg.LockTimeout,
		Color:         cfg.Color,
	}
}

// DirDecoratorForTesting exposes whether f would color directory names
// written to out.
func (f *FS) DirDecoratorForTesting(out *os.File) func(string) string {
	return f.dirDecorator(out)
}

// PrintFolderTreeForTesting runs PrintFolderTree against out instead of
// standard output.
func (f *FS) PrintFolderTreeForTesting(path string, out *os.File) error {
	return f.printFolderTree(path, out)
}
