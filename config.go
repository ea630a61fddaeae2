package fileio

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/giantswarm/fileio/internal/core"
)

// config holds the configuration of an FS. This unexported type wraps
// core.Config via embedding, keeping internal/core types out of the public
// API signature while avoiding field-by-field duplication.
type config struct {
	core.Config
}

// toCoreConfig returns the embedded core.Config.
func (c config) toCoreConfig() core.Config {
	return c.Config
}

// defaultConfig returns a config populated with all default values. Both New
// and test helpers use this to avoid duplicating the default assignments.
func defaultConfig() config {
	return config{core.Config{
		Fs:            afero.NewOsFs(),
		FileMode:      DefaultFileMode,
		DirMode:       DefaultDirMode,
		WriteStrategy: DefaultWriteStrategy,
		LockDir:       filepath.Join(os.TempDir(), DefaultLockDirName),
		LockTimeout:   DefaultLockTimeout,
		Color:         DefaultColorMode,
	}}
}
