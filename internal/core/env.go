package core

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/giantswarm/fileio/internal/sentinel"
)

// ErrHomeNotSet is returned by Home when HOME is unset or empty.
const ErrHomeNotSet = sentinel.Error("HOME environment variable is not set")

// EnvPrefix is the prefix of the environment variables read by LoadEnv.
const EnvPrefix = "FILEIO"

// EnvSettings holds the configuration read from FILEIO_* variables. Nil or
// empty fields were not set and leave the corresponding Config field alone.
// Unprefixed variables of the same names are never read.
//
//	FILEIO_FILE_MODE       octal permission of written files, e.g. 0640
//	FILEIO_DIR_MODE        octal permission of created directories
//	FILEIO_WRITE_STRATEGY  direct, atomic or locked
//	FILEIO_SYNC            fsync written files
//	FILEIO_LOCK_DIR        directory of lock files for locked writes
//	FILEIO_LOCK_TIMEOUT    lock wait bound, e.g. 10s
//	FILEIO_COLOR           auto, always or never
type EnvSettings struct {
	FileMode      *os.FileMode   `split_words:"true"`
	DirMode       *os.FileMode   `split_words:"true"`
	WriteStrategy string         `split_words:"true"`
	Sync          *bool
	LockDir       string         `split_words:"true"`
	LockTimeout   *time.Duration `split_words:"true"`
	Color         string
}

// LoadEnv reads EnvSettings from the environment.
func LoadEnv() (EnvSettings, error) {
	var s EnvSettings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return EnvSettings{}, fmt.Errorf("load %s environment: %w", EnvPrefix, err)
	}
	return s, nil
}

// Apply overlays the settings that were present in the environment on cfg.
// cfg is left untouched when a strategy or color name is unknown.
func (s EnvSettings) Apply(cfg *Config) error {
	strategy, color := cfg.WriteStrategy, cfg.Color
	if s.WriteStrategy != "" {
		if err := strategy.Decode(s.WriteStrategy); err != nil {
			return fmt.Errorf("%s_WRITE_STRATEGY: %w", EnvPrefix, err)
		}
	}
	if s.Color != "" {
		if err := color.Decode(s.Color); err != nil {
			return fmt.Errorf("%s_COLOR: %w", EnvPrefix, err)
		}
	}
	cfg.WriteStrategy, cfg.Color = strategy, color

	if s.FileMode != nil {
		cfg.FileMode = *s.FileMode
	}
	if s.DirMode != nil {
		cfg.DirMode = *s.DirMode
	}
	if s.Sync != nil {
		cfg.Sync = *s.Sync
	}
	if s.LockDir != "" {
		cfg.LockDir = s.LockDir
	}
	if s.LockTimeout != nil {
		cfg.LockTimeout = *s.LockTimeout
	}
	return nil
}

type homeEnv struct {
	Home string `envconfig:"HOME" required:"true"`
}

// Home returns the value of the HOME environment variable.
func Home() (string, error) {
	var env homeEnv
	if err := envconfig.Process("", &env); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeNotSet, err)
	}
	if env.Home == "" {
		return "", ErrHomeNotSet
	}
	return env.Home, nil
}
