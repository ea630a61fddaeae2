package core

import (
	"iter"

	"github.com/giantswarm/fileio/internal/walk"
)

// Walk returns the lazy pre-order sequence of every entry below root.
// Entries that cannot be read are logged at debug level and left out.
func (o *Ops) Walk(root string) iter.Seq[string] {
	return walk.Seq(o.cfg.Fs, root, func(path string, err error) {
		Logger().Debug("walk skipped entry", "path", path, "err", err)
	})
}
