// Package workdir implements the scoped working-directory change: a Guard
// captures the current directory, switches to a target, and switches back
// exactly once when its scope ends.
package workdir
