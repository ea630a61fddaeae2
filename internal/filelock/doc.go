// Package filelock serializes writers of the same file across processes.
//
// Locks are advisory flock(2) locks on files kept in a dedicated lock
// directory, one per target path, named by a hash of the target's absolute
// path. They are used by the WriteLocked strategy.
package filelock
