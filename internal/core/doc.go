// Package core implements the filesystem operations behind the public
// fileio package: primitive file and folder operations, folder copy, string
// replacement across files, listing and tree drawing.
//
// Every operation is a method on Ops, which binds an afero.Fs together with
// write settings. Public types and errors are re-exported from the root
// package.
package core
