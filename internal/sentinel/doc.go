// Package sentinel provides an immutable error type for sentinel error declarations.
//
// Every failure fileio reports is either one of these constants or an
// underlying filesystem error, both wrapped with the offending path. Error is
// a string type so the constants cannot be reassigned by importers, and
// Error.At attaches a path without losing errors.Is matching.
package sentinel
