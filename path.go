package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/giantswarm/fileio/internal/core"
)

// GetHome returns the HOME environment variable, or ErrHomeNotSet when it
// is unset or empty.
func GetHome() (string, error) {
	return core.Home()
}

// GetCwd returns the current working directory.
func GetCwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return wd, nil
}

// ToPath converts any string-based path type to a plain string path.
func ToPath[P ~string](p P) string {
	return string(p)
}

// GetLastPathComponent returns the last component of path, ignoring
// trailing separators and "." components:
//
//	"/some/path/to/folder/"  "folder"
//	"a/b/."                  "b"
//	"a/.."                   ".."
//	"/"                      "/"
//	""                       ""
//
// Unlike filepath.Base it never returns "." for an empty path.
func GetLastPathComponent(path string) string {
	comps := components(path)
	if len(comps) == 0 {
		return ""
	}
	return comps[len(comps)-1]
}

// GetFileName returns the final component of path when it names an entry.
// Paths whose last component is a root, "." or "..", and the empty path,
// fail with ErrNoFileName.
func GetFileName(path string) (string, error) {
	name := GetLastPathComponent(path)
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: %q", ErrNoFileName, path)
	}
	return name, nil
}

// GetFileStem returns the file name of path without its final extension.
// A leading dot does not start an extension, so ".bashrc" is all stem.
func GetFileStem(path string) (string, error) {
	name, err := GetFileName(path)
	if err != nil {
		return "", err
	}
	stem, _ := splitExt(name)
	return stem, nil
}

// GetFileExtension returns the text after the last dot of the file name of
// path, without the dot. It returns "" when there is no extension or no
// file name.
func GetFileExtension(path string) string {
	name, err := GetFileName(path)
	if err != nil {
		return ""
	}
	_, ext := splitExt(name)
	return ext
}

// splitExt splits name at its last dot. A dot at index 0 is part of the
// stem.
func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// components splits path into its components. A leading separator becomes
// a root component; empty and "." components are dropped except for a
// leading ".".
func components(path string) []string {
	if path == "" {
		return nil
	}
	slashed := filepath.ToSlash(path)

	var comps []string
	if strings.HasPrefix(slashed, "/") {
		comps = append(comps, string(filepath.Separator))
	}
	for i, part := range strings.Split(slashed, "/") {
		if part == "" || (part == "." && i > 0) {
			continue
		}
		comps = append(comps, part)
	}
	return comps
}
