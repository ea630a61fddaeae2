package fileio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/giantswarm/fileio"
)

func TestGetLastPathComponent(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/some/path/to/file.txt": "file.txt",
		"some/path/to/file.txt":  "file.txt",
		"/some/path/to/folder/":  "folder",
		"/some/path/to/folder":   "folder",
		"some/path/to/folder/":   "folder",
		"/file.txt":              "file.txt",
		"file.txt":               "file.txt",
		"/folder/":               "folder",
		"folder//":               "folder",
		"a/b/.":                  "b",
		"a/b/./":                 "b",
		"a/..":                   "..",
		".":                      ".",
		"./":                     ".",
		"./a":                    "a",
		"/":                      "/",
		"///":                    "/",
		"":                       "",
	}

	for in, want := range tests {
		if got := fileio.GetLastPathComponent(in); got != want {
			t.Errorf("GetLastPathComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetFileName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/some/path/to/file.txt": "file.txt",
		"some/path/to/file.txt":  "file.txt",
		"/file.txt":              "file.txt",
		"file.txt":               "file.txt",
		"/some/path/to/file":     "file",
		"file":                   "file",
		"dir/":                   "dir",
		".bashrc":                ".bashrc",
	}

	for in, want := range tests {
		got, err := fileio.GetFileName(in)
		if err != nil {
			t.Errorf("GetFileName(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("GetFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetFileNameNoName(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "/", ".", "a/..", ".."} {
		if _, err := fileio.GetFileName(in); !errors.Is(err, fileio.ErrNoFileName) {
			t.Errorf("GetFileName(%q) error = %v, want ErrNoFileName", in, err)
		}
		if _, err := fileio.GetFileStem(in); !errors.Is(err, fileio.ErrNoFileName) {
			t.Errorf("GetFileStem(%q) error = %v, want ErrNoFileName", in, err)
		}
		if ext := fileio.GetFileExtension(in); ext != "" {
			t.Errorf("GetFileExtension(%q) = %q, want empty", in, ext)
		}
	}
}

func TestGetFileStem(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/some/path/to/file.txt": "file",
		"some/path/to/file.txt":  "file",
		"/file.txt":              "file",
		"file":                   "file",
		"archive.tar.gz":         "archive.tar",
		".bashrc":                ".bashrc",
		"file.":                  "file",
		"..hidden":               ".",
	}

	for in, want := range tests {
		got, err := fileio.GetFileStem(in)
		if err != nil {
			t.Errorf("GetFileStem(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("GetFileStem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetFileExtension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/some/path/to/file.txt": "txt",
		"some/path/to/file.txt":  "txt",
		"file.txt":               "txt",
		"/some/path/to/file":     "",
		"file":                   "",
		"archive.tar.gz":         "gz",
		".bashrc":                "",
		"file.":                  "",
		"dir.d/":                 "d",
	}

	for in, want := range tests {
		if got := fileio.GetFileExtension(in); got != want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestStemAndExtensionRecomposeName checks that for names with an
// extension, stem + "." + extension is the file name.
func TestStemAndExtensionRecomposeName(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"a.txt", "/x/y/archive.tar.gz", "..hidden", "v1.2.3"} {
		name, err := fileio.GetFileName(in)
		if err != nil {
			t.Fatalf("GetFileName(%q) error: %v", in, err)
		}
		stem, err := fileio.GetFileStem(in)
		if err != nil {
			t.Fatalf("GetFileStem(%q) error: %v", in, err)
		}
		if got := stem + "." + fileio.GetFileExtension(in); got != name {
			t.Errorf("%q: stem.ext = %q, want %q", in, got, name)
		}
	}
}

type customPath string

func TestToPath(t *testing.T) {
	t.Parallel()

	if got := fileio.ToPath("folder/subfolder/file.txt"); got != "folder/subfolder/file.txt" {
		t.Errorf("ToPath(string) = %q", got)
	}
	if got := fileio.ToPath(customPath("a/b")); got != "a/b" {
		t.Errorf("ToPath(customPath) = %q", got)
	}
}

func TestGetHome(t *testing.T) {
	t.Setenv("HOME", "/tmp/test_home")

	home, err := fileio.GetHome()
	if err != nil {
		t.Fatalf("GetHome() error: %v", err)
	}
	if home != "/tmp/test_home" {
		t.Errorf("GetHome() = %q, want %q", home, "/tmp/test_home")
	}

	t.Setenv("HOME", "")
	if _, err := fileio.GetHome(); !errors.Is(err, fileio.ErrHomeNotSet) {
		t.Errorf("GetHome() with empty HOME error = %v, want ErrHomeNotSet", err)
	}
}

func TestGetCwd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cwd, err := fileio.GetCwd()
	if err != nil {
		t.Fatalf("GetCwd() error: %v", err)
	}

	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := filepath.EvalSymlinks(cwd)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("GetCwd() = %q, want %q", got, want)
	}
	if fileio.GetLastPathComponent(cwd) != filepath.Base(dir) {
		t.Errorf("last component of cwd = %q, want %q", fileio.GetLastPathComponent(cwd), filepath.Base(dir))
	}

	if _, err := os.Stat(cwd); err != nil {
		t.Errorf("cwd does not exist: %v", err)
	}
}
