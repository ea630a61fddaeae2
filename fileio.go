package fileio

import (
	"io"
	"iter"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/giantswarm/fileio/internal/core"
)

// ReplaceSummary reports the outcome of ReplaceStrInFiles and
// ReplaceStrInMatchingFiles: how many regular files were scanned, how many
// contained the search string and were rewritten, and which ones failed.
type ReplaceSummary = core.ReplaceSummary

// FS runs filesystem operations with a fixed configuration. Its
// configuration is immutable, so one FS may be shared between goroutines;
// the operations themselves give no atomicity beyond the write strategy.
//
// The zero value is not usable; construct FS values with New.
type FS struct {
	ops *core.Ops
}

// New returns an FS configured by opts on top of the defaults.
//
// Panics if any option receives an invalid value. See individual With*
// functions for constraints.
func New(opts ...Option) *FS {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{ops: core.NewOps(cfg.toCoreConfig())}
}

// Process-level FS used by the package-level functions. It is created on
// first use from the defaults and FILEIO_* environment variables.
//
// defaultMu protects defaultFS and defaultOnce so that SetDefault and
// resetForTesting are safe to call concurrently with Default.
var (
	defaultMu   sync.Mutex
	defaultFS   *FS
	defaultOnce sync.Once
)

// Default returns the FS used by the package-level functions. The first call
// builds it from OptionsFromEnv; invalid environment values are logged and
// ignored.
func Default() *FS {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultOnce.Do(func() {
		if defaultFS != nil {
			return
		}
		opts, err := OptionsFromEnv()
		if err != nil {
			core.Logger().Warn("ignoring invalid environment configuration", "err", err)
			opts = nil
		}
		defaultFS = New(opts...)
	})
	return defaultFS
}

// SetDefault replaces the FS used by the package-level functions. A nil f
// makes the next Default call rebuild it from the defaults and environment.
func SetDefault(f *FS) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultFS = f
	if f == nil {
		defaultOnce = sync.Once{}
	}
}

// resetForTesting clears the process-level FS so that the next Default call
// builds a fresh one. It must only be called from tests.
func resetForTesting() {
	SetDefault(nil)
}

// Fs returns the filesystem f operates on.
func (f *FS) Fs() afero.Fs {
	return f.ops.Fs()
}

// CreateFolder creates path and any missing parent directories. Nothing
// happens if something already exists at path.
func (f *FS) CreateFolder(path string) error {
	return f.ops.CreateFolder(path)
}

// CreateFolderForFile creates the parent directory of the file path.
func (f *FS) CreateFolderForFile(path string) error {
	return f.ops.CreateFolderForFile(path)
}

// CopyFile copies from to to, creating the parents of to and overwriting it
// if it exists.
func (f *FS) CopyFile(from, to string) error {
	return f.ops.CopyFile(from, to)
}

// CopyFolder copies every regular file below from to the same relative path
// below to. Empty directories are not reproduced and unrelated files in to
// are kept. The copy stops at the first failure without rolling back.
func (f *FS) CopyFolder(from, to string) error {
	return f.ops.CopyFolder(from, to)
}

// DeleteFolder removes path and its contents. A missing path is not an
// error.
func (f *FS) DeleteFolder(path string) error {
	return f.ops.DeleteFolder(path)
}

// DeleteFile removes the file at path. A missing path is not an error; a
// directory fails with ErrIsDir.
func (f *FS) DeleteFile(path string) error {
	return f.ops.DeleteFile(path)
}

// LoadFileAsString returns the content of path. Content that is not valid
// UTF-8 fails with ErrNotText.
func (f *FS) LoadFileAsString(path string) (string, error) {
	return f.ops.LoadFileAsString(path)
}

// SaveStringToFile writes content to path, creating parent directories and
// replacing previous content.
func (f *FS) SaveStringToFile(content, path string) error {
	return f.ops.SaveStringToFile(content, path)
}

// Exists reports whether anything exists at path, following links.
func (f *FS) Exists(path string) (bool, error) {
	return f.ops.Exists(path)
}

// ListFolderContents returns the full paths of the immediate children of
// path, sorted ascending.
func (f *FS) ListFolderContents(path string) ([]string, error) {
	return f.ops.ListFolderContents(path)
}

// ReplaceStrInFile replaces every occurrence of old with new in the file at
// path, rewriting it only if old occurs.
func (f *FS) ReplaceStrInFile(path, old, new string) error {
	return f.ops.ReplaceStrInFile(path, old, new)
}

// ReplaceStrInFiles applies ReplaceStrInFile to every regular file below
// root. Files that fail are logged and listed in the summary; the error only
// reports invalid arguments.
func (f *FS) ReplaceStrInFiles(root, old, new string) (ReplaceSummary, error) {
	return f.ops.ReplaceStrInFiles(root, old, new)
}

// ReplaceStrInMatchingFiles is ReplaceStrInFiles limited to files whose path
// relative to root matches the doublestar pattern, e.g. "**/*.go".
func (f *FS) ReplaceStrInMatchingFiles(root, pattern, old, new string) (ReplaceSummary, error) {
	return f.ops.ReplaceStrInMatchingFiles(root, pattern, old, new)
}

// Walk returns a lazy depth-first sequence of every entry below root, root
// excluded. Unreadable entries are skipped and symbolic links are not
// followed into. Ranging over the result again walks the tree again.
func (f *FS) Walk(root string) iter.Seq[string] {
	return f.ops.Walk(root)
}

// WriteFolderTree writes a diagram of the tree rooted at path to w. Output
// is never colored.
func (f *FS) WriteFolderTree(path string, w io.Writer) error {
	return f.ops.WriteFolderTree(path, w, nil)
}

// PrintFolderTree writes the diagram of WriteFolderTree to standard output,
// coloring directory names according to the configured ColorMode.
func (f *FS) PrintFolderTree(path string) error {
	return f.printFolderTree(path, os.Stdout)
}

func (f *FS) printFolderTree(path string, out *os.File) error {
	return f.ops.WriteFolderTree(path, out, f.dirDecorator(out))
}

// dirDecorator returns the function coloring directory names written to
// out, or nil when output stays plain.
func (f *FS) dirDecorator(out *os.File) func(string) string {
	switch f.ops.Config().Color {
	case ColorNever:
		return nil
	case ColorAuto:
		fd := out.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return nil
		}
		if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
			return nil
		}
	}

	dir := color.New(color.FgBlue, color.Bold)
	dir.EnableColor()
	return func(name string) string {
		return dir.Sprint(name)
	}
}

// CreateFolder calls Default().CreateFolder.
func CreateFolder(path string) error {
	return Default().CreateFolder(path)
}

// CreateFolderForFile calls Default().CreateFolderForFile.
func CreateFolderForFile(path string) error {
	return Default().CreateFolderForFile(path)
}

// CopyFile calls Default().CopyFile.
func CopyFile(from, to string) error {
	return Default().CopyFile(from, to)
}

// CopyFolder calls Default().CopyFolder.
func CopyFolder(from, to string) error {
	return Default().CopyFolder(from, to)
}

// DeleteFolder calls Default().DeleteFolder.
func DeleteFolder(path string) error {
	return Default().DeleteFolder(path)
}

// DeleteFile calls Default().DeleteFile.
func DeleteFile(path string) error {
	return Default().DeleteFile(path)
}

// LoadFileAsString calls Default().LoadFileAsString.
func LoadFileAsString(path string) (string, error) {
	return Default().LoadFileAsString(path)
}

// SaveStringToFile calls Default().SaveStringToFile.
func SaveStringToFile(content, path string) error {
	return Default().SaveStringToFile(content, path)
}

// Exists calls Default().Exists.
func Exists(path string) (bool, error) {
	return Default().Exists(path)
}

// ListFolderContents calls Default().ListFolderContents.
func ListFolderContents(path string) ([]string, error) {
	return Default().ListFolderContents(path)
}

// ReplaceStrInFile calls Default().ReplaceStrInFile.
func ReplaceStrInFile(path, old, new string) error {
	return Default().ReplaceStrInFile(path, old, new)
}

// ReplaceStrInFiles calls Default().ReplaceStrInFiles.
func ReplaceStrInFiles(root, old, new string) (ReplaceSummary, error) {
	return Default().ReplaceStrInFiles(root, old, new)
}

// ReplaceStrInMatchingFiles calls Default().ReplaceStrInMatchingFiles.
func ReplaceStrInMatchingFiles(root, pattern, old, new string) (ReplaceSummary, error) {
	return Default().ReplaceStrInMatchingFiles(root, pattern, old, new)
}

// Walk calls Default().Walk.
func Walk(root string) iter.Seq[string] {
	return Default().Walk(root)
}

// WriteFolderTree calls Default().WriteFolderTree.
func WriteFolderTree(path string, w io.Writer) error {
	return Default().WriteFolderTree(path, w)
}

// PrintFolderTree calls Default().PrintFolderTree.
func PrintFolderTree(path string) error {
	return Default().PrintFolderTree(path)
}
