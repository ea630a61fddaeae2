// Package fileio provides convenience operations over the filesystem:
// creating and deleting folders, copying files and trees, loading and saving
// text, replacing strings across many files, listing and drawing directory
// trees, scoped working-directory changes, and path-component helpers.
//
// # Basic Usage
//
//	import "github.com/giantswarm/fileio"
//
//	if err := fileio.SaveStringToFile("hello\n", "out/greeting.txt"); err != nil {
//	    log.Fatal(err)
//	}
//	text, err := fileio.LoadFileAsString("out/greeting.txt")
//
//	summary, err := fileio.ReplaceStrInFiles("src", "oldName", "newName")
//	for _, path := range summary.Failed {
//	    log.Printf("skipped %s", path)
//	}
//
//	if err := fileio.PrintFolderTree("out"); err != nil {
//	    log.Fatal(err)
//	}
//
// Package-level functions run against Default(), which uses the host
// filesystem and honors FILEIO_* environment variables (see OptionsFromEnv).
//
// # Custom Filesystems and Write Strategies
//
// New builds an independent FS. Any afero.Fs works as a backend, which makes
// in-memory tests straightforward:
//
//	fsys := fileio.New(
//	    fileio.WithFs(afero.NewMemMapFs()),
//	    fileio.WithWriteStrategy(fileio.WriteAtomic),
//	)
//	err := fsys.SaveStringToFile("data", "/tmp/x.txt")
//
// WriteAtomic replaces files through a temp file and rename; WriteLocked
// additionally serializes writers of the same path across processes with an
// advisory file lock.
//
// # Working Directory
//
// Cd changes the process working directory and returns a guard whose Close
// changes back. InDir is the scoped form:
//
//	err := fileio.InDir("build", func() error {
//	    return run("make")
//	})
//
// The working directory is process-wide: concurrent Cd calls from several
// goroutines race.
package fileio
