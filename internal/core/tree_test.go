package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFolderTree(t *testing.T) {
	t.Parallel()
	o := newMemOps(t)
	writeFiles(t, o.Fs(), map[string]string{
		"/tmp/tree/file1.txt":           "Content 1",
		"/tmp/tree/file2.txt":           "Content 2",
		"/tmp/tree/subfolder/file3.txt": "Content 3",
	})

	var buf bytes.Buffer
	require.NoError(t, o.WriteFolderTree("/tmp/tree", &buf, nil))

	want := "/tmp/tree\n" +
		"├── file1.txt\n" +
		"├── file2.txt\n" +
		"└── subfolder\n" +
		"    └── file3.txt\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFolderTree_ContinuingAncestors(t *testing.T) {
	t.Parallel()
	o := newMemOps(t)
	writeFiles(t, o.Fs(), map[string]string{
		"/r/a/x.txt":   "",
		"/r/a/b/y.txt": "",
		"/r/c.txt":     "",
	})

	var buf bytes.Buffer
	require.NoError(t, o.WriteFolderTree("/r", &buf, nil))

	want := "/r\n" +
		"├── a\n" +
		"│   ├── b\n" +
		"│   │   └── y.txt\n" +
		"│   └── x.txt\n" +
		"└── c.txt\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFolderTree_EmptyDir(t *testing.T) {
	t.Parallel()
	o := newMemOps(t)
	require.NoError(t, o.CreateFolder("/empty"))

	var buf bytes.Buffer
	require.NoError(t, o.WriteFolderTree("/empty", &buf, nil))
	assert.Equal(t, "/empty\n", buf.String())
}

func TestWriteFolderTree_DecoratesDirectories(t *testing.T) {
	t.Parallel()
	o := newMemOps(t)
	writeFiles(t, o.Fs(), map[string]string{"/r/d/f.txt": ""})

	var buf bytes.Buffer
	require.NoError(t, o.WriteFolderTree("/r", &buf, func(name string) string { return "[" + name + "]" }))

	assert.Equal(t, "/r\n└── [d]\n    └── f.txt\n", buf.String())
}

func TestWriteFolderTree_NotDir(t *testing.T) {
	t.Parallel()
	o := newMemOps(t)
	writeFiles(t, o.Fs(), map[string]string{"/f.txt": ""})

	var buf bytes.Buffer
	require.ErrorIs(t, o.WriteFolderTree("/f.txt", &buf, nil), ErrNotDir)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteFolderTree_WriterError(t *testing.T) {
	t.Parallel()
	o := newMemOps(t)
	writeFiles(t, o.Fs(), map[string]string{"/r/f.txt": ""})

	err := o.WriteFolderTree("/r", failingWriter{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
}
