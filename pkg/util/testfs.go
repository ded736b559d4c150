package util

import (
	"io/fs"
	"testing/fstest"
)

// TestFS is an in-memory ReadableFS for tests. Paths are slash separated and
// unrooted; parent directories of added files are implied.
type TestFS struct {
	MapFS fstest.MapFS
}

func NewTestFS() *TestFS {
	return &TestFS{
		MapFS: make(fstest.MapFS),
	}
}

func (t *TestFS) Open(name string) (fs.File, error) {
	return t.MapFS.Open(name)
}

func (t *TestFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(t.MapFS, name)
}

func (t *TestFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(t.MapFS, name)
}

// AddFile stores content under name.
func (t *TestFS) AddFile(name, content string) {
	t.MapFS[name] = &fstest.MapFile{Data: []byte(content), Mode: 0644}
}

// AddDir records name as a directory, which lets empty directories exist.
func (t *TestFS) AddDir(name string) {
	t.MapFS[name] = &fstest.MapFile{Mode: fs.ModeDir | 0755}
}
