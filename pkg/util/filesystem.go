package util

import (
	"io/fs"
	"os"
)

// ReadableFS is the read-only view of a filesystem used to discover and
// load workflow files.
type ReadableFS interface {
	fs.ReadDirFS
	fs.ReadFileFS
}

type OSFS struct{}

func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func DefaultFS() ReadableFS {
	return OSFS{}
}
