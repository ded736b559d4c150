package util

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestFS(t *testing.T) {
	tfs := NewTestFS()
	require.NotNil(t, tfs)
	assert.NotNil(t, tfs.MapFS)
}

func TestTestFS_AddFileImpliesParents(t *testing.T) {
	tfs := NewTestFS()
	tfs.AddFile(".github/workflows/ci.yml", "name: CI\n")

	info, err := fs.Stat(tfs, ".github/workflows")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := tfs.ReadFile(".github/workflows/ci.yml")
	require.NoError(t, err)
	assert.Equal(t, "name: CI\n", string(data))
}

func TestTestFS_AddDir(t *testing.T) {
	tfs := NewTestFS()
	tfs.AddDir("empty")

	entries, err := tfs.ReadDir("empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTestFS_ReadDir(t *testing.T) {
	tfs := NewTestFS()
	tfs.AddFile("wf/b.yml", "b")
	tfs.AddFile("wf/a.yml", "a")
	tfs.AddDir("wf/nested")

	entries, err := tfs.ReadDir("wf")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.yml", "b.yml", "nested"}, names)
	assert.True(t, entries[2].IsDir())
}

func TestTestFS_ReadDirMissing(t *testing.T) {
	_, err := NewTestFS().ReadDir("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestTestFS_Open(t *testing.T) {
	tfs := NewTestFS()
	tfs.AddFile("test.txt", "content")

	f, err := tfs.Open("test.txt")
	require.NoError(t, err)
	_ = f.Close()

	_, err = tfs.Open("nonexistent.txt")
	assert.Error(t, err)
}
