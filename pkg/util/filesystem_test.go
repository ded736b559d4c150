package util

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ci.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: CI\n"), 0644))

	osfs := OSFS{}

	data, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: CI\n", string(data))

	_, err = osfs.ReadFile(filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}

func TestOSFS_ReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries, err := OSFS{}.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.yaml", "b.yml", "sub"}, names)

	_, err = OSFS{}.ReadDir(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, iofs.ErrNotExist)
}

func TestOSFS_Open(t *testing.T) {
	dir := t.TempDir()

	f, err := OSFS{}.Open(dir)
	require.NoError(t, err)
	info, err := f.Stat()
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_ = f.Close()
}

func TestDefaultFS(t *testing.T) {
	_, ok := DefaultFS().(OSFS)
	assert.True(t, ok)
}
