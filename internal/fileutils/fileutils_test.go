package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xml")
	require.NoError(t, os.WriteFile(path, []byte("<a/>"), 0644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.xml")))
	assert.False(t, FileExists(dir), "a directory is not a file")
	assert.False(t, FileExists(filepath.Join(path, "child")), "a path through a regular file does not exist")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
	assert.False(t, DirectoryExists(file))
	assert.False(t, DirectoryExists(filepath.Join(file, "child")), "a path through a regular file does not exist")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Calling again on an existing directory is a no-op
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	require.NoError(t, WriteFile(path, []byte(`{"ok":true}`), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.xml"), []byte("<a/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.xml"), []byte("<b/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "three.xml"), []byte("<c/>"), 0644))

	files, err := ListFilesWithExtension(dir, ".xml")
	require.NoError(t, err)
	assert.Len(t, files, 3, "walks subdirectories too")

	none, err := ListFilesWithExtension(dir, ".csv")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListFilesWithExtension_MissingDir(t *testing.T) {
	_, err := ListFilesWithExtension(filepath.Join(t.TempDir(), "missing"), ".xml")
	assert.Error(t, err)
}

func TestListFilesWithExtension_PathThroughFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := ListFilesWithExtension(filepath.Join(file, "sub"), ".xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory does not exist")
}
