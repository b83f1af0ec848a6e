package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFileMakesParents(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "tests/sub/a.spec.ts", "content")

	assert.Equal(t, filepath.Join(dir, "tests", "sub", "a.spec.ts"), path)
	assert.True(t, FileExists(t, path))
	assert.Equal(t, "content", ReadFile(t, path))
}

func TestFileExistsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	CreateDir(t, dir, "sub")

	assert.False(t, FileExists(t, filepath.Join(dir, "sub")))
	assert.False(t, FileExists(t, filepath.Join(dir, "missing")))
}

func TestSeedFiles(t *testing.T) {
	fsys := NewTestFS()
	SeedFiles(t, fsys, "/project", map[string]string{
		"tests/a.spec.ts": "a",
	})

	assert.Equal(t, "a", ReadFS(t, fsys, "/project/tests/a.spec.ts"))
}
