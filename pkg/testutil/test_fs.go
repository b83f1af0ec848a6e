package testutil

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/specpatch/specpatch/pkg/filesystem"
	"github.com/specpatch/specpatch/pkg/types"
)

// NewTestFS returns an empty in-memory filesystem.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// SeedFiles writes the given root-relative files into fsys.
func SeedFiles(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		if err := fsys.WriteFile(root+"/"+name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to seed file %s: %v", name, err)
		}
	}
}

// ReadFS returns a file's content from fsys, failing the test on error.
func ReadFS(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(data)
}
