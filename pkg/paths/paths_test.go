package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specpatch/specpatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExplicitRoot(t *testing.T) {
	root := t.TempDir()

	p, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, root, p.Root())
}

func TestNewRootFromEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvRoot, root)

	p, err := New("")
	require.NoError(t, err)
	assert.Equal(t, root, p.Root())
}

func TestNewMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestNewRootIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := New(file)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	p, err := New(root)
	require.NoError(t, err)

	tests := []struct {
		name string
		rel  string
		want string
	}{
		{
			name: "forward slash path joins root",
			rel:  "tests/unit/users.spec.ts",
			want: filepath.Join(root, "tests", "unit", "users.spec.ts"),
		},
		{
			name: "plain file joins root",
			rel:  "failed-tests.txt",
			want: filepath.Join(root, "failed-tests.txt"),
		},
		{
			name: "absolute path passes through",
			rel:  filepath.Join(root, "tests", "a.spec.ts"),
			want: filepath.Join(root, "tests", "a.spec.ts"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Resolve(tt.rel))
		})
	}
}

func TestXDGDirsAreNamespaced(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "specpatch", filepath.Base(p.ConfigDir()))
	assert.Equal(t, "specpatch", filepath.Base(p.StateDir()))
	assert.Equal(t, "specpatch", filepath.Base(p.CacheDir()))
}

func TestBackupsDirUnderState(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.StateDir(), "backups"), p.BackupsDir())
}
