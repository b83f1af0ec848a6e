package runner

import (
	"context"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specpatch/specpatch/pkg/filesystem"
	"github.com/specpatch/specpatch/pkg/patch"
	"github.com/specpatch/specpatch/pkg/types"
	"github.com/specpatch/specpatch/pkg/writeback"
)

const testRoot = "/project"

func seedFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	for path, content := range files {
		require.NoError(t, fsys.WriteFile(testRoot+"/"+path, []byte(content), 0644))
	}
	return fsys
}

func stripRules(t *testing.T) *patch.Set {
	t.Helper()
	rule, err := patch.StripLeadingArg("userMgmtAdapterMock", "expect.any(String)")
	require.NoError(t, err)
	return patch.NewSet(rule)
}

// failWriteFS fails writes to one path and passes everything else through.
type failWriteFS struct {
	types.FS
	path string
}

func (f *failWriteFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if name == f.path {
		return fs.ErrPermission
	}
	return f.FS.WriteFile(name, data, perm)
}

func TestRunRewritesMatchingFiles(t *testing.T) {
	fsys := seedFS(t, map[string]string{
		"tests/a.spec.ts": "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(expect.any(String), userData);",
		"tests/b.spec.ts": "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(userData);",
	})
	r := New(fsys, writeback.NewDirect(fsys, false))

	result, err := r.Run(context.Background(), RunOptions{
		Command: "strip-arg",
		Root:    testRoot,
		Files:   []string{"tests/a.spec.ts", "tests/b.spec.ts"},
		Rules:   stripRules(t),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, types.StatusChanged, result.Files[0].Status)
	assert.Equal(t, 1, result.Files[0].Hits)
	assert.Equal(t, types.StatusUnchanged, result.Files[1].Status)
	assert.Equal(t, 0, result.Files[1].Hits)

	assert.Equal(t, 1, result.ChangedCount())
	assert.Equal(t, 1, result.TotalHits())
	assert.Len(t, result.Changed(), 1)

	data, err := fsys.ReadFile(testRoot + "/tests/a.spec.ts")
	require.NoError(t, err)
	assert.Equal(t, "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(userData);", string(data))

	data, err = fsys.ReadFile(testRoot + "/tests/b.spec.ts")
	require.NoError(t, err)
	assert.Equal(t, "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(userData);", string(data))
}

func TestRunReportsMissingFiles(t *testing.T) {
	fsys := seedFS(t, map[string]string{
		"tests/a.spec.ts": "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(expect.any(String), x);",
	})
	r := New(fsys, writeback.NewDirect(fsys, false))

	result, err := r.Run(context.Background(), RunOptions{
		Command: "strip-arg",
		Root:    testRoot,
		Files:   []string{"tests/gone.spec.ts", "tests/a.spec.ts"},
		Rules:   stripRules(t),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, types.StatusMissing, result.Files[0].Status)
	assert.NotEmpty(t, result.Files[0].Error)

	// A missing file does not stop the files after it.
	assert.Equal(t, types.StatusChanged, result.Files[1].Status)
	assert.Equal(t, 1, result.SkippedCount())
}

func TestRunReportsUnreadableContent(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.WriteFile(testRoot+"/tests/bin.spec.ts", []byte{0xff, 0xfe, 0x00, 0x80}, 0644))
	r := New(fsys, writeback.NewDirect(fsys, false))

	result, err := r.Run(context.Background(), RunOptions{
		Command: "strip-arg",
		Root:    testRoot,
		Files:   []string{"tests/bin.spec.ts"},
		Rules:   stripRules(t),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, types.StatusError, result.Files[0].Status)
	assert.Contains(t, result.Files[0].Error, "UTF-8")
}

func TestRunReportsFailedWrites(t *testing.T) {
	src := "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(expect.any(String), x);"
	fsys := seedFS(t, map[string]string{
		"tests/a.spec.ts": src,
		"tests/b.spec.ts": src,
	})
	blocked := &failWriteFS{FS: fsys, path: testRoot + "/tests/a.spec.ts"}
	r := New(blocked, writeback.NewDirect(blocked, false))

	result, err := r.Run(context.Background(), RunOptions{
		Command: "strip-arg",
		Root:    testRoot,
		Files:   []string{"tests/a.spec.ts", "tests/b.spec.ts"},
		Rules:   stripRules(t),
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, types.StatusError, result.Files[0].Status)
	assert.Contains(t, result.Files[0].Error, "FILE_WRITE")
	assert.Equal(t, 0, result.Files[0].Hits)

	// The failed write does not stop the file after it.
	assert.Equal(t, types.StatusChanged, result.Files[1].Status)
	assert.Equal(t, 1, result.ChangedCount())
	assert.Equal(t, 1, result.TotalHits())

	data, err := fsys.ReadFile(testRoot + "/tests/b.spec.ts")
	require.NoError(t, err)
	assert.Equal(t, "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(x);", string(data))
}

func TestRunHitsWithoutChange(t *testing.T) {
	// An insertion that is immediately collapsed leaves the file as it
	// was; the result records the hits but nothing is written.
	set, err := patch.InsertLeadingArg([]string{"policyRepositoryMock"}, "expect.any(String)")
	require.NoError(t, err)

	src := "expect(policyRepositoryMock.save).toHaveBeenCalledWith(expect.any(String), policy);"
	fsys := seedFS(t, map[string]string{"tests/a.spec.ts": src})
	r := New(fsys, writeback.NewDirect(fsys, false))

	result, err := r.Run(context.Background(), RunOptions{
		Command: "insert-arg",
		Root:    testRoot,
		Files:   []string{"tests/a.spec.ts"},
		Rules:   set,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, types.StatusUnchanged, result.Files[0].Status)
	assert.Positive(t, result.Files[0].Hits)
	assert.Empty(t, result.Changed())

	data, err := fsys.ReadFile(testRoot + "/tests/a.spec.ts")
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}

func TestRunDryRun(t *testing.T) {
	src := "expect(userMgmtAdapterMock.createUser).toHaveBeenCalledWith(expect.any(String), x);"
	fsys := seedFS(t, map[string]string{"tests/a.spec.ts": src})
	r := New(fsys, writeback.NewDirect(fsys, true))

	result, err := r.Run(context.Background(), RunOptions{
		Command: "strip-arg",
		Root:    testRoot,
		DryRun:  true,
		Files:   []string{"tests/a.spec.ts"},
		Rules:   stripRules(t),
	})
	require.NoError(t, err)

	// The result reports what would change, the file stays untouched.
	assert.True(t, result.DryRun)
	assert.Equal(t, types.StatusChanged, result.Files[0].Status)

	data, err := fsys.ReadFile(testRoot + "/tests/a.spec.ts")
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}
