package reseton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specpatch/specpatch/pkg/commands/resetoff"
	"github.com/specpatch/specpatch/pkg/testutil"
)

const (
	live   = "container.reset();"
	marker = "// container.reset(); // Removed to preserve src/container.ts registrations"
)

func TestResetOn(t *testing.T) {
	root := t.TempDir()
	fsys := testutil.NewTestFS()
	testutil.SeedFiles(t, fsys, root, map[string]string{
		"tests/a.spec.ts": "beforeEach(() => {\n    " + marker + "\n});\n",
		"tests/b.spec.ts": "it('untouched', () => {});\n",
	})

	result, err := ResetOn(ResetOnOptions{Root: root, FileSystem: fsys})
	require.NoError(t, err)

	assert.Equal(t, "reset-on", result.Command)
	assert.Equal(t, 1, result.ChangedCount())
	assert.Equal(t, 1, result.TotalHits())

	assert.Equal(t, "beforeEach(() => {\n    "+live+"\n});\n",
		testutil.ReadFS(t, fsys, root+"/tests/a.spec.ts"))
	assert.Equal(t, "it('untouched', () => {});\n",
		testutil.ReadFS(t, fsys, root+"/tests/b.spec.ts"))
}

func TestResetOnIsNoOpWithoutMarkers(t *testing.T) {
	root := t.TempDir()
	fsys := testutil.NewTestFS()
	testutil.SeedFiles(t, fsys, root, map[string]string{
		"tests/a.spec.ts": "beforeEach(() => {\n    " + live + "\n});\n",
	})

	result, err := ResetOn(ResetOnOptions{Root: root, FileSystem: fsys})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ChangedCount())
	assert.Equal(t, 0, result.TotalHits())
}

func TestResetOffThenOnRoundTrips(t *testing.T) {
	root := t.TempDir()
	fsys := testutil.NewTestFS()
	original := "describe('suite', () => {\n" +
		"    beforeEach(() => {\n" +
		"        " + live + "\n" +
		"        register();\n" +
		"    });\n" +
		"});\n"
	testutil.SeedFiles(t, fsys, root, map[string]string{"tests/a.spec.ts": original})

	_, err := resetoff.ResetOff(resetoff.ResetOffOptions{Root: root, FileSystem: fsys})
	require.NoError(t, err)
	require.NotEqual(t, original, testutil.ReadFS(t, fsys, root+"/tests/a.spec.ts"))

	result, err := ResetOn(ResetOnOptions{Root: root, FileSystem: fsys})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ChangedCount())
	assert.Equal(t, original, testutil.ReadFS(t, fsys, root+"/tests/a.spec.ts"))
}

func TestResetOnDryRun(t *testing.T) {
	root := t.TempDir()
	fsys := testutil.NewTestFS()
	src := marker + "\n"
	testutil.SeedFiles(t, fsys, root, map[string]string{"tests/a.spec.ts": src})

	result, err := ResetOn(ResetOnOptions{Root: root, DryRun: true, FileSystem: fsys})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ChangedCount())
	assert.Equal(t, src, testutil.ReadFS(t, fsys, root+"/tests/a.spec.ts"))
}
