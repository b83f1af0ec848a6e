// Package striparg implements the strip-arg command. It deletes the
// placeholder first argument from assertion calls on the configured
// adapter mock, across every file the spec globs match. Assertions on
// all other mocks keep their placeholder.
package striparg

import (
	"context"

	"github.com/specpatch/specpatch/pkg/core"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/patch"
	"github.com/specpatch/specpatch/pkg/runner"
	"github.com/specpatch/specpatch/pkg/types"
	"github.com/specpatch/specpatch/pkg/writeback"
)

// StripArgOptions holds options for the strip-arg command
type StripArgOptions struct {
	// Root is the project root containing the test tree.
	Root string
	// DryRun reports what would change without writing anything.
	DryRun bool
	// Backup copies files aside before rewriting them.
	Backup bool
	// FileSystem overrides the real filesystem; used by tests.
	FileSystem types.FS
	// Applier overrides the write-back strategy; used by tests.
	Applier writeback.Applier
}

// StripArg removes the placeholder argument from assertions on the strip
// target mock.
func StripArg(opts StripArgOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.striparg")

	env, err := core.Prepare(core.Options{
		Root:       opts.Root,
		DryRun:     opts.DryRun,
		Backup:     opts.Backup,
		FileSystem: opts.FileSystem,
		Applier:    opts.Applier,
	})
	if err != nil {
		return nil, err
	}

	rule, err := patch.StripLeadingArg(env.Config.Mocks.StripTarget, env.Config.Mocks.Placeholder)
	if err != nil {
		return nil, err
	}

	files, err := env.Finder.Glob(env.Paths.Root(), env.Config.Files.Specs)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("target", env.Config.Mocks.StripTarget).
		Int("fileCount", len(files)).
		Bool("dryRun", opts.DryRun).
		Msg("Stripping placeholder arguments")

	return env.Runner.Run(context.Background(), runner.RunOptions{
		Command: "strip-arg",
		Root:    env.Paths.Root(),
		DryRun:  opts.DryRun,
		Files:   files,
		Rules:   patch.NewSet(rule),
	})
}
