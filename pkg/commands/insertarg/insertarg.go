// Package insertarg prepends a placeholder matcher to mock call
// assertions in the spec files named by a failed-test manifest.
package insertarg

import (
	"context"

	"github.com/specpatch/specpatch/pkg/core"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/patch"
	"github.com/specpatch/specpatch/pkg/runner"
	"github.com/specpatch/specpatch/pkg/types"
	"github.com/specpatch/specpatch/pkg/writeback"
)

// InsertArgOptions contains all parameters for the InsertArg command.
type InsertArgOptions struct {
	// Root is the project root directory to operate on
	Root string

	// JUnitReport names a JUnit XML report to read failing spec files
	// from instead of the plain-text manifest. Relative paths resolve
	// against Root.
	JUnitReport string

	// DryRun shows what would be done without making changes
	DryRun bool

	// Backup copies each file aside before rewriting it
	Backup bool

	// FileSystem allows injection of a filesystem for testing
	FileSystem types.FS

	// Applier allows injection of a write-back strategy for testing
	Applier writeback.Applier
}

// InsertArg adds the configured placeholder as the first argument of
// every known-mock call assertion in the files the manifest lists.
// Files named by the manifest but absent on disk are reported as
// skipped rather than failing the run.
func InsertArg(opts InsertArgOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.insertarg")

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

	rules, err := patch.InsertLeadingArg(env.Config.Mocks.InsertKnown, env.Config.Mocks.Placeholder)
	if err != nil {
		return nil, err
	}

	var files []string
	if opts.JUnitReport != "" {
		files, err = env.Finder.ReadJUnit(env.Paths.Resolve(opts.JUnitReport))
	} else {
		files, err = env.Finder.ReadManifest(env.Paths.Resolve(env.Config.Files.Manifest))
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("fileCount", len(files)).
		Int("mockCount", len(env.Config.Mocks.InsertKnown)).
		Bool("dryRun", opts.DryRun).
		Msg("Inserting placeholder arguments")

	return env.Runner.Run(context.Background(), runner.RunOptions{
		Command: "insert-arg",
		Root:    env.Paths.Root(),
		DryRun:  opts.DryRun,
		Files:   files,
		Rules:   rules,
	})
}
