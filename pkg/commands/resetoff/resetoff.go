// Package resetoff comments out container reset statements in spec files
// so that registrations performed at import time survive between tests.
package resetoff

import (
	"context"

	"github.com/specpatch/specpatch/pkg/core"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/patch"
	"github.com/specpatch/specpatch/pkg/runner"
	"github.com/specpatch/specpatch/pkg/types"
	"github.com/specpatch/specpatch/pkg/writeback"
)

// ResetOffOptions contains all parameters for the ResetOff command.
type ResetOffOptions struct {
	// Root is the project root directory to operate on
	Root string

	// DryRun shows what would be done without making changes
	DryRun bool

	// Backup copies each file aside before rewriting it
	Backup bool

	// FileSystem allows injection of a filesystem for testing
	FileSystem types.FS

	// Applier allows injection of a write-back strategy for testing
	Applier writeback.Applier
}

// ResetOff replaces every live reset statement with its commented-out
// marker across the configured spec files.
func ResetOff(opts ResetOffOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.resetoff")

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

	rule, err := patch.DisableReset(env.Config.Reset.Live, env.Config.Reset.Marker)
	if err != nil {
		return nil, err
	}

	files, err := env.Finder.Glob(env.Paths.Root(), env.Config.Files.Resets)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("fileCount", len(files)).
		Bool("dryRun", opts.DryRun).
		Msg("Disabling container resets")

	return env.Runner.Run(context.Background(), runner.RunOptions{
		Command: "reset-off",
		Root:    env.Paths.Root(),
		DryRun:  opts.DryRun,
		Files:   files,
		Rules:   patch.NewSet(rule),
	})
}
