// Package reseton restores container reset statements that were
// previously commented out by the reset-off command.
package reseton

import (
	"context"

	"github.com/specpatch/specpatch/pkg/core"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/patch"
	"github.com/specpatch/specpatch/pkg/runner"
	"github.com/specpatch/specpatch/pkg/types"
	"github.com/specpatch/specpatch/pkg/writeback"
)

// ResetOnOptions contains all parameters for the ResetOn command.
type ResetOnOptions struct {
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

// ResetOn replaces every commented-out reset marker with the live
// statement across the configured spec files.
func ResetOn(opts ResetOnOptions) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.reseton")

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

	rule, err := patch.RestoreReset(env.Config.Reset.Live, env.Config.Reset.Marker)
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
		Msg("Restoring container resets")

	return env.Runner.Run(context.Background(), runner.RunOptions{
		Command: "reset-on",
		Root:    env.Paths.Root(),
		DryRun:  opts.DryRun,
		Files:   files,
		Rules:   patch.NewSet(rule),
	})
}
