// Package core assembles the environment every patch command runs in:
// resolved project paths, merged configuration, the filesystem, file
// discovery and the runner with its write-back applier. Commands stay
// thin orchestration over this shared setup.
package core

import (
	"github.com/specpatch/specpatch/pkg/config"
	"github.com/specpatch/specpatch/pkg/fileset"
	"github.com/specpatch/specpatch/pkg/filesystem"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/paths"
	"github.com/specpatch/specpatch/pkg/runner"
	"github.com/specpatch/specpatch/pkg/types"
	"github.com/specpatch/specpatch/pkg/writeback"
)

// Options selects how a command run is wired.
type Options struct {
	// Root is the project root. Empty falls back to the SPECPATCH_ROOT
	// environment variable, then the working directory.
	Root string

	// DryRun reports what would change without writing anything.
	DryRun bool

	// Backup copies each file aside before overwriting it.
	Backup bool

	// FileSystem overrides the real filesystem; tests inject an
	// in-memory one here. Runs with an override write directly instead
	// of through the synthfs pipeline.
	FileSystem types.FS

	// Applier overrides the write-back applier chosen from FileSystem.
	Applier writeback.Applier
}

// Environment is the assembled run context.
type Environment struct {
	Paths  *paths.Paths
	Config *config.Config
	FS     types.FS
	Finder *fileset.Finder
	Runner *runner.Runner
}

// Prepare resolves the root, loads configuration and wires the runner.
func Prepare(opts Options) (*Environment, error) {
	logger := logging.GetLogger("core")

	p, err := paths.New(opts.Root)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.Root())
	if err != nil {
		return nil, err
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	applier := opts.Applier
	if applier == nil {
		if opts.FileSystem != nil {
			direct := writeback.NewDirect(fsys, opts.DryRun)
			if opts.Backup {
				direct.EnableBackup(p.Root(), p.BackupsDir())
			}
			applier = direct
		} else {
			pipeline := writeback.NewPipeline(opts.DryRun)
			if opts.Backup {
				pipeline.EnableBackup(p.Root(), p.BackupsDir())
			}
			applier = pipeline
		}
	}

	logger.Debug().
		Str("root", p.Root()).
		Bool("dryRun", opts.DryRun).
		Bool("backup", opts.Backup).
		Msg("environment prepared")

	return &Environment{
		Paths:  p,
		Config: cfg,
		FS:     fsys,
		Finder: fileset.NewFinder(fsys),
		Runner: runner.New(fsys, applier),
	}, nil
}
