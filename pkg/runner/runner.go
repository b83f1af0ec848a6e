// Package runner applies a rule set to a list of files and reports what
// happened to each one. Files are read through a filesystem abstraction,
// rewritten in memory, and handed to an applier as one batch, so nothing
// touches disk until every file has been processed.
package runner

import (
	"context"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/specpatch/specpatch/pkg/errors"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/patch"
	"github.com/specpatch/specpatch/pkg/types"
	"github.com/specpatch/specpatch/pkg/writeback"
)

// Runner rewrites files with a rule set and persists the results.
type Runner struct {
	fs      types.FS
	applier writeback.Applier
	logger  zerolog.Logger
}

// New creates a runner reading through fsys and writing through applier.
func New(fsys types.FS, applier writeback.Applier) *Runner {
	return &Runner{
		fs:      fsys,
		applier: applier,
		logger:  logging.GetLogger("runner"),
	}
}

// RunOptions describes one run.
type RunOptions struct {
	// Command names the operation for reporting.
	Command string

	// Root is the project root files are resolved against.
	Root string

	// DryRun is recorded on the result; the applier decides what a dry
	// run skips.
	DryRun bool

	// Files are root-relative slash paths, visited in order.
	Files []string

	// Rules is the rule set applied to each file.
	Rules *patch.Set
}

// Run processes every file and applies the accumulated changes in one
// batch. Per-file problems, failed writes included, land in the result
// instead of aborting the run; the returned error is reserved for
// faults that stop the whole batch.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*types.RunResult, error) {
	result := &types.RunResult{
		Command: opts.Command,
		Root:    opts.Root,
		DryRun:  opts.DryRun,
	}

	var changes []types.FileChange
	changeIndex := make(map[string]int)
	for _, file := range opts.Files {
		fileResult, change := r.processFile(opts.Root, file, opts.Rules)
		result.Files = append(result.Files, fileResult)
		if change != nil {
			changeIndex[change.Path] = len(result.Files) - 1
			changes = append(changes, *change)
		}
	}

	failures, err := r.applier.Apply(ctx, changes)
	if err != nil {
		return nil, err
	}
	for _, failure := range failures {
		idx, ok := changeIndex[failure.Path]
		if !ok {
			continue
		}
		result.Files[idx].Status = types.StatusError
		result.Files[idx].Hits = 0
		result.Files[idx].Error = failure.Err.Error()
	}

	result.Timestamp = time.Now()

	r.logger.Info().
		Str("command", opts.Command).
		Int("fileCount", len(result.Files)).
		Int("changedCount", result.ChangedCount()).
		Int("totalHits", result.TotalHits()).
		Bool("dryRun", opts.DryRun).
		Msg("run complete")

	return result, nil
}

// processFile rewrites a single file in memory. The returned change is
// nil when there is nothing to write.
func (r *Runner) processFile(root, file string, rules *patch.Set) (types.FileResult, *types.FileChange) {
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, filepath.FromSlash(file))
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		r.logger.Debug().Str("path", path).Msg("file not found, skipping")
		return types.FileResult{
			Path:   file,
			Status: types.StatusMissing,
			Error:  errors.New(errors.ErrFileNotFound, "file not found").Error(),
		}, nil
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		return types.FileResult{
			Path:   file,
			Status: types.StatusError,
			Error:  errors.Wrapf(err, errors.ErrFileRead, "failed to read file").Error(),
		}, nil
	}

	if !utf8.Valid(data) {
		return types.FileResult{
			Path:   file,
			Status: types.StatusError,
			Error:  errors.New(errors.ErrFileRead, "file is not valid UTF-8").Error(),
		}, nil
	}

	content := string(data)
	rewritten, hits := rules.Apply(content)

	logger := r.logger.With().Str("path", file).Int("hits", hits).Logger()

	if rewritten == content {
		// Hits with identical output happen when cleanup rules undo an
		// insertion that was already present.
		logger.Debug().Msg("file unchanged")
		return types.FileResult{
			Path:   file,
			Status: types.StatusUnchanged,
			Hits:   hits,
		}, nil
	}

	logger.Debug().Msg("file rewritten")
	return types.FileResult{
			Path:   file,
			Status: types.StatusChanged,
			Hits:   hits,
		}, &types.FileChange{
			Path:    path,
			Content: []byte(rewritten),
			Perm:    info.Mode().Perm(),
		}
}
