// Package writeback persists rewritten file content. Commands run against
// one of two appliers: DirectApplier writes through a types.FS and serves
// in-memory runs, PipelineApplier runs writes through synthfs pipelines
// for real project trees. Both honor dry-run and optional backups.
package writeback

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/specpatch/specpatch/pkg/errors"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/types"
)

// Applier persists a batch of file rewrites. Apply attempts every
// change; changes that could not be persisted come back as failures.
// The error is reserved for faults that stop the whole batch.
type Applier interface {
	Apply(ctx context.Context, changes []types.FileChange) ([]Failure, error)
}

// Failure records one change the applier could not persist.
type Failure struct {
	Path string
	Err  error
}

// DirectApplier writes changes straight through a filesystem.
type DirectApplier struct {
	fs        types.FS
	logger    zerolog.Logger
	dryRun    bool
	backup    bool
	root      string
	backupDir string
}

// NewDirect creates an applier writing through the given filesystem.
func NewDirect(fsys types.FS, dryRun bool) *DirectApplier {
	return &DirectApplier{
		fs:     fsys,
		logger: logging.GetLogger("writeback.direct"),
		dryRun: dryRun,
	}
}

// EnableBackup copies each file into backupDir before overwriting it.
// Backup names flatten the path relative to root.
func (a *DirectApplier) EnableBackup(root, backupDir string) *DirectApplier {
	a.backup = true
	a.root = root
	a.backupDir = backupDir
	return a
}

// Apply writes every change, backing up originals first when enabled.
// A change whose backup or write fails is reported and skipped; the
// remaining changes are still written.
func (a *DirectApplier) Apply(_ context.Context, changes []types.FileChange) ([]Failure, error) {
	if a.dryRun {
		for _, change := range changes {
			a.logger.Info().
				Str("path", change.Path).
				Int("contentLen", len(change.Content)).
				Msg("Would write file")
		}
		return nil, nil
	}

	if len(changes) == 0 {
		return nil, nil
	}

	if a.backup {
		if err := a.fs.MkdirAll(a.backupDir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to create backup directory %s", a.backupDir)
		}
	}

	now := time.Now()
	var failures []Failure
	for _, change := range changes {
		if err := a.applyChange(change, now); err != nil {
			a.logger.Error().Str("path", change.Path).Err(err).Msg("write failed")
			failures = append(failures, Failure{Path: change.Path, Err: err})
			continue
		}
		a.logger.Debug().Str("path", change.Path).Msg("file written")
	}
	return failures, nil
}

func (a *DirectApplier) applyChange(change types.FileChange, now time.Time) error {
	if a.backup {
		if err := a.backupFile(change, now); err != nil {
			return err
		}
	}
	if err := a.fs.WriteFile(change.Path, change.Content, change.Perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write file")
	}
	return nil
}

func (a *DirectApplier) backupFile(change types.FileChange, now time.Time) error {
	original, err := a.fs.ReadFile(change.Path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read original for backup")
	}
	name := filepath.Join(a.backupDir, backupName(a.root, change.Path, now))
	if err := a.fs.WriteFile(name, original, change.Perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write backup %s", name)
	}
	a.logger.Debug().
		Str("path", change.Path).
		Str("backup", name).
		Msg("backup written")
	return nil
}

// backupName flattens path relative to root and stamps it, so one backup
// directory can hold files from anywhere in the tree without collisions.
func backupName(root, path string, now time.Time) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(path)
	}
	flat := strings.ReplaceAll(rel, string(filepath.Separator), "_")
	return flat + "." + now.Format("20060102-150405")
}
