package writeback

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/specpatch/specpatch/pkg/errors"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/types"
)

// PipelineApplier executes writes through synthfs pipelines against the
// real filesystem. Backups are copy operations added ahead of their write,
// so they run against the original content.
type PipelineApplier struct {
	logger     zerolog.Logger
	dryRun     bool
	backup     bool
	root       string
	backupDir  string
	filesystem synthfs.FileSystem
}

// NewPipeline creates a synthfs-backed applier.
func NewPipeline(dryRun bool) *PipelineApplier {
	return &PipelineApplier{
		logger:     logging.GetLogger("writeback.pipeline"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"), // Use root filesystem
	}
}

// EnableBackup copies each file into backupDir before overwriting it.
func (a *PipelineApplier) EnableBackup(root, backupDir string) *PipelineApplier {
	a.backup = true
	a.root = root
	a.backupDir = backupDir
	return a
}

// Apply runs each change through its own pipeline. A change whose
// pipeline fails is reported and skipped; the rest still run.
func (a *PipelineApplier) Apply(ctx context.Context, changes []types.FileChange) ([]Failure, error) {
	if a.dryRun {
		a.logger.Info().Msg("Dry run mode - writes that would be applied:")
		for _, change := range changes {
			a.logger.Info().
				Str("path", change.Path).
				Int("contentLen", len(change.Content)).
				Msg("Would write file")
		}
		return nil, nil
	}

	if len(changes) == 0 {
		a.logger.Info().Msg("No writes to apply")
		return nil, nil
	}

	if a.backup {
		if err := os.MkdirAll(a.backupDir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite,
				"failed to create backup directory %s", a.backupDir)
		}
	}

	a.logger.Info().Int("fileCount", len(changes)).Msg("Applying writes")

	now := time.Now()
	var failures []Failure
	for _, change := range changes {
		if err := a.applyChange(ctx, change, now); err != nil {
			a.logger.Error().Str("path", change.Path).Err(err).Msg("write failed")
			failures = append(failures, Failure{Path: change.Path, Err: err})
		}
	}

	a.logger.Info().
		Int("fileCount", len(changes)).
		Int("failedCount", len(failures)).
		Msg("Writes applied")
	return failures, nil
}

// applyChange runs one change's backup and write as a single pipeline,
// so a failed backup keeps the write from running.
func (a *PipelineApplier) applyChange(ctx context.Context, change types.FileChange, now time.Time) error {
	pipeline := synthfs.NewMemPipeline()
	if a.backup {
		op, err := a.backupOperation(change, now)
		if err != nil {
			return err
		}
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite,
				"failed to add backup operation to pipeline")
		}
	}
	op, err := a.writeOperation(change)
	if err != nil {
		return err
	}
	if err := pipeline.Add(op); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to add write operation to pipeline")
	}

	executor := synthfs.NewExecutor()
	result := executor.Run(ctx, pipeline, a.filesystem)
	if result.GetError() != nil {
		return errors.Wrapf(result.GetError(), errors.ErrFileWrite,
			"failed to apply write")
	}
	return nil
}

// writeOperation builds the create-file operation for a change.
func (a *PipelineApplier) writeOperation(change types.FileChange) (synthfs.Operation, error) {
	mode := change.Perm
	if mode == 0 {
		mode = 0644
	}

	// Convert absolute path to relative for synthfs
	relPath, err := filepath.Rel("/", change.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", change.Path)
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", change.Path))
	createOp := operations.NewCreateFileOperation(opID, relPath)

	createOp.SetItem(&fileItem{
		path:    relPath,
		content: change.Content,
		mode:    mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

// backupOperation builds the copy operation preserving a change's original.
func (a *PipelineApplier) backupOperation(change types.FileChange, now time.Time) (synthfs.Operation, error) {
	target := filepath.Join(a.backupDir, backupName(a.root, change.Path, now))

	relSource, err := filepath.Rel("/", change.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert source path: %s", change.Path)
	}
	relTarget, err := filepath.Rel("/", target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert target path: %s", target)
	}

	opID := core.OperationID(fmt.Sprintf("backup-%s", change.Path))
	copyOp := operations.NewCopyOperation(opID, relTarget)
	copyOp.SetPaths(relSource, relTarget)

	return synthfs.NewOperationsPackageAdapter(copyOp), nil
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }
