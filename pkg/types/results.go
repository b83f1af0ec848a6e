package types

import (
	"io/fs"
	"time"
)

// FileStatus classifies the outcome of processing a single file.
type FileStatus string

const (
	// StatusChanged means the file matched at least once and was rewritten
	// (or would have been, in dry-run mode).
	StatusChanged FileStatus = "changed"

	// StatusUnchanged means the file was read and left byte-for-byte intact.
	StatusUnchanged FileStatus = "unchanged"

	// StatusMissing means a manifest-listed file does not exist; the file
	// was skipped and the run continued.
	StatusMissing FileStatus = "missing"

	// StatusError means the file could not be read or written; the error
	// was recorded and the run continued.
	StatusError FileStatus = "error"
)

// FileResult is the outcome of one file's read-transform-write cycle.
type FileResult struct {
	Path   string     `json:"path"`
	Status FileStatus `json:"status"`
	Hits   int        `json:"hits"`
	Error  string     `json:"error,omitempty"`
}

// RunResult is the top-level structure produced by every patch command.
type RunResult struct {
	Command   string       `json:"command"`
	Root      string       `json:"root"`
	DryRun    bool         `json:"dryRun"`
	Files     []FileResult `json:"files"`
	Timestamp time.Time    `json:"timestamp"`
}

// TotalHits sums the hit counts across all files.
func (r *RunResult) TotalHits() int {
	total := 0
	for _, f := range r.Files {
		total += f.Hits
	}
	return total
}

// ChangedCount returns how many files were (or would be) rewritten.
func (r *RunResult) ChangedCount() int {
	count := 0
	for _, f := range r.Files {
		if f.Status == StatusChanged {
			count++
		}
	}
	return count
}

// SkippedCount returns how many files were missing or errored.
func (r *RunResult) SkippedCount() int {
	count := 0
	for _, f := range r.Files {
		if f.Status == StatusMissing || f.Status == StatusError {
			count++
		}
	}
	return count
}

// Changed returns only the results for files that were rewritten.
func (r *RunResult) Changed() []FileResult {
	var changed []FileResult
	for _, f := range r.Files {
		if f.Status == StatusChanged {
			changed = append(changed, f)
		}
	}
	return changed
}

// FileChange describes a pending rewrite of a single file.
type FileChange struct {
	Path    string
	Content []byte
	Perm    fs.FileMode
}

// GenConfigResult holds the result of the 'gen-config' command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
