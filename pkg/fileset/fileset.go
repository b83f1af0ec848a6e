// Package fileset discovers the files a command operates on, either by
// walking the project tree with glob patterns or by reading an explicit
// list of failing tests.
package fileset

import (
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/specpatch/specpatch/pkg/errors"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/types"
)

// Finder locates candidate files under a project root. Paths it returns
// are root-relative with forward slashes, ready for reporting.
type Finder struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewFinder creates a finder reading through the given filesystem.
func NewFinder(fsys types.FS) *Finder {
	return &Finder{
		fs:     fsys,
		logger: logging.GetLogger("fileset"),
	}
}

// Glob returns every file under root matching at least one pattern,
// deduplicated and sorted. Patterns use doublestar syntax, so ** crosses
// directory levels. A pattern whose static prefix does not exist on disk
// simply contributes no matches.
func (f *Finder) Glob(root string, patterns []string) ([]string, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf(errors.ErrPatternInvalid, "invalid glob pattern %q", pattern)
		}
	}

	seen := make(map[string]bool)
	for _, pattern := range patterns {
		base := staticBase(pattern)
		start := root
		if base != "" {
			start = path.Join(root, base)
		}
		if _, err := f.fs.Stat(start); err != nil {
			f.logger.Debug().
				Str("pattern", pattern).
				Str("base", start).
				Msg("pattern base does not exist, skipping")
			continue
		}
		if err := f.walk(root, base, pattern, seen); err != nil {
			return nil, err
		}
	}

	files := make([]string, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}
	sort.Strings(files)

	f.logger.Debug().
		Strs("patterns", patterns).
		Int("fileCount", len(files)).
		Msg("glob discovery complete")

	return files, nil
}

// walk recurses from root/dir, matching root-relative paths against
// pattern and recording hits in seen.
func (f *Finder) walk(root, dir, pattern string, seen map[string]bool) error {
	abs := root
	if dir != "" {
		abs = path.Join(root, dir)
	}
	entries, err := f.fs.ReadDir(abs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read directory %s", abs)
	}

	for _, entry := range entries {
		rel := entry.Name()
		if dir != "" {
			rel = path.Join(dir, entry.Name())
		}
		if entry.IsDir() {
			if err := f.walk(root, rel, pattern, seen); err != nil {
				return err
			}
			continue
		}
		// ValidatePattern ran before the walk, Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			seen[rel] = true
		}
	}
	return nil
}

// staticBase returns the longest leading directory path of pattern that
// contains no glob metacharacters. The walk starts there instead of the
// project root, mirroring how anchored patterns behave.
func staticBase(pattern string) string {
	segments := strings.Split(pattern, "/")
	var base []string
	for _, segment := range segments[:len(segments)-1] {
		if strings.ContainsAny(segment, `*?[{\`) {
			break
		}
		base = append(base, segment)
	}
	return path.Join(base...)
}
