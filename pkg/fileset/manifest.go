package fileset

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/specpatch/specpatch/pkg/errors"
)

// ReadManifest reads a plain-text list of test files, one root-relative
// path per line. Blank lines are skipped, surrounding whitespace is
// trimmed and duplicates keep their first position. A missing manifest is
// fatal, there is nothing sensible to patch without it.
func (f *Finder) ReadManifest(path string) ([]string, error) {
	data, err := f.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrManifestMissing, "manifest %s not found", path)
		}
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to read manifest %s", path)
	}

	seen := make(map[string]bool)
	var files []string
	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		files = append(files, entry)
	}

	f.logger.Debug().
		Str("manifest", path).
		Int("entryCount", len(files)).
		Msg("manifest read")

	return files, nil
}
