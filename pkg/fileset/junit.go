package fileset

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/specpatch/specpatch/pkg/errors"
)

// ReadJUnit extracts the source files of failing tests from a JUnit XML
// report, as an alternative to the plain-text manifest. A test case
// counts as failing when it carries a failure or error child element.
// The file comes from the testcase's file attribute when the reporter
// wrote one, falling back to the enclosing testsuite's.
func (f *Finder) ReadJUnit(path string) ([]string, error) {
	data, err := f.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrManifestMissing, "report %s not found", path)
		}
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to read report %s", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to parse report %s", path)
	}

	seen := make(map[string]bool)
	var files []string
	for _, testcase := range doc.FindElements("//testcase") {
		if testcase.SelectElement("failure") == nil && testcase.SelectElement("error") == nil {
			continue
		}
		file := testcase.SelectAttrValue("file", "")
		if file == "" {
			if suite := testcase.Parent(); suite != nil {
				file = suite.SelectAttrValue("file", "")
			}
		}
		if file == "" {
			continue
		}
		file = filepath.ToSlash(file)
		if seen[file] {
			continue
		}
		seen[file] = true
		files = append(files, file)
	}

	f.logger.Debug().
		Str("report", path).
		Int("fileCount", len(files)).
		Msg("junit report read")

	return files, nil
}
