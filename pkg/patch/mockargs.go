package patch

import (
	"regexp"
	"strings"

	"github.com/specpatch/specpatch/pkg/errors"
)

// StripLeadingArg builds the rule that deletes a leading placeholder
// argument from assertion calls on a single mock identifier. It rewrites
//
//	expect(<mock>.<member>).toHaveBeenCalledWith(<placeholder>, rest...
//
// to
//
//	expect(<mock>.<member>).toHaveBeenCalledWith(rest...
//
// consuming the separator and any whitespace after it.
func StripLeadingArg(mock, placeholder string) (Rule, error) {
	if mock == "" {
		return nil, errors.New(errors.ErrInvalidInput, "strip-leading-arg: empty mock identifier")
	}
	if placeholder == "" {
		return nil, errors.New(errors.ErrInvalidInput, "strip-leading-arg: empty placeholder")
	}
	pattern := `(expect\(` + regexp.QuoteMeta(mock) + `\.\w+\)\.toHaveBeenCalledWith\()` +
		regexp.QuoteMeta(placeholder) + `,\s*`
	return NewRegexpRule("strip-leading-arg", pattern, "$1")
}

// InsertLeadingArg builds the rule set that prepends a placeholder argument
// to assertion calls on any of the given mock identifiers. Matching is
// whitespace-tolerant around the call punctuation. Two literal cleanup
// rules follow the insertion: one collapses a doubled placeholder produced
// when the call already carried the argument, one repairs the dangling
// separator produced by zero-argument calls. Together they make repeated
// runs converge on the same output.
func InsertLeadingArg(mocks []string, placeholder string) (*Set, error) {
	if len(mocks) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "insert-leading-arg: empty mock list")
	}
	if placeholder == "" {
		return nil, errors.New(errors.ErrInvalidInput, "insert-leading-arg: empty placeholder")
	}
	quoted := make([]string, len(mocks))
	for i, mock := range mocks {
		if mock == "" {
			return nil, errors.New(errors.ErrInvalidInput, "insert-leading-arg: empty mock identifier")
		}
		quoted[i] = regexp.QuoteMeta(mock)
	}
	pattern := `expect\s*\(\s*(` + strings.Join(quoted, "|") + `)\.(\w+)\s*\)\.toHaveBeenCalledWith\s*\(`
	insert, err := NewRegexpRule("insert-leading-arg", pattern, "${0}"+placeholder+", ")
	if err != nil {
		return nil, err
	}
	collapse := NewLiteralRule("collapse-duplicate", placeholder+", "+placeholder, placeholder)
	closeCall := NewLiteralRule("close-call", placeholder+", )", placeholder+")")
	return NewSet(insert, collapse, closeCall), nil
}
