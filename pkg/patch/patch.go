// Package patch implements the stateless text-substitution rules shared by
// all specpatch commands. A Rule rewrites file content in memory and reports
// how many times it fired; rules compose into an ordered Set applied to one
// file at a time. Rules hold no state across files, so a Set is reused for
// every file of a run.
package patch

import (
	"regexp"
	"strings"

	"github.com/specpatch/specpatch/pkg/errors"
)

// Rule is a single substitution applied to file content.
type Rule interface {
	// Name identifies the rule in logs and error messages.
	Name() string

	// Apply returns the rewritten content and the number of times the
	// rule fired. Apply(s) == (s, 0) when nothing matched.
	Apply(src string) (string, int)
}

// regexpRule substitutes every match of a compiled pattern with an
// expansion template ($1, ${0}, ...).
type regexpRule struct {
	name     string
	re       *regexp.Regexp
	template string
}

// NewRegexpRule compiles pattern and returns a rule replacing each match
// with the expansion of template.
func NewRegexpRule(name, pattern, template string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "rule %s: invalid pattern", name)
	}
	return &regexpRule{name: name, re: re, template: template}, nil
}

func (r *regexpRule) Name() string { return r.name }

func (r *regexpRule) Apply(src string) (string, int) {
	hits := len(r.re.FindAllStringIndex(src, -1))
	if hits == 0 {
		return src, 0
	}
	return r.re.ReplaceAllString(src, r.template), hits
}

// literalRule substitutes every exact occurrence of old with new.
type literalRule struct {
	name string
	old  string
	new  string
}

// NewLiteralRule returns a rule replacing every exact occurrence of old
// with new.
func NewLiteralRule(name, old, new string) Rule {
	return &literalRule{name: name, old: old, new: new}
}

func (r *literalRule) Name() string { return r.name }

func (r *literalRule) Apply(src string) (string, int) {
	hits := strings.Count(src, r.old)
	if hits == 0 {
		return src, 0
	}
	return strings.ReplaceAll(src, r.old, r.new), hits
}

// guardedLiteralRule replaces old with new while leaving occurrences of
// guard untouched, even where old appears inside guard. Go's regexp
// alternation is leftmost-first, so a guard match consumes the region
// before the inner old can fire.
type guardedLiteralRule struct {
	name string
	re   *regexp.Regexp
	old  string
	new  string
}

// NewGuardedLiteralRule returns a literal rule that skips over guard.
// It makes replacements idempotent when new contains old as a substring.
func NewGuardedLiteralRule(name, old, new, guard string) Rule {
	re := regexp.MustCompile(regexp.QuoteMeta(guard) + "|" + regexp.QuoteMeta(old))
	return &guardedLiteralRule{name: name, re: re, old: old, new: new}
}

func (r *guardedLiteralRule) Name() string { return r.name }

func (r *guardedLiteralRule) Apply(src string) (string, int) {
	hits := 0
	out := r.re.ReplaceAllStringFunc(src, func(m string) string {
		if m == r.old {
			hits++
			return r.new
		}
		return m
	})
	if hits == 0 {
		return src, 0
	}
	return out, hits
}

// Set is an ordered collection of rules applied in sequence to one file's
// content.
type Set struct {
	rules []Rule
}

// NewSet builds a rule set preserving the given order.
func NewSet(rules ...Rule) *Set {
	return &Set{rules: rules}
}

// Apply runs every rule in order and returns the final content together
// with the summed hit count.
func (s *Set) Apply(src string) (string, int) {
	out := src
	total := 0
	for _, rule := range s.rules {
		var hits int
		out, hits = rule.Apply(out)
		total += hits
	}
	return out, total
}

// Names lists the rule names in application order.
func (s *Set) Names() []string {
	names := make([]string, len(s.rules))
	for i, rule := range s.rules {
		names[i] = rule.Name()
	}
	return names
}
