package patch

import (
	"strings"

	"github.com/specpatch/specpatch/pkg/errors"
)

// DisableReset builds the rule that comments out every occurrence of a
// live statement by replacing it with its marker form. The marker embeds
// the original statement verbatim, so the rule guards existing markers
// and leaves them untouched on repeated runs.
func DisableReset(statement, marker string) (Rule, error) {
	if statement == "" {
		return nil, errors.New(errors.ErrInvalidInput, "disable-reset: empty statement")
	}
	if marker == "" || marker == statement {
		return nil, errors.New(errors.ErrInvalidInput, "disable-reset: marker must differ from statement")
	}
	if !strings.Contains(marker, statement) {
		// No self-embedding, a plain literal swap is already idempotent.
		return NewLiteralRule("disable-reset", statement, marker), nil
	}
	return NewGuardedLiteralRule("disable-reset", statement, marker, marker), nil
}

// RestoreReset builds the inverse rule, replacing every marker with the
// live statement it embeds. Disable followed by restore round-trips file
// content byte for byte.
func RestoreReset(statement, marker string) (Rule, error) {
	if statement == "" {
		return nil, errors.New(errors.ErrInvalidInput, "restore-reset: empty statement")
	}
	if marker == "" || marker == statement {
		return nil, errors.New(errors.ErrInvalidInput, "restore-reset: marker must differ from statement")
	}
	return NewLiteralRule("restore-reset", marker, statement), nil
}
