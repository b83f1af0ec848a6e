package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specpatch/specpatch/pkg/errors"
)

func TestNewRegexpRule(t *testing.T) {
	t.Run("compiles valid pattern", func(t *testing.T) {
		rule, err := NewRegexpRule("digits", `\d+`, "N")
		require.NoError(t, err)
		assert.Equal(t, "digits", rule.Name())

		out, hits := rule.Apply("a1b22c")
		assert.Equal(t, "aNbNc", out)
		assert.Equal(t, 2, hits)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		_, err := NewRegexpRule("broken", `(unclosed`, "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
	})

	t.Run("no match returns input unchanged", func(t *testing.T) {
		rule, err := NewRegexpRule("digits", `\d+`, "N")
		require.NoError(t, err)

		out, hits := rule.Apply("letters only")
		assert.Equal(t, "letters only", out)
		assert.Equal(t, 0, hits)
	})

	t.Run("expands capture groups", func(t *testing.T) {
		rule, err := NewRegexpRule("swap", `(\w+)=(\w+)`, "$2=$1")
		require.NoError(t, err)

		out, hits := rule.Apply("key=value")
		assert.Equal(t, "value=key", out)
		assert.Equal(t, 1, hits)
	})
}

func TestLiteralRule(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		new      string
		src      string
		want     string
		wantHits int
	}{
		{
			name:     "single occurrence",
			old:      "foo",
			new:      "bar",
			src:      "a foo b",
			want:     "a bar b",
			wantHits: 1,
		},
		{
			name:     "multiple occurrences",
			old:      "x",
			new:      "y",
			src:      "x.x.x",
			want:     "y.y.y",
			wantHits: 3,
		},
		{
			name:     "no occurrence",
			old:      "missing",
			new:      "found",
			src:      "nothing here",
			want:     "nothing here",
			wantHits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewLiteralRule("lit", tt.old, tt.new)
			out, hits := rule.Apply(tt.src)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.wantHits, hits)
		})
	}
}

func TestGuardedLiteralRule(t *testing.T) {
	t.Run("replaces outside guard", func(t *testing.T) {
		rule := NewGuardedLiteralRule("g", "stop();", "// stop(); // off", "// stop(); // off")

		out, hits := rule.Apply("run();\nstop();\n")
		assert.Equal(t, "run();\n// stop(); // off\n", out)
		assert.Equal(t, 1, hits)
	})

	t.Run("skips occurrences inside guard", func(t *testing.T) {
		rule := NewGuardedLiteralRule("g", "stop();", "// stop(); // off", "// stop(); // off")

		src := "run();\n// stop(); // off\n"
		out, hits := rule.Apply(src)
		assert.Equal(t, src, out)
		assert.Equal(t, 0, hits)
	})

	t.Run("mixed guarded and live occurrences", func(t *testing.T) {
		rule := NewGuardedLiteralRule("g", "stop();", "// stop(); // off", "// stop(); // off")

		out, hits := rule.Apply("// stop(); // off\nstop();\n")
		assert.Equal(t, "// stop(); // off\n// stop(); // off\n", out)
		assert.Equal(t, 1, hits)
	})
}

func TestSet(t *testing.T) {
	t.Run("applies rules in order and sums hits", func(t *testing.T) {
		first := NewLiteralRule("first", "a", "b")
		second := NewLiteralRule("second", "b", "c")
		set := NewSet(first, second)

		out, hits := set.Apply("aa")
		// first turns aa into bb, second turns bb into cc.
		assert.Equal(t, "cc", out)
		assert.Equal(t, 4, hits)
	})

	t.Run("names in application order", func(t *testing.T) {
		set := NewSet(NewLiteralRule("one", "x", "y"), NewLiteralRule("two", "y", "z"))
		assert.Equal(t, []string{"one", "two"}, set.Names())
	})

	t.Run("empty set is identity", func(t *testing.T) {
		set := NewSet()
		out, hits := set.Apply("anything")
		assert.Equal(t, "anything", out)
		assert.Equal(t, 0, hits)
	})
}
