package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrFileRead, "cannot read file")
	assert.Equal(t, ErrFileRead, err.Code)
	assert.Equal(t, "cannot read file", err.Message)
	assert.Equal(t, "[FILE_READ] cannot read file", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrManifestMissing, "manifest %q not found", "failed-tests.txt")
	assert.Equal(t, ErrManifestMissing, err.Code)
	assert.Equal(t, `[MANIFEST_MISSING] manifest "failed-tests.txt" not found`, err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(cause, ErrFileWrite, "cannot write file")

	require.NotNil(t, err)
	assert.Equal(t, ErrFileWrite, err.Code)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "permission denied")
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, ErrFileWrite, "cannot write file"); err != nil {
		t.Errorf("Wrap(nil, ...) = %v, want nil", err)
	}
}

func TestIsComparesByCode(t *testing.T) {
	err := Newf(ErrConfigParse, "bad toml at line %d", 12)

	assert.True(t, errors.Is(err, New(ErrConfigParse, "")))
	assert.False(t, errors.Is(err, New(ErrConfigLoad, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), ErrPatternInvalid, "bad glob")

	assert.True(t, IsErrorCode(err, ErrPatternInvalid))
	assert.False(t, IsErrorCode(err, ErrFileRead))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrPatternInvalid))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrFileNotFound, GetErrorCode(New(ErrFileNotFound, "gone")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))

	// Wrapped at a distance still resolves.
	wrapped := fmt.Errorf("outer: %w", New(ErrManifestRead, "inner"))
	assert.Equal(t, ErrManifestRead, GetErrorCode(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileWrite, "cannot write").
		WithDetail("path", "tests/users.spec.ts")

	assert.Equal(t, "tests/users.spec.ts", err.Details["path"])
}
