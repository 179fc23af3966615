// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/dotskills/dotskills/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "source_not_found",
			code:    errors.ErrSourceNotFound,
			message: "source directory does not exist",
			wantStr: "[SOURCE_NOT_FOUND] source directory does not exist",
		},
		{
			name:    "skill_invalid",
			code:    errors.ErrSkillInvalid,
			message: "missing frontmatter",
			wantStr: "[SKILL_INVALID] missing frontmatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.wantStr, err.Error())
			assert.NotNil(t, err.Details)
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrSkillNotFound, "skill %q not found", "alpha")
	assert.Equal(t, `[SKILL_NOT_FOUND] skill "alpha" not found`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := fmt.Errorf("permission denied")
		err := errors.Wrap(inner, errors.ErrFileAccess, "cannot read config")

		require.NotNil(t, err)
		assert.Equal(t, "[FILE_ACCESS] cannot read config: permission denied", err.Error())
		assert.Equal(t, inner, stderrors.Unwrap(err))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrFileAccess, "cannot read"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrFileAccess, "cannot read %s", "x"))
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrapf(fmt.Errorf("stat failed"), errors.ErrSourceNotFound, "source %q missing", "/tmp/x")

	assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	assert.False(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrSourceNotFound))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrDirRemove, errors.GetErrorCode(errors.New(errors.ErrDirRemove, "rm failed")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrSourceNotFound, "gone")
	target := errors.New(errors.ErrSourceNotFound, "different message, same code")

	assert.True(t, stderrors.Is(err, target))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrSkillExists, "x")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileCopy, "copy failed").
		WithDetail("source", "/a").
		WithDetail("dest", "/b")

	assert.Equal(t, "/a", err.Details["source"])
	assert.Equal(t, "/b", err.Details["dest"])
}
