package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/docgap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "class",
			ID:       "Sprite",
		}
		assert.Equal(t, "class Sprite not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("function", "draw")
		assert.Equal(t, "function draw not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("class", "Image")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "params",
			Message: "cannot be negative",
		}
		assert.Equal(t, "validation failed for field params: cannot be negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid fragment",
		}
		assert.Equal(t, "validation failed: invalid fragment", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestDuplicateError(t *testing.T) {
	t.Run("with fragment", func(t *testing.T) {
		err := pkgerrors.NewDuplicateError("Sprite", "functions", "draw", "render.yaml")
		assert.Equal(t, "duplicate functions entry Sprite.draw (second definition in render.yaml)", err.Error())
		assert.True(t, pkgerrors.IsDuplicateEntry(err))
	})

	t.Run("without fragment", func(t *testing.T) {
		err := pkgerrors.NewDuplicateError("Sprite", "constants", "WIDTH", "")
		assert.Equal(t, "duplicate constants entry Sprite.WIDTH", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrDuplicateEntry))
	})
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected node")
	err := pkgerrors.WrapParse("yaml", "extract/core.yaml", base)
	require.Error(t, err)
	assert.Equal(t, "parse error in yaml file extract/core.yaml: unexpected node", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))

	assert.Nil(t, pkgerrors.WrapParse("yaml", "x.yaml", nil))
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "missing_descriptions.yaml", base)
	require.Error(t, err)
	assert.Equal(t, "IO error during write of missing_descriptions.yaml: permission denied", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))

	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("app", "bad output path", nil)
	assert.Equal(t, "configuration error in app: bad output path", err.Error())

	bare := pkgerrors.NewConfigError("", "missing key", nil)
	assert.Equal(t, "configuration error: missing key", bare.Error())
}
