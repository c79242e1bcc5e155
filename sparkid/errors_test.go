package sparkid

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := newError(CodeInvalidPrefix, "prefix %q exceeds maximum length %d", "toolong", 3)
	assert.EqualError(t, err, `sparkid: prefix "toolong" exceeds maximum length 3`)
	assert.Equal(t, CodeInvalidPrefix, err.Code)
}

func TestCodeOf(t *testing.T) {
	err := newError(CodeInvalidID, "id must not be empty")
	assert.Equal(t, CodeInvalidID, CodeOf(err))

	// Survives wrapping.
	wrapped := fmt.Errorf("handling request: %w", err)
	assert.Equal(t, CodeInvalidID, CodeOf(wrapped))

	assert.Empty(t, CodeOf(nil))
	assert.Empty(t, CodeOf(errors.New("plain")))
}

func TestErrorsAs(t *testing.T) {
	_, err := Generate("has space")
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, CodeInvalidPrefix, e.Code)
	assert.Contains(t, e.Message, "has space")
}
