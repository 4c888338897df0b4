package scaladoc_test

import (
	"errors"
	"fmt"
	"testing"

	scaladoc "github.com/alopatindev/vim-scaladoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := scaladoc.Errorf(scaladoc.ENOTFOUND, "no docs for %q", "List")

	assert.Equal(t, scaladoc.ENOTFOUND, scaladoc.ErrorCode(err))
	assert.Equal(t, "no docs for \"List\"", scaladoc.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("search: %w", scaladoc.Errorf(scaladoc.EINVALID, "bad"))

	assert.Equal(t, scaladoc.EINVALID, scaladoc.ErrorCode(err))
	assert.Equal(t, "bad", scaladoc.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, scaladoc.EINTERNAL, scaladoc.ErrorCode(err))
	assert.Equal(t, "Internal error.", scaladoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scaladoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scaladoc.ErrorMessage(nil))
}
