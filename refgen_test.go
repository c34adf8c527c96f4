package refgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/refgen"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := refgen.Errorf(refgen.EINVALID, "block %d has no signature", 3)

	assert.Equal(t, refgen.EINVALID, refgen.ErrorCode(err))
	assert.Equal(t, "block 3 has no signature", refgen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, refgen.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, refgen.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", refgen.Errorf(refgen.ENOTFOUND, "missing"))

	assert.Equal(t, refgen.ENOTFOUND, refgen.ErrorCode(err))
	assert.Equal(t, "missing", refgen.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, refgen.EINTERNAL, refgen.ErrorCode(err))
	assert.Equal(t, "Internal error.", refgen.ErrorMessage(err))
}
