package eortologio_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mkaravias/eortologio"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", eortologio.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := eortologio.Errorf(eortologio.ENOTFOUND, "name %q not found", "Μαρία")
		assert.Equal(t, eortologio.ENOTFOUND, eortologio.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		inner := eortologio.Errorf(eortologio.ETIMEOUT, "timeout")
		err := fmt.Errorf("fetching month: %w", inner)
		assert.Equal(t, eortologio.ETIMEOUT, eortologio.ErrorCode(err))
	})

	t.Run("non-application error defaults to internal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, eortologio.EINTERNAL, eortologio.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error message", func(t *testing.T) {
		t.Parallel()
		err := eortologio.Errorf(eortologio.EINVALID, "month must be between 1 and 12")
		assert.Equal(t, "month must be between 1 and 12", eortologio.ErrorMessage(err))
	})

	t.Run("non-application error is generic", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "An internal error has occurred.", eortologio.ErrorMessage(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", eortologio.ErrorMessage(nil))
	})
}
