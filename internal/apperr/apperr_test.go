package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation: http.StatusUnprocessableEntity,
		KindConflict:   http.StatusUnprocessableEntity,
		KindNotFound:   http.StatusNotFound,
		KindBackend:    http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.Status(), kind.String())
	}
}

func TestBackendKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Backend(cause)

	assert.Equal(t, "connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFrom(t *testing.T) {
	t.Run("unwraps wrapped app errors", func(t *testing.T) {
		wrapped := fmt.Errorf("create: %w", Validation("missing name"))
		got := From(wrapped)
		assert.Equal(t, KindValidation, got.Kind)
		assert.Equal(t, "missing name", got.Message)
	})

	t.Run("classifies unknown errors as backend", func(t *testing.T) {
		got := From(errors.New("boom"))
		assert.Equal(t, KindBackend, got.Kind)
		assert.Equal(t, "boom", got.Message)
	})
}

