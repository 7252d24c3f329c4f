package exceptions

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"mindcare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	cause := errors.New("boom")

	t.Run("New Error", func(t *testing.T) {
		err := ErrInvalidInput(cause)

		assert.Equal(t, constvars.StatusBadRequest, err.StatusCode)
		assert.Equal(t, constvars.ErrDevInvalidInput, err.DevMessage)
		assert.Equal(t, "INVALID_INPUT: boom", err.Error())
		assert.ErrorIs(t, err, cause)
		require.Len(t, err.Locations, 1)
		assert.True(t, strings.HasSuffix(err.Locations[0].File, "exceptions_test.go"), "location should point at the caller, got %s", err.Locations[0].File)
	})

	t.Run("Existing Error Keeps Classification", func(t *testing.T) {
		original := ErrUnknownInstrument(cause, "bdi-2")
		wrapped := ErrPanicRecovered(fmt.Errorf("while handling: %w", original))

		assert.Same(t, original, wrapped)
		assert.Equal(t, constvars.StatusNotFound, wrapped.StatusCode)
		assert.Len(t, wrapped.Locations, 2)
	})

	t.Run("Name Is Quoted", func(t *testing.T) {
		err := ErrUnknownView(nil, "settings")
		assert.Equal(t, `UNKNOWN_VIEW: "settings"`, err.Error())
	})
}

func TestHasDevMessage(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrDefinitionsMalformed(errors.New("bad"), "x.json"))

	assert.True(t, HasDevMessage(err, constvars.ErrDevDefinitionsMalformed))
	assert.False(t, HasDevMessage(err, constvars.ErrDevDefinitionsUnreadable))
	assert.False(t, HasDevMessage(errors.New("plain"), constvars.ErrDevDefinitionsMalformed))
}

type validationSample struct {
	Message string `validate:"required"`
	Count   int    `validate:"lte=10"`
}

func TestFormatFirstValidationError(t *testing.T) {
	err := validator.New().Struct(validationSample{Count: 11})
	require.Error(t, err)

	assert.Equal(t, "message is required", FormatFirstValidationError(err))

	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(errors.New("not a validation error")))
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
}
