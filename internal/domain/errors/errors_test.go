package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"ratesmart/internal/errors"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("name is required")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "name is required", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInvalidRating))
}

func TestBaseError_WrapMessageIsUnwrappable(t *testing.T) {
	wrapped := ErrReviewNotFound.WrapMessage("load review")

	assert.True(t, errors.Is(wrapped, ErrReviewNotFound))

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Review not found", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection reset"), "insert review")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
