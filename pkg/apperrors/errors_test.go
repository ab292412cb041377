package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("record not found")
	appErr := Wrap(cause, CodeNotFound, "user", "User not found", http.StatusNotFound)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "record not found")
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	assert.NoError(t, err)

	// Ни исходная ошибка, ни HTTP-код наружу не уходят
	assert.NotContains(t, string(raw), "connection refused")
	assert.NotContains(t, string(raw), "500")
	assert.Contains(t, string(raw), string(CodeInternalError))
}

func TestFactories_HTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrNotFound(errors.New("x")).HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrInvalidOperation("booking", "nope").HTTPCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("no").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("bad").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ValidationError(nil).HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("who").HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, InternalError(errors.New("x")).HTTPCode)
}

func TestValidationError_Details(t *testing.T) {
	details := map[string]string{"username": "this field is required"}
	appErr := ValidationError(details)

	raw, err := json.Marshal(appErr)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "this field is required")
}
