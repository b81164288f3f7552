package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.NewFieldError("dni", "required"), http.StatusBadRequest},
		{fmt.Errorf("%w: bad decision", domain.ErrInvalidAction), http.StatusBadRequest},
		{fmt.Errorf("%w: overlap", domain.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: other technician", domain.ErrPermission), http.StatusForbidden},
		{fmt.Errorf("%w: task", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: db down", domain.ErrPersistence), http.StatusInternalServerError},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestRespondDomainError_FieldError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("create: %w", domain.NewFieldError("fotos", "at least one photo is required"))

	RespondDomainError(rec, err, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fotos", body.Field)
	assert.Equal(t, "at least one photo is required", body.Error)
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondDomainError(rec, fmt.Errorf("%w: pq: connection refused", domain.ErrPersistence), "ignored")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq")
	assert.Contains(t, rec.Body.String(), msgInternalError)
}
