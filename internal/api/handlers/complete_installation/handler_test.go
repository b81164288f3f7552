package complete_installation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	completeInstallation "github.com/m04kA/SMC-FieldService/internal/usecase/complete_installation"
	"github.com/m04kA/SMC-FieldService/pkg/logger"
)

type useCaseFunc func(ctx context.Context, req *completeInstallation.Request) (*completeInstallation.Response, error)

func (f useCaseFunc) Execute(ctx context.Context, req *completeInstallation.Request) (*completeInstallation.Response, error) {
	return f(ctx, req)
}

const body = `{"equipoId": 3, "fotos": ["https://cdn/1.jpg"], "latitud": "-12.04", "longitud": "-77.03"}`

func newRequest(t *testing.T, installationID, payload string, userID int64) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/installations/"+installationID+"/complete", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"installationId": installationID})
	if userID > 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, domain.RoleTechnician))
	}
	return req
}

func TestHandle_Success(t *testing.T) {
	completedAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	var got *completeInstallation.Request
	h := NewHandler(useCaseFunc(func(_ context.Context, req *completeInstallation.Request) (*completeInstallation.Response, error) {
		got = req
		return &completeInstallation.Response{
			InstallationID: req.InstallationID,
			TaskID:         11,
			EquipmentID:    req.EquipmentID,
			Status:         string(domain.InstallationCompleted),
			GPS:            "-12.04,-77.03",
			CompletedAt:    completedAt,
		}, nil
	}), logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(t, "5", body, 42))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), got.InstallationID)
	assert.Equal(t, int64(42), got.TechnicianID)
	assert.Equal(t, []string{"https://cdn/1.jpg"}, got.Photos)

	var resp CompletionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.TaskID)
	assert.Equal(t, "-12.04,-77.03", resp.GPS)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name           string
		installationID string
		payload        string
		userID         int64
		ucErr          error
		wantCode       int
	}{
		{"bad id", "abc", body, 42, nil, http.StatusBadRequest},
		{"no user", "5", body, 0, nil, http.StatusUnauthorized},
		{"bad json", "5", "{", 42, nil, http.StatusBadRequest},
		{"unknown field", "5", `{"foo": 1}`, 42, nil, http.StatusBadRequest},
		{"validation", "5", body, 42, domain.NewFieldError("fotos", "required"), http.StatusBadRequest},
		{"other technician", "5", body, 42, completeInstallation.ErrNotAssigned, http.StatusForbidden},
		{"not found", "5", body, 42, completeInstallation.ErrInstallationNotFound, http.StatusNotFound},
		{"equipment used", "5", body, 42, completeInstallation.ErrEquipmentNotAvailable, http.StatusConflict},
		{"in transfer", "5", body, 42, completeInstallation.ErrTaskNotPending, http.StatusConflict},
		{"internal", "5", body, 42, completeInstallation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			h := NewHandler(useCaseFunc(func(context.Context, *completeInstallation.Request) (*completeInstallation.Response, error) {
				called = true
				return nil, tt.ucErr
			}), logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(t, tt.installationID, tt.payload, tt.userID))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.ucErr != nil, called)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
