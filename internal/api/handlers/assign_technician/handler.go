package assign_technician

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	assignTechnician "github.com/m04kA/SMC-FieldService/internal/usecase/assign_technician"
)

const (
	msgInvalidInstallationID = "ID de instalación inválido"
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgMissingUserID         = "falta el ID de usuario"
	msgInstallationNotFound  = "instalación no encontrada"
	msgInstallationCompleted = "la instalación ya está completada"
	msgTransferInProgress    = "la tarea tiene un traspaso pendiente"
)

type Handler struct {
	useCase AssignTechnicianUseCase
	logger  Logger
}

func NewHandler(useCase AssignTechnicianUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/installations/{installationId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	installationID, err := handlers.PathID(r, "installationId")
	if err != nil {
		h.logger.Warn("POST /installations/{id}/assign - Invalid installation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstallationID)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /installations/{id}/assign - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AssignTechnicianRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /installations/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignTechnician.Request{
		InstallationID: installationID,
		TechnicianID:   req.TechnicianID,
		AdminID:        adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignTechnician.ErrInstallationNotFound):
			h.logger.Warn("POST /installations/{id}/assign - Installation not found: installation_id=%d", installationID)
			handlers.RespondNotFound(w, msgInstallationNotFound)

		case errors.Is(err, assignTechnician.ErrInstallationCompleted):
			h.logger.Warn("POST /installations/{id}/assign - Installation completed: installation_id=%d", installationID)
			handlers.RespondError(w, http.StatusConflict, msgInstallationCompleted)

		case errors.Is(err, assignTechnician.ErrTransferInProgress):
			h.logger.Warn("POST /installations/{id}/assign - Transfer in progress: installation_id=%d", installationID)
			handlers.RespondError(w, http.StatusConflict, msgTransferInProgress)

		case errors.Is(err, domain.ErrPersistence):
			h.logger.Error("POST /installations/{id}/assign - Failed to assign technician: installation_id=%d, error=%v",
				installationID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /installations/{id}/assign - Rejected: installation_id=%d, error=%v", installationID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /installations/{id}/assign - Technician assigned: installation_id=%d, technician_id=%d, task_id=%d",
		installationID, result.TechnicianID, result.TaskID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
