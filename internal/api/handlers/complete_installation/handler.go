package complete_installation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	completeInstallation "github.com/m04kA/SMC-FieldService/internal/usecase/complete_installation"
)

const (
	msgInvalidInstallationID = "ID de instalación inválido"
	msgInvalidRequestBody    = "cuerpo de la solicitud inválido"
	msgMissingUserID         = "falta el ID de usuario"
	msgInstallationNotFound  = "instalación no encontrada"
	msgNotAssigned           = "la tarea está asignada a otro técnico"
	msgEquipmentNotFound     = "equipo no encontrado"
	msgEquipmentNotAvailable = "el equipo no está disponible"
	msgTaskNotPending        = "la tarea no está pendiente"
)

type Handler struct {
	useCase CompleteInstallationUseCase
	logger  Logger
}

func NewHandler(useCase CompleteInstallationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/installations/{installationId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	installationID, err := handlers.PathID(r, "installationId")
	if err != nil {
		h.logger.Warn("POST /installations/{id}/complete - Invalid installation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstallationID)
		return
	}

	technicianID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /installations/{id}/complete - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CompleteInstallationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /installations/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(installationID, technicianID))
	if err != nil {
		switch {
		case errors.Is(err, completeInstallation.ErrInstallationNotFound):
			h.logger.Warn("POST /installations/{id}/complete - Installation not found: installation_id=%d", installationID)
			handlers.RespondNotFound(w, msgInstallationNotFound)

		case errors.Is(err, completeInstallation.ErrNotAssigned):
			h.logger.Warn("POST /installations/{id}/complete - Not assigned: installation_id=%d, technician_id=%d",
				installationID, technicianID)
			handlers.RespondForbidden(w, msgNotAssigned)

		case errors.Is(err, completeInstallation.ErrEquipmentNotFound):
			h.logger.Warn("POST /installations/{id}/complete - Equipment not found: equipment_id=%d", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, completeInstallation.ErrEquipmentNotAvailable):
			h.logger.Warn("POST /installations/{id}/complete - Equipment not available: equipment_id=%d", req.EquipmentID)
			handlers.RespondError(w, http.StatusConflict, msgEquipmentNotAvailable)

		case errors.Is(err, completeInstallation.ErrTaskNotPending):
			h.logger.Warn("POST /installations/{id}/complete - Task not pending: installation_id=%d", installationID)
			handlers.RespondError(w, http.StatusConflict, msgTaskNotPending)

		case errors.Is(err, domain.ErrPersistence):
			h.logger.Error("POST /installations/{id}/complete - Failed to complete installation: installation_id=%d, error=%v",
				installationID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /installations/{id}/complete - Rejected: installation_id=%d, error=%v", installationID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /installations/{id}/complete - Installation completed: installation_id=%d, task_id=%d, equipment_id=%d",
		installationID, result.TaskID, result.EquipmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
