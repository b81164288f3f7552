package create_installation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	createInstallation "github.com/m04kA/SMC-FieldService/internal/usecase/create_installation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD HH:MM:SS"
	msgMissingUserID      = "falta el ID de usuario"
	msgTechnicianNotFound = "técnico no encontrado"
	msgNotATechnician     = "el usuario asignado no es técnico"
	msgActiveTaskExists   = "la instalación ya tiene una tarea activa"
)

type Handler struct {
	useCase CreateInstallationUseCase
	logger  Logger
}

func NewHandler(useCase CreateInstallationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/installations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /installations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateInstallationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /installations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(adminID)
	if err != nil {
		h.logger.Warn("POST /installations - Invalid requested date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createInstallation.ErrTechnicianNotFound):
			h.logger.Warn("POST /installations - Technician not found: technician_id=%d", req.TechnicianID)
			handlers.RespondNotFound(w, msgTechnicianNotFound)

		case errors.Is(err, createInstallation.ErrNotATechnician):
			h.logger.Warn("POST /installations - Not a technician: user_id=%d", req.TechnicianID)
			handlers.RespondBadRequest(w, msgNotATechnician)

		case errors.Is(err, createInstallation.ErrActiveTaskExists):
			h.logger.Warn("POST /installations - Active task exists")
			handlers.RespondError(w, http.StatusConflict, msgActiveTaskExists)

		case errors.Is(err, domain.ErrPersistence):
			h.logger.Error("POST /installations - Failed to create installation: admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /installations - Rejected: admin_id=%d, error=%v", adminID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /installations - Installation created successfully: installation_id=%d, task_id=%d, client_id=%d",
		result.InstallationID, result.TaskID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
