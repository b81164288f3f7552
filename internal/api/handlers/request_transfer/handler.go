package request_transfer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	requestTransfer "github.com/m04kA/SMC-FieldService/internal/usecase/request_transfer"
)

const (
	msgInvalidTaskID      = "ID de tarea inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingUserID      = "falta el ID de usuario"
	msgTaskNotFound       = "tarea no encontrada"
	msgRecipientNotFound  = "técnico destino no encontrado"
	msgNotAssigned        = "la tarea no está asignada a usted"
	msgTaskNotPending     = "solo se pueden traspasar tareas pendientes"
)

type Handler struct {
	useCase RequestTransferUseCase
	logger  Logger
}

func NewHandler(useCase RequestTransferUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tasks/{taskId}/transfers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	taskID, err := handlers.PathID(r, "taskId")
	if err != nil {
		h.logger.Warn("POST /tasks/{id}/transfers - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tasks/{id}/transfers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RequestTransferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tasks/{id}/transfers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &requestTransfer.Request{
		TaskID:      taskID,
		RequesterID: requesterID,
		RecipientID: req.RecipientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, requestTransfer.ErrTaskNotFound):
			h.logger.Warn("POST /tasks/{id}/transfers - Task not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgTaskNotFound)

		case errors.Is(err, requestTransfer.ErrRecipientNotFound):
			h.logger.Warn("POST /tasks/{id}/transfers - Recipient not found: recipient_id=%d", req.RecipientID)
			handlers.RespondNotFound(w, msgRecipientNotFound)

		case errors.Is(err, requestTransfer.ErrNotAssigned):
			h.logger.Warn("POST /tasks/{id}/transfers - Not assigned: task_id=%d, user_id=%d", taskID, requesterID)
			handlers.RespondForbidden(w, msgNotAssigned)

		case errors.Is(err, requestTransfer.ErrTaskNotPending):
			h.logger.Warn("POST /tasks/{id}/transfers - Task not pending: task_id=%d", taskID)
			handlers.RespondError(w, http.StatusConflict, msgTaskNotPending)

		case errors.Is(err, domain.ErrPersistence):
			h.logger.Error("POST /tasks/{id}/transfers - Failed to request transfer: task_id=%d, error=%v", taskID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /tasks/{id}/transfers - Rejected: task_id=%d, error=%v", taskID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /tasks/{id}/transfers - Transfer requested: transfer_id=%d, task_id=%d, from=%d, to=%d",
		result.TransferID, taskID, requesterID, req.RecipientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
