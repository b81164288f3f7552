package resolve_transfer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	resolveTransfer "github.com/m04kA/SMC-FieldService/internal/usecase/resolve_transfer"
)

const (
	msgInvalidTransferID  = "ID de traspaso inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingUserID      = "falta el ID de usuario"
	msgInvalidDecision    = "acción no válida, se espera aceptar o rechazar"
	msgTransferNotFound   = "solicitud de traspaso no encontrada"
	msgNotRecipient       = "la solicitud está dirigida a otro técnico"
	msgAlreadyResolved    = "la solicitud ya fue resuelta"
)

type Handler struct {
	useCase ResolveTransferUseCase
	logger  Logger
}

func NewHandler(useCase ResolveTransferUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/transfers/{transferId}/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	transferID, err := handlers.PathID(r, "transferId")
	if err != nil {
		h.logger.Warn("POST /transfers/{id}/resolve - Invalid transfer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTransferID)
		return
	}

	recipientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /transfers/{id}/resolve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ResolveTransferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /transfers/{id}/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveTransfer.Request{
		TransferID:  transferID,
		RecipientID: recipientID,
		Decision:    req.Decision,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAction):
			h.logger.Warn("POST /transfers/{id}/resolve - Invalid decision: %q", req.Decision)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		case errors.Is(err, resolveTransfer.ErrTransferNotFound):
			h.logger.Warn("POST /transfers/{id}/resolve - Transfer not found: transfer_id=%d", transferID)
			handlers.RespondNotFound(w, msgTransferNotFound)

		case errors.Is(err, resolveTransfer.ErrNotRecipient):
			h.logger.Warn("POST /transfers/{id}/resolve - Not recipient: transfer_id=%d, user_id=%d", transferID, recipientID)
			handlers.RespondForbidden(w, msgNotRecipient)

		case errors.Is(err, resolveTransfer.ErrAlreadyResolved):
			h.logger.Warn("POST /transfers/{id}/resolve - Already resolved: transfer_id=%d", transferID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyResolved)

		case errors.Is(err, domain.ErrPersistence):
			h.logger.Error("POST /transfers/{id}/resolve - Failed to resolve transfer: transfer_id=%d, error=%v", transferID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /transfers/{id}/resolve - Rejected: transfer_id=%d, error=%v", transferID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /transfers/{id}/resolve - Transfer resolved: transfer_id=%d, status=%s, technician_id=%d",
		transferID, result.Status, result.TechnicianID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
