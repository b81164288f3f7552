package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	createReservation "github.com/m04kA/SMC-FieldService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgMissingUserID        = "falta el ID de usuario"
	msgInstallationNotFound = "instalación no encontrada"
	msgOverlap              = "el horario se cruza con una reserva existente"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrOverlap):
			h.logger.Warn("POST /reservations - Overlap: installation_id=%d, date=%s, %s-%s",
				req.InstallationID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgOverlap)

		case errors.Is(err, createReservation.ErrInstallationNotFound):
			h.logger.Warn("POST /reservations - Installation not found: installation_id=%d", req.InstallationID)
			handlers.RespondNotFound(w, msgInstallationNotFound)

		case errors.Is(err, domain.ErrPersistence):
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Warn("POST /reservations - Rejected: user_id=%d, error=%v", userID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, installation_id=%d, user_id=%d",
		result.ID, result.InstallationID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
