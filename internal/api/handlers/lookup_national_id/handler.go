package lookup_national_id

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/service/clients"
)

const (
	msgInvalidNationalID = "el DNI debe contener solo dígitos"
	msgNotFound          = "DNI no encontrado"
	msgUnavailable       = "el servicio de consulta de DNI no está disponible"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/national-id/{dni}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	nationalID := mux.Vars(r)["dni"]

	person, err := h.service.LookupNationalID(r.Context(), nationalID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /clients/national-id/{dni} - Invalid national id: %q", nationalID)
			handlers.RespondBadRequest(w, msgInvalidNationalID)

		case errors.Is(err, clients.ErrPersonNotFound):
			h.logger.Warn("GET /clients/national-id/{dni} - Not found: dni=%s", nationalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrLookupUnavailable):
			h.logger.Error("GET /clients/national-id/{dni} - Lookup unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)

		default:
			h.logger.Error("GET /clients/national-id/{dni} - Failed to lookup: dni=%s, error=%v", nationalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/national-id/{dni} - Person found: dni=%s, cached=%t", nationalID, person.Cached)
	handlers.RespondJSON(w, http.StatusOK, person)
}
