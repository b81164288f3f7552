package search_clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/domain"
)

const (
	msgMissingQuery = "el parámetro q es obligatorio"
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

// Handle GET /api/v1/clients?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("GET /clients - Missing search query")
			handlers.RespondBadRequest(w, msgMissingQuery)
			return
		}
		h.logger.Error("GET /clients - Failed to search clients: q=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Clients found: q=%q, count=%d", query, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
