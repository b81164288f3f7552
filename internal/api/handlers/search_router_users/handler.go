package search_router_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/service/clients"
)

const (
	msgUnavailable = "no se pudo conectar al router"
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

// Handle GET /api/v1/router/users?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	users, err := h.service.SearchRouterUsers(r.Context(), query)
	if err != nil {
		if errors.Is(err, clients.ErrRouterUnavailable) {
			h.logger.Error("GET /router/users - Router unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)
			return
		}
		h.logger.Error("GET /router/users - Failed to search router users: q=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /router/users - Router users found: q=%q, count=%d", query, len(users))
	handlers.RespondJSON(w, http.StatusOK, users)
}
