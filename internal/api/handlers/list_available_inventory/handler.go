package list_available_inventory

import (
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/inventory/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAvailable(r.Context())
	if err != nil {
		h.logger.Error("GET /inventory/available - Failed to list items: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /inventory/available - Items retrieved: count=%d", len(items))
	handlers.RespondJSON(w, http.StatusOK, items)
}
