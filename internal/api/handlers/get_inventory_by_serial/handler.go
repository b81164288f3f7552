package get_inventory_by_serial

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory"
)

const (
	msgNotFound = "equipo no encontrado"
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

// Handle GET /api/v1/inventory/serial/{serial}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serial := mux.Vars(r)["serial"]

	item, err := h.service.GetBySerial(r.Context(), serial)
	if err != nil {
		if errors.Is(err, inventory.ErrItemNotFound) {
			h.logger.Warn("GET /inventory/serial/{serial} - Item not found: serial=%s", serial)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /inventory/serial/{serial} - Failed to get item: serial=%s, error=%v", serial, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /inventory/serial/{serial} - Item retrieved: item_id=%d", item.ID)
	handlers.RespondJSON(w, http.StatusOK, item)
}
