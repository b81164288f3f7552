package delete_inventory_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory"
)

const (
	msgInvalidItemID = "ID de equipo inválido"
	msgNotFound      = "equipo no encontrado"
	msgItemLinked    = "no se puede eliminar: el equipo está vinculado a una instalación"
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

// Handle DELETE /api/v1/inventory/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("DELETE /inventory/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.DeleteItem(r.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotFound):
			h.logger.Warn("DELETE /inventory/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, inventory.ErrItemLinked):
			h.logger.Warn("DELETE /inventory/{id} - Item linked to installation: item_id=%d", itemID)
			handlers.RespondError(w, http.StatusConflict, msgItemLinked)

		default:
			h.logger.Error("DELETE /inventory/{id} - Failed to delete item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /inventory/{id} - Item deleted: item_id=%d", itemID)
	w.WriteHeader(http.StatusNoContent)
}
