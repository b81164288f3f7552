package update_inventory_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
)

const (
	msgInvalidItemID      = "ID de equipo inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgNotFound           = "equipo no encontrado"
	msgDuplicateSerial    = "el número de serie ya está registrado"
	msgItemLinked         = "el equipo está vinculado a una instalación"
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

// Handle PUT /api/v1/inventory/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("PUT /inventory/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /inventory/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrItemNotFound):
			h.logger.Warn("PUT /inventory/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, inventory.ErrDuplicateSerial):
			h.logger.Warn("PUT /inventory/{id} - Duplicate serial: %s", req.SerialNumber)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSerial)

		case errors.Is(err, inventory.ErrItemLinked):
			h.logger.Warn("PUT /inventory/{id} - Item linked to installation: item_id=%d", itemID)
			handlers.RespondError(w, http.StatusConflict, msgItemLinked)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /inventory/{id} - Validation failed: %v", err)
			handlers.RespondDomainError(w, err, "")

		default:
			h.logger.Error("PUT /inventory/{id} - Failed to update item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /inventory/{id} - Item updated: item_id=%d, state=%s", itemID, item.State)
	handlers.RespondJSON(w, http.StatusOK, item)
}
