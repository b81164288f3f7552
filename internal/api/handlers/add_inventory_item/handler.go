package add_inventory_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/domain"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory"
	"github.com/m04kA/SMC-FieldService/internal/service/inventory/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgDuplicateSerial    = "el número de serie ya está registrado"
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

// Handle POST /api/v1/inventory
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /inventory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.AddItem(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrDuplicateSerial):
			h.logger.Warn("POST /inventory - Duplicate serial: %s", req.SerialNumber)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSerial)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /inventory - Validation failed: %v", err)
			handlers.RespondDomainError(w, err, "")

		default:
			h.logger.Error("POST /inventory - Failed to add item: serial=%s, error=%v", req.SerialNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /inventory - Item added: item_id=%d, serial=%s", item.ID, item.SerialNumber)
	handlers.RespondJSON(w, http.StatusCreated, item)
}
