package get_technician_tasks

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-FieldService/internal/api/handlers"
	"github.com/m04kA/SMC-FieldService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldService/internal/domain"
)

const (
	msgMissingUserID = "falta el ID de usuario"
	msgInvalidState  = "estado de tarea inválido"
)

type Handler struct {
	service TaskService
	logger  Logger
}

func NewHandler(service TaskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/technicians/me/tasks
// Query params: estado (опционально, можно повторять или через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	technicianID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /technicians/me/tasks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var states []string
	for _, v := range r.URL.Query()["estado"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				states = append(states, s)
			}
		}
	}

	taskList, err := h.service.ListTechnicianTasks(r.Context(), technicianID, states)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("GET /technicians/me/tasks - Invalid state filter: %v", states)
			handlers.RespondBadRequest(w, msgInvalidState)
			return
		}
		h.logger.Error("GET /technicians/me/tasks - Failed to list tasks: technician_id=%d, error=%v", technicianID, err)
		handlers.RespondInternalError(w)
		return
	}

	transfers, err := h.service.ListIncomingTransfers(r.Context(), technicianID)
	if err != nil {
		h.logger.Error("GET /technicians/me/tasks - Failed to list transfers: technician_id=%d, error=%v", technicianID, err)
		handlers.RespondInternalError(w)
		return
	}

	stats, err := h.service.TechnicianStats(r.Context(), technicianID)
	if err != nil {
		h.logger.Error("GET /technicians/me/tasks - Failed to get stats: technician_id=%d, error=%v", technicianID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /technicians/me/tasks - Tasks retrieved: technician_id=%d, tasks=%d, transfers=%d",
		technicianID, len(taskList), len(transfers))
	handlers.RespondJSON(w, http.StatusOK, &TechnicianTasksResponse{
		Tasks:     taskList,
		Transfers: transfers,
		Stats:     stats,
	})
}
