package models

import (
	"time"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// TaskResponse задача техника
type TaskResponse struct {
	ID             int64   `json:"id"`
	InstallationID int64   `json:"instalacionId"`
	TechnicianID   *int64  `json:"tecnicoId,omitempty"`
	Type           string  `json:"tipo"`
	Description    *string `json:"descripcion,omitempty"`
	AssignedOn     string  `json:"fechaAsignacion"`
	Status         string  `json:"estado"`
}

// TransferResponse входящий запрос передачи задачи
type TransferResponse struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"tareaId"`
	RequesterID int64     `json:"solicitanteId"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"fechaSolicitud"`
}

// StatsResponse счётчики задач техника
type StatsResponse struct {
	Completed  int `json:"completadas"`
	Pending    int `json:"pendientes"`
	InTransfer int `json:"enTraspaso"`
}

// FromDomainTask конвертирует domain.Task в ответ API
func FromDomainTask(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		InstallationID: t.InstallationID,
		TechnicianID:   t.TechnicianID,
		Type:           t.Type,
		Description:    t.Description,
		AssignedOn:     t.AssignedOn.Format(domain.DateFormat),
		Status:         string(t.Status),
	}
}

// FromDomainTaskList конвертирует список задач
func FromDomainTaskList(tasks []*domain.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromDomainTask(t))
	}
	return out
}

// FromDomainTransferList конвертирует список запросов передачи
func FromDomainTransferList(reqs []*domain.TransferRequest) []*TransferResponse {
	out := make([]*TransferResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, &TransferResponse{
			ID:          r.ID,
			TaskID:      r.TaskID,
			RequesterID: r.RequesterID,
			Status:      string(r.Status),
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}

// FromDomainStats конвертирует счётчики
func FromDomainStats(s domain.TechnicianStats) *StatsResponse {
	return &StatsResponse{
		Completed:  s.Completed,
		Pending:    s.Pending,
		InTransfer: s.InTransfer,
	}
}
