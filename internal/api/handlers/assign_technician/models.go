package assign_technician

import (
	assignTechnician "github.com/m04kA/SMC-FieldService/internal/usecase/assign_technician"
)

// AssignTechnicianRequest HTTP request model
type AssignTechnicianRequest struct {
	TechnicianID int64 `json:"tecnicoId"`
}

// AssignmentResponse HTTP response model
type AssignmentResponse struct {
	InstallationID   int64  `json:"instalacionId"`
	TaskID           int64  `json:"tareaId"`
	TechnicianID     int64  `json:"tecnicoId"`
	Status           string `json:"estado"`
	SupersededTaskID *int64 `json:"tareaAnuladaId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignTechnician.Response) *AssignmentResponse {
	return &AssignmentResponse{
		InstallationID:   resp.InstallationID,
		TaskID:           resp.TaskID,
		TechnicianID:     resp.TechnicianID,
		Status:           resp.Status,
		SupersededTaskID: resp.SupersededTaskID,
	}
}
