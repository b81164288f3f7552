package resolve_transfer

import (
	resolveTransfer "github.com/m04kA/SMC-FieldService/internal/usecase/resolve_transfer"
)

// ResolveTransferRequest HTTP request model
type ResolveTransferRequest struct {
	Decision string `json:"accion"` // aceptar | rechazar
}

// ResolutionResponse HTTP response model
type ResolutionResponse struct {
	TransferID   int64  `json:"id"`
	TaskID       int64  `json:"tareaId"`
	Status       string `json:"estado"`
	TaskStatus   string `json:"estadoTarea"`
	TechnicianID int64  `json:"tecnicoId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveTransfer.Response) *ResolutionResponse {
	return &ResolutionResponse{
		TransferID:   resp.TransferID,
		TaskID:       resp.TaskID,
		Status:       resp.Status,
		TaskStatus:   resp.TaskStatus,
		TechnicianID: resp.TechnicianID,
	}
}
