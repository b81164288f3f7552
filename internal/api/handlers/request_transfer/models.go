package request_transfer

import (
	"time"

	requestTransfer "github.com/m04kA/SMC-FieldService/internal/usecase/request_transfer"
)

// RequestTransferRequest HTTP request model
type RequestTransferRequest struct {
	RecipientID int64 `json:"tecnicoDestinoId"`
}

// TransferResponse HTTP response model
type TransferResponse struct {
	TransferID int64  `json:"id"`
	TaskID     int64  `json:"tareaId"`
	Status     string `json:"estado"`
	TaskStatus string `json:"estadoTarea"`
	CreatedAt  string `json:"fechaSolicitud"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestTransfer.Response) *TransferResponse {
	return &TransferResponse{
		TransferID: resp.TransferID,
		TaskID:     resp.TaskID,
		Status:     resp.Status,
		TaskStatus: resp.TaskStatus,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
