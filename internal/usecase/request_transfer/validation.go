package request_transfer

import "github.com/m04kA/SMC-FieldService/internal/domain"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TaskID <= 0 {
		return domain.NewFieldError("tarea_id", "task id must be positive")
	}
	if req.RecipientID <= 0 {
		return domain.NewFieldError("tecnico_destino_id", "recipient is required")
	}
	if req.RecipientID == req.RequesterID {
		return ErrSelfTransfer
	}
	return nil
}
