package request_transfer

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrSelfTransfer нельзя передать задачу самому себе
	ErrSelfTransfer = domain.NewFieldError("tecnico_destino_id", "recipient must differ from requester")

	// ErrTaskNotFound возвращается, когда задача не найдена
	ErrTaskNotFound = fmt.Errorf("%w: request_transfer: task not found", domain.ErrNotFound)

	// ErrRecipientNotFound возвращается, когда получатель не найден
	ErrRecipientNotFound = fmt.Errorf("%w: request_transfer: recipient not found", domain.ErrNotFound)

	// ErrRecipientNotTechnician получатель не техник
	ErrRecipientNotTechnician = fmt.Errorf("%w: request_transfer: recipient is not a technician", domain.ErrValidation)

	// ErrNotAssigned задача назначена другому технику
	ErrNotAssigned = fmt.Errorf("%w: request_transfer: task is not assigned to requester", domain.ErrPermission)

	// ErrTaskNotPending передать можно только задачу в статусе Pendiente
	ErrTaskNotPending = fmt.Errorf("%w: request_transfer: task is not pending", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: request_transfer: internal error", domain.ErrPersistence)
)
