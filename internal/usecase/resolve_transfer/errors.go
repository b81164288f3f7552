package resolve_transfer

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrTransferNotFound возвращается, когда запрос передачи не найден
	ErrTransferNotFound = fmt.Errorf("%w: resolve_transfer: transfer request not found", domain.ErrNotFound)

	// ErrNotRecipient запрос адресован другому технику
	ErrNotRecipient = fmt.Errorf("%w: resolve_transfer: transfer request belongs to another technician", domain.ErrPermission)

	// ErrAlreadyResolved запрос уже принят или отклонён
	ErrAlreadyResolved = fmt.Errorf("%w: resolve_transfer: transfer request already resolved", domain.ErrConflict)

	// ErrTaskStateChanged задача уже не в статусе En Traspaso
	ErrTaskStateChanged = fmt.Errorf("%w: resolve_transfer: task is no longer in transfer", domain.ErrConflict)

	// ErrInstallationStateChanged инсталляция уже не в Asignado у запросившего техника
	ErrInstallationStateChanged = fmt.Errorf("%w: resolve_transfer: installation is no longer assigned to the requester", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: resolve_transfer: internal error", domain.ErrPersistence)
)
