package assign_technician

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrInstallationNotFound возвращается, когда инсталляция не найдена
	ErrInstallationNotFound = fmt.Errorf("%w: assign_technician: installation not found", domain.ErrNotFound)

	// ErrInstallationCompleted завершённую инсталляцию нельзя переназначить
	ErrInstallationCompleted = fmt.Errorf("%w: assign_technician: installation is already completed", domain.ErrConflict)

	// ErrTransferInProgress активная задача находится в процессе передачи
	ErrTransferInProgress = fmt.Errorf("%w: assign_technician: task transfer must be resolved first", domain.ErrConflict)

	// ErrStateChanged состояние инсталляции или задачи изменилось конкурентно
	ErrStateChanged = fmt.Errorf("%w: assign_technician: state changed concurrently", domain.ErrConflict)

	// ErrTechnicianNotFound возвращается, когда техник не найден
	ErrTechnicianNotFound = fmt.Errorf("%w: assign_technician: technician not found", domain.ErrNotFound)

	// ErrNotATechnician возвращается, когда назначаемый пользователь - администратор
	ErrNotATechnician = fmt.Errorf("%w: assign_technician: user is not a technician", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: assign_technician: internal error", domain.ErrPersistence)
)
