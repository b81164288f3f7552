package complete_installation

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrInstallationNotFound возвращается, когда инсталляция не найдена
	ErrInstallationNotFound = fmt.Errorf("%w: complete_installation: installation not found", domain.ErrNotFound)

	// ErrNoActiveTask у инсталляции нет активной задачи
	ErrNoActiveTask = fmt.Errorf("%w: complete_installation: installation has no active task", domain.ErrNotFound)

	// ErrNotAssigned задача назначена другому технику
	ErrNotAssigned = fmt.Errorf("%w: complete_installation: task is assigned to another technician", domain.ErrPermission)

	// ErrTaskNotPending задача не в статусе Pendiente (например, в передаче)
	ErrTaskNotPending = fmt.Errorf("%w: complete_installation: task is not pending", domain.ErrConflict)

	// ErrEquipmentNotFound оборудование не найдено на складе
	ErrEquipmentNotFound = fmt.Errorf("%w: complete_installation: equipment not found", domain.ErrNotFound)

	// ErrEquipmentNotAvailable оборудование уже установлено
	ErrEquipmentNotAvailable = fmt.Errorf("%w: complete_installation: equipment is not available", domain.ErrConflict)

	// ErrStateChanged состояние инсталляции или задачи изменилось конкурентно
	ErrStateChanged = fmt.Errorf("%w: complete_installation: state changed concurrently", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: complete_installation: internal error", domain.ErrPersistence)
)
