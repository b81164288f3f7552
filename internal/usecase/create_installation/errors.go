package create_installation

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrTechnicianNotFound возвращается, когда техник не найден
	ErrTechnicianNotFound = fmt.Errorf("%w: create_installation: technician not found", domain.ErrNotFound)

	// ErrNotATechnician возвращается, когда назначаемый пользователь - администратор
	ErrNotATechnician = fmt.Errorf("%w: create_installation: user is not a technician", domain.ErrValidation)

	// ErrActiveTaskExists у инсталляции уже есть активная задача
	ErrActiveTaskExists = fmt.Errorf("%w: create_installation: installation already has an active task", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create_installation: internal error", domain.ErrPersistence)
)
