package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrInstallationNotFound возвращается, когда инсталляция не найдена
	ErrInstallationNotFound = fmt.Errorf("%w: create_reservation: installation not found", domain.ErrNotFound)

	// ErrOverlap интервал пересекается с существующим резервом
	ErrOverlap = fmt.Errorf("%w: create_reservation: time range overlaps an existing reservation", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("%w: create_reservation: internal error", domain.ErrPersistence)
)
