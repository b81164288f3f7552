package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда резерв не найден
	ErrReservationNotFound = fmt.Errorf("%w: reservation not found", domain.ErrNotFound)

	// ErrAccessDenied резерв принадлежит другому пользователю
	ErrAccessDenied = fmt.Errorf("%w: reservation belongs to another user", domain.ErrPermission)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: reservations service", domain.ErrPersistence)
)
