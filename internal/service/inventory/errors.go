package inventory

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrItemNotFound возвращается, когда оборудование не найдено
	ErrItemNotFound = fmt.Errorf("%w: inventory item not found", domain.ErrNotFound)

	// ErrDuplicateSerial серийный номер уже зарегистрирован
	ErrDuplicateSerial = fmt.Errorf("%w: serial number already registered", domain.ErrConflict)

	// ErrItemLinked оборудование привязано к завершённой инсталляции
	ErrItemLinked = fmt.Errorf("%w: inventory item is linked to an installation", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: inventory service", domain.ErrPersistence)
)
