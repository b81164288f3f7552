package tasks

import (
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = fmt.Errorf("%w: tasks service", domain.ErrPersistence)
