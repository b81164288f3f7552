package clients

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrDuplicateClient клиент с таким DNI (или сгенерированным кодом) уже создан конкурентно
	ErrDuplicateClient = fmt.Errorf("%w: client already registered", domain.ErrConflict)

	// ErrClientNotFound клиент не найден
	ErrClientNotFound = fmt.Errorf("%w: client not found", domain.ErrNotFound)

	// ErrPersonNotFound DNI не найден в RENIEC
	ErrPersonNotFound = fmt.Errorf("%w: national id not found in registry", domain.ErrNotFound)

	// ErrLookupUnavailable сервис поиска по DNI не настроен или недоступен
	ErrLookupUnavailable = errors.New("clients: national id lookup unavailable")

	// ErrRouterUnavailable роутер не настроен или недоступен
	ErrRouterUnavailable = errors.New("clients: router unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("%w: clients service", domain.ErrPersistence)
)
