package cut_unpaid_clients

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldService/internal/domain"
)

var (
	// ErrNotConfigured API отключения не настроено
	ErrNotConfigured = errors.New("cut_unpaid_clients: deactivation api is not configured")

	// ErrInternal возвращается, когда не удалось получить список должников
	ErrInternal = fmt.Errorf("%w: cut_unpaid_clients: internal error", domain.ErrPersistence)
)
