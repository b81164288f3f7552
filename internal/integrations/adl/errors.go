package adl

import "errors"

var (
	// ErrDeactivationFailed API AdL отклонило отключение
	ErrDeactivationFailed = errors.New("adl client: deactivation rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("adl client: internal error")
)
